package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmedicas/booking-api/internal/model"
	apperrors "github.com/citasmedicas/booking-api/pkg/errors"
)

func newTestUser(id, email string) *model.User {
	return &model.User{
		ID:           id,
		Email:        email,
		Name:         strPtr("Test User"),
		PasswordHash: "hash",
		Salt:         "salt",
	}
}

func TestUserCreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("user_1", "ana@example.com")
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user_1", byEmail.ID)
}

func TestUserDuplicateEmailConflicts(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("user_1", "ana@example.com")))

	err := repo.Create(ctx, newTestUser("user_2", "ana@example.com"))
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))

	// No second row was created.
	_, err = repo.GetByID(ctx, "user_2")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestUserGetMissingIsNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), "nope")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))

	_, err = repo.GetByEmail(context.Background(), "nope@example.com")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}

func TestUserUpdate(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newTestUser("user_1", "ana@example.com")
	require.NoError(t, repo.Create(ctx, user))

	user.Phone = strPtr("+51 900 000 000")
	user.Address = strPtr("Av. Principal 123")
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, "user_1")
	require.NoError(t, err)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "+51 900 000 000", *got.Phone)
}

func TestUserUpdateMissingIsNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	err := repo.Update(context.Background(), newTestUser("ghost", "ghost@example.com"))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}
