package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmedicas/booking-api/internal/repository/sqlite"
	"github.com/citasmedicas/booking-api/internal/seed"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := sqlite.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewDoctorRepository(db)
	_, err = seed.NewSeeder(repo).Run(context.Background())
	require.NoError(t, err)

	return NewService(repo)
}

func TestListDoctorsCaches(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, first, len(seed.Catalog()))

	second, err := svc.ListDoctors(ctx)
	require.NoError(t, err)

	// The cached slice is returned as-is.
	assert.Same(t, first[0], second[0])
}

func TestListFeaturedDoctors(t *testing.T) {
	svc := newTestService(t)

	featured, err := svc.ListFeaturedDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, "doctor_3", featured[0].ID)
	assert.Equal(t, "doctor_1", featured[1].ID)
	assert.Equal(t, "doctor_5", featured[2].ID)
}

func TestSearchDoctorsIgnoresCase(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	lower, err := svc.SearchDoctors(ctx, "neuro")
	require.NoError(t, err)
	upper, err := svc.SearchDoctors(ctx, "NEURO")
	require.NoError(t, err)

	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
}
