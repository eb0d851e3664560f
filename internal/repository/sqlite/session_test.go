package sqlite

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStartsLoggedOut(t *testing.T) {
	store := NewSessionStore(newTestDB(t))

	_, ok, err := store.CurrentUserID(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionSetAndClear(t *testing.T) {
	store := NewSessionStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.SetLoggedIn(ctx, "user_1"))

	userID, ok, err := store.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "user_1", userID)

	require.NoError(t, store.Clear(ctx))

	_, ok, err = store.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionReplacesPriorUser(t *testing.T) {
	store := NewSessionStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.SetLoggedIn(ctx, "user_1"))
	require.NoError(t, store.SetLoggedIn(ctx, "user_2"))

	userID, ok, err := store.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "user_2", userID)
}

func TestSessionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/session.db"

	db, err := NewDB(path)
	require.NoError(t, err)
	store := NewSessionStore(db)
	require.NoError(t, store.SetLoggedIn(context.Background(), "user_1"))
	require.NoError(t, db.Close())

	db, err = NewDB(path)
	require.NoError(t, err)
	defer db.Close()

	userID, ok, err := NewSessionStore(db).CurrentUserID(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "user_1", userID)
}

func TestSessionLogoutThenReadNeverStale(t *testing.T) {
	store := NewSessionStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.SetLoggedIn(ctx, "user_1"))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		require.NoError(t, store.Clear(ctx))
	}()
	wg.Wait()

	// The clear completed; a subsequent read must not see the old id.
	_, ok, err := store.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
