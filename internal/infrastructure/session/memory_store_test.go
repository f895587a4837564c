package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	sess := New()
	sess.UserID = 7
	sess.Username = "testuser"

	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, "testuser", got.Username)
	assert.Equal(t, DefaultLanguage, got.Language)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	sess := New()
	sess.UserID = 1
	require.NoError(t, store.Create(ctx, sess))

	first, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	first.Language = "fr"

	second, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage, second.Language)
}

func TestMemoryStore_SavePersistsMutations(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	sess := New()
	sess.UserID = 1
	require.NoError(t, store.Create(ctx, sess))

	sess.Language = "fr"
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "fr", got.Language)
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	sess := New()
	require.NoError(t, store.Create(ctx, sess))

	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete(ctx, sess.ID))
	assert.NoError(t, store.Delete(ctx, "never-existed"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	sess := New()
	sess.UserID = 1
	require.NoError(t, store.Create(ctx, sess))

	current = current.Add(30 * time.Minute)
	_, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)

	current = current.Add(31 * time.Minute)
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_WriteRefreshesLifetime(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	defer store.Close()
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	sess := New()
	require.NoError(t, store.Create(ctx, sess))

	current = current.Add(50 * time.Minute)
	require.NoError(t, store.Save(ctx, sess))

	// The save reset the clock; the original deadline has passed.
	current = current.Add(20 * time.Minute)
	_, err := store.Get(ctx, sess.ID)
	assert.NoError(t, err)
}

func TestAuthenticated(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
	assert.False(t, New().Authenticated())

	sess := New()
	sess.UserID = 3
	assert.True(t, sess.Authenticated())
}

func TestNewSessionIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := New()
		require.NotEmpty(t, s.ID)
		require.False(t, seen[s.ID])
		seen[s.ID] = true
	}
}
