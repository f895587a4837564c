package gorm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/moodrecipe/api/internal/domain/user"
	apperrors "github.com/moodrecipe/api/pkg/errors"
)

func newTestDB(t *testing.T) *gormlib.DB {
	t.Helper()

	db, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UserModel{}, &RecipeModel{}))

	return db
}

func TestUserRepository_CreateAssignsID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	u := &user.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, u))

	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestUserRepository_CreateDuplicateIsConflict(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	first := &user.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, first))

	sameUsername := &user.User{Username: "alice", Email: "other@example.com", PasswordHash: "hash"}
	err := repo.Create(ctx, sameUsername)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConflict))

	sameEmail := &user.User{Username: "bob", Email: "alice@example.com", PasswordHash: "hash"}
	err = repo.Create(ctx, sameEmail)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConflict))
}

func TestUserRepository_FindByID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created := &user.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "alice@example.com", found.Email)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindByID(ctx, 9999)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestUserRepository_FindByIdentifier(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created := &user.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, created))

	byUsername, err := repo.FindByIdentifier(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	byEmail, err := repo.FindByIdentifier(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.FindByIdentifier(ctx, "nobody")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestUserRepository_ExistsByUsernameOrEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &user.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}))

	cases := []struct {
		username string
		email    string
		want     bool
	}{
		{"alice", "new@example.com", true},
		{"newname", "alice@example.com", true},
		{"alice", "alice@example.com", true},
		{"bob", "bob@example.com", false},
	}
	for _, tc := range cases {
		taken, err := repo.ExistsByUsernameOrEmail(ctx, tc.username, tc.email)
		require.NoError(t, err)
		assert.Equal(t, tc.want, taken, "%s / %s", tc.username, tc.email)
	}
}
