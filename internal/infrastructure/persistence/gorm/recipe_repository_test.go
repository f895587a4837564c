package gorm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlib "gorm.io/gorm"

	"github.com/moodrecipe/api/internal/domain/recipe"
)

func seedCatalog(t *testing.T, db *gormlib.DB) {
	t.Helper()
	for _, r := range recipe.Seed {
		model := RecipeToModel(r)
		model.ID = 0
		require.NoError(t, db.Create(&model).Error)
	}
}

func TestRecipeRepository_FindByMood(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	matches, err := repo.FindByMood(ctx, "happy")
	require.NoError(t, err)
	require.Len(t, matches, 4)
	for _, r := range matches {
		assert.Equal(t, "happy", r.Mood)
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Ingredients)
	}
}

func TestRecipeRepository_FindByMoodUnknown(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewRecipeRepository(db)

	matches, err := repo.FindByMood(context.Background(), "bored")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRecipeRepository_DistinctMoods(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewRecipeRepository(db)

	moods, err := repo.DistinctMoods(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"sad", "happy", "excited", "anxious",
		"sick", "romantic", "refreshed", "adventurous",
	}, moods)

	// The ordering is stable across calls.
	again, err := repo.DistinctMoods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, moods, again)
}

func TestRecipeRepository_Count(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	seedCatalog(t, db)

	count, err = repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(32), count)
}
