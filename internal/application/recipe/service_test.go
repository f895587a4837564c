package recipe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/moodrecipe/api/internal/domain/recipe"
	apperrors "github.com/moodrecipe/api/pkg/errors"
)

type fakeRecipeRepository struct {
	byMood map[string][]domain.Recipe
	err    error
}

func (f *fakeRecipeRepository) FindByMood(ctx context.Context, mood string) ([]domain.Recipe, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byMood[mood], nil
}

func (f *fakeRecipeRepository) DistinctMoods(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	moods := make([]string, 0, len(f.byMood))
	for mood := range f.byMood {
		moods = append(moods, mood)
	}
	return moods, nil
}

func (f *fakeRecipeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	for _, recipes := range f.byMood {
		n += int64(len(recipes))
	}
	return n, f.err
}

func happyRecipes() []domain.Recipe {
	return []domain.Recipe{
		{ID: 1, Name: "Rainbow Fruit Salad", Mood: "happy", Ingredients: "fruit", Instructions: "1. Mix", PrepTimeMinutes: 10, Difficulty: domain.DifficultyEasy},
		{ID: 2, Name: "Comforting Mac and Cheese", Mood: "happy", Ingredients: "pasta", Instructions: "1. Cook", PrepTimeMinutes: 45, Difficulty: domain.DifficultyEasy},
		{ID: 3, Name: "Sunny Egg Toast", Mood: "happy", Ingredients: "egg, bread", Instructions: "1. Fry", PrepTimeMinutes: 5, Difficulty: domain.DifficultyEasy},
	}
}

func TestRandomByMood_PicksFromMatches(t *testing.T) {
	repo := &fakeRecipeRepository{byMood: map[string][]domain.Recipe{"happy": happyRecipes()}}
	svc := NewServiceWithRand(repo, func(n int) int { return 1 }, zap.NewNop())

	got, err := svc.RandomByMood(context.Background(), "happy", "en")
	require.NoError(t, err)
	assert.Equal(t, uint(2), got.ID)
	assert.Equal(t, "Comforting Mac and Cheese", got.Name)
}

func TestRandomByMood_SelectionIsUniformOverIndexes(t *testing.T) {
	repo := &fakeRecipeRepository{byMood: map[string][]domain.Recipe{"happy": happyRecipes()}}

	var sizes []int
	svc := NewServiceWithRand(repo, func(n int) int {
		sizes = append(sizes, n)
		return n - 1
	}, zap.NewNop())

	got, err := svc.RandomByMood(context.Background(), "happy", "en")
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID)
	assert.Equal(t, []int{3}, sizes)
}

func TestRandomByMood_LocalizesResult(t *testing.T) {
	repo := &fakeRecipeRepository{byMood: map[string][]domain.Recipe{"happy": happyRecipes()}}
	svc := NewServiceWithRand(repo, func(n int) int { return 1 }, zap.NewNop())

	got, err := svc.RandomByMood(context.Background(), "happy", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Macaronis au fromage réconfortants", got.Name)
	// Canonical fields survive localization.
	assert.Equal(t, uint(2), got.ID)
	assert.Equal(t, "happy", got.Mood)
	assert.Equal(t, 45, got.PrepTimeMinutes)
}

func TestRandomByMood_UntranslatedRecipeFallsBackToEnglish(t *testing.T) {
	repo := &fakeRecipeRepository{byMood: map[string][]domain.Recipe{"happy": happyRecipes()}}
	svc := NewServiceWithRand(repo, func(n int) int { return 2 }, zap.NewNop())

	got, err := svc.RandomByMood(context.Background(), "happy", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Sunny Egg Toast", got.Name)
}

func TestRandomByMood_UnknownMood(t *testing.T) {
	repo := &fakeRecipeRepository{byMood: map[string][]domain.Recipe{}}
	svc := NewServiceWithRand(repo, func(n int) int { return 0 }, zap.NewNop())

	_, err := svc.RandomByMood(context.Background(), "bored", "en")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
	assert.Contains(t, err.Error(), "No recipes found for this mood")
}

func TestRandomByMood_EmptyMood(t *testing.T) {
	repo := &fakeRecipeRepository{byMood: map[string][]domain.Recipe{}}
	svc := NewServiceWithRand(repo, func(n int) int { return 0 }, zap.NewNop())

	for _, mood := range []string{"", "   "} {
		_, err := svc.RandomByMood(context.Background(), mood, "en")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	}
}

func TestRandomByMood_RepositoryError(t *testing.T) {
	repo := &fakeRecipeRepository{err: errors.New("disk on fire")}
	svc := NewServiceWithRand(repo, func(n int) int { return 0 }, zap.NewNop())

	_, err := svc.RandomByMood(context.Background(), "happy", "en")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeInternal))
}

func TestMoods(t *testing.T) {
	repo := &fakeRecipeRepository{byMood: map[string][]domain.Recipe{
		"happy": happyRecipes(),
		"sad":   {{ID: 9, Mood: "sad"}},
	}}
	svc := NewService(repo, zap.NewNop())

	moods, err := svc.Moods(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"happy", "sad"}, moods)
}
