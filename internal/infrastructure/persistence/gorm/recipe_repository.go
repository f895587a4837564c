package gorm

import (
	"context"

	"github.com/moodrecipe/api/internal/domain/recipe"
	"github.com/moodrecipe/api/internal/ports/outbound"
	"gorm.io/gorm"
)

// RecipeRepository implements catalog access using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// FindByMood returns every catalog recipe tagged with the given mood.
// Unknown moods simply match zero rows.
func (r *RecipeRepository) FindByMood(ctx context.Context, mood string) ([]recipe.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Where("mood = ?", mood).
		Order("id").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]recipe.Recipe, 0, len(models))
	for _, m := range models {
		recipes = append(recipes, ModelToRecipe(m))
	}
	return recipes, nil
}

// DistinctMoods returns the mood tags present in the catalog, ordered so
// repeated calls within one process observe the same sequence.
func (r *RecipeRepository) DistinctMoods(ctx context.Context) ([]string, error) {
	var moods []string

	result := r.db.WithContext(ctx).Model(&RecipeModel{}).
		Distinct("mood").
		Order("mood").
		Pluck("mood", &moods)
	if result.Error != nil {
		return nil, result.Error
	}

	return moods, nil
}

// Count returns the number of recipes in the catalog
func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	result := r.db.WithContext(ctx).Model(&RecipeModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
