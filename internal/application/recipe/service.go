// Package recipe provides the application layer for mood-based recipe
// resolution
package recipe

import (
	"context"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	domain "github.com/moodrecipe/api/internal/domain/recipe"
	"github.com/moodrecipe/api/internal/ports/outbound"
	apperrors "github.com/moodrecipe/api/pkg/errors"
)

// IntN picks a uniform value in [0, n). Injectable so tests can pin the
// selection; n is always at least 1.
type IntN func(n int) int

// Service resolves mood queries against the catalog
type Service struct {
	recipes outbound.RecipeRepository
	intn    IntN
	logger  *zap.Logger
}

// NewService creates a new recipe service backed by math/rand
func NewService(recipes outbound.RecipeRepository, logger *zap.Logger) *Service {
	return NewServiceWithRand(recipes, rand.Intn, logger)
}

// NewServiceWithRand creates a recipe service with an explicit random source
func NewServiceWithRand(recipes outbound.RecipeRepository, intn IntN, logger *zap.Logger) *Service {
	return &Service{
		recipes: recipes,
		intn:    intn,
		logger:  logger.Named("recipe-service"),
	}
}

// RandomByMood selects one recipe for the mood uniformly at random and
// localizes it into language. Repeated calls may legitimately return
// different recipes.
func (s *Service) RandomByMood(ctx context.Context, mood, language string) (*domain.Recipe, error) {
	mood = strings.TrimSpace(mood)
	if mood == "" {
		return nil, apperrors.NewValidationError("Mood is required")
	}

	matches, err := s.recipes.FindByMood(ctx, mood)
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to query recipes")
	}
	if len(matches) == 0 {
		return nil, apperrors.NewNotFoundError("No recipes found for this mood")
	}

	selected := matches[s.intn(len(matches))].Localized(language)

	s.logger.Debug("recipe resolved",
		zap.String("mood", mood),
		zap.String("language", language),
		zap.Uint("recipe_id", selected.ID),
	)

	return &selected, nil
}

// Moods returns the distinct mood tags present in the catalog. The order
// is stable across calls within one process run.
func (s *Service) Moods(ctx context.Context) ([]string, error) {
	moods, err := s.recipes.DistinctMoods(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to query moods")
	}
	return moods, nil
}
