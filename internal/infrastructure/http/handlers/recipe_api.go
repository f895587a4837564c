package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	reciperesolver "github.com/moodrecipe/api/internal/application/recipe"
	"github.com/moodrecipe/api/internal/infrastructure/http/middleware"
	"github.com/moodrecipe/api/internal/infrastructure/session"
)

// RecipeAPIHandlers handles recipe API requests
type RecipeAPIHandlers struct {
	recipeService *reciperesolver.Service
	logger        *zap.Logger
}

// NewRecipeAPIHandlers creates a new recipe API handlers instance
func NewRecipeAPIHandlers(
	recipeService *reciperesolver.Service,
	logger *zap.Logger,
) *RecipeAPIHandlers {
	return &RecipeAPIHandlers{
		recipeService: recipeService,
		logger:        logger,
	}
}

// RandomByMood handles GET /api/recipes/{mood}. The response body is the
// selected recipe itself, localized to the session language.
func (h *RecipeAPIHandlers) RandomByMood(w http.ResponseWriter, r *http.Request) {
	mood := chi.URLParam(r, "mood")

	language := session.DefaultLanguage
	if sess := middleware.SessionFromContext(r.Context()); sess != nil {
		language = sess.Language
	}

	recipe, err := h.recipeService.RandomByMood(r.Context(), mood, language)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, recipe)
}

// Moods handles GET /api/moods. The response body is a plain array of
// mood tags.
func (h *RecipeAPIHandlers) Moods(w http.ResponseWriter, r *http.Request) {
	moods, err := h.recipeService.Moods(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, moods)
}
