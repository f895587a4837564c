// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"

	"github.com/moodrecipe/api/internal/domain/recipe"
	"github.com/moodrecipe/api/internal/domain/user"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uint) (*user.User, error)
	// FindByIdentifier matches either username or email with a single query.
	FindByIdentifier(ctx context.Context, identifier string) (*user.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

// RecipeRepository defines the interface for catalog access.
// The catalog is read-only at runtime; writes happen only during seeding.
type RecipeRepository interface {
	FindByMood(ctx context.Context, mood string) ([]recipe.Recipe, error)
	// DistinctMoods returns the mood tags present in the catalog in a
	// stable order.
	DistinctMoods(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}
