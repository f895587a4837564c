package gorm

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/moodrecipe/api/pkg/errors"

	"github.com/moodrecipe/api/internal/domain/user"
	"github.com/moodrecipe/api/internal/ports/outbound"
	"gorm.io/gorm"
)

// UserRepository implements the user repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) outbound.UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. A unique-constraint violation on username or
// email surfaces as a conflict error so concurrent registrations resolve
// to exactly one winner.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := UserToModel(u)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return apperrors.NewConflictError("Username or email already exists")
		}
		return result.Error
	}

	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	return nil
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// FindByIdentifier finds a user whose username or email matches identifier
func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (*user.User, error) {
	var model UserModel

	result := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, result.Error
	}

	return ModelToUser(&model), nil
}

// ExistsByUsernameOrEmail reports whether either value is already taken
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64

	result := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// isUniqueViolation matches the driver-specific duplicate-key errors
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
