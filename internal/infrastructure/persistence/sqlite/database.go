// Package sqlite provides SQLite database setup and seeding
package sqlite

import (
	"fmt"

	"github.com/moodrecipe/api/internal/domain/recipe"
	gormModels "github.com/moodrecipe/api/internal/infrastructure/persistence/gorm"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&gormModels.UserModel{},
		&gormModels.RecipeModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with the catalog and a development
// user. Both steps are skipped when their table already has rows.
func SeedDatabase(db *gorm.DB, bcryptCost int) error {
	if err := seedRecipes(db); err != nil {
		return err
	}
	return seedDevUser(db, bcryptCost)
}

func seedRecipes(db *gorm.DB) error {
	var count int64
	db.Model(&gormModels.RecipeModel{}).Count(&count)
	if count > 0 {
		return nil // Already seeded
	}

	for _, r := range recipe.Seed {
		model := gormModels.RecipeToModel(r)
		model.ID = 0 // let the store assign ids
		if err := db.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", r.Name, err)
		}
	}

	return nil
}

func seedDevUser(db *gorm.DB, bcryptCost int) error {
	var count int64
	db.Model(&gormModels.UserModel{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	devUser := gormModels.UserModel{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: string(hash),
	}
	if err := db.Create(&devUser).Error; err != nil {
		return fmt.Errorf("failed to seed dev user: %w", err)
	}

	return nil
}

// ParseLogLevel maps the config string to a GORM log level
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
