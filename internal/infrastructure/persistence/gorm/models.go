// Package gorm provides GORM model definitions and repository implementations
package gorm

import (
	"time"

	"github.com/moodrecipe/api/internal/domain/recipe"
	"github.com/moodrecipe/api/internal/domain/user"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName overrides the default table name
func (UserModel) TableName() string {
	return "users"
}

// RecipeModel represents the GORM model for catalog recipes
type RecipeModel struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"type:varchar(255);not null"`
	Ingredients     string `gorm:"type:text;not null"`
	Instructions    string `gorm:"type:text;not null"`
	Mood            string `gorm:"type:varchar(50);not null;index"`
	PrepTimeMinutes int    `gorm:"column:prep_time_minutes;default:0"`
	Difficulty      string `gorm:"type:varchar(20)"`
}

// TableName overrides the default table name
func (RecipeModel) TableName() string {
	return "recipes"
}

// UserToModel converts a domain user to its GORM model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

// ModelToUser converts a GORM model to the domain user
func ModelToUser(m *UserModel) *user.User {
	return &user.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// RecipeToModel converts a domain recipe to its GORM model
func RecipeToModel(r recipe.Recipe) RecipeModel {
	return RecipeModel{
		ID:              r.ID,
		Name:            r.Name,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		Mood:            r.Mood,
		PrepTimeMinutes: r.PrepTimeMinutes,
		Difficulty:      string(r.Difficulty),
	}
}

// ModelToRecipe converts a GORM model to the domain recipe
func ModelToRecipe(m RecipeModel) recipe.Recipe {
	return recipe.Recipe{
		ID:              m.ID,
		Name:            m.Name,
		Ingredients:     m.Ingredients,
		Instructions:    m.Instructions,
		Mood:            m.Mood,
		PrepTimeMinutes: m.PrepTimeMinutes,
		Difficulty:      recipe.Difficulty(m.Difficulty),
	}
}
