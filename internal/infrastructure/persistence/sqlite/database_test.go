package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormlogger "gorm.io/gorm/logger"

	gormModels "github.com/moodrecipe/api/internal/infrastructure/persistence/gorm"
)

func TestSetupDatabase_EmptyPathUsesMemory(t *testing.T) {
	db, err := SetupDatabase("", gormlogger.Silent)
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&gormModels.UserModel{}))
	assert.True(t, db.Migrator().HasTable(&gormModels.RecipeModel{}))
}

func TestSeedDatabase(t *testing.T) {
	db, err := SetupDatabase(":memory:", gormlogger.Silent)
	require.NoError(t, err)

	require.NoError(t, SeedDatabase(db, bcrypt.MinCost))

	var recipeCount int64
	db.Model(&gormModels.RecipeModel{}).Count(&recipeCount)
	assert.Equal(t, int64(32), recipeCount)

	var moods []string
	db.Model(&gormModels.RecipeModel{}).Distinct("mood").Pluck("mood", &moods)
	assert.Len(t, moods, 8)

	var dev gormModels.UserModel
	require.NoError(t, db.First(&dev, "username = ?", "testuser").Error)
	assert.Equal(t, "test@example.com", dev.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(dev.PasswordHash), []byte("password123")))
}

func TestSeedDatabase_Idempotent(t *testing.T) {
	db, err := SetupDatabase(":memory:", gormlogger.Silent)
	require.NoError(t, err)

	require.NoError(t, SeedDatabase(db, bcrypt.MinCost))
	require.NoError(t, SeedDatabase(db, bcrypt.MinCost))

	var recipeCount, userCount int64
	db.Model(&gormModels.RecipeModel{}).Count(&recipeCount)
	db.Model(&gormModels.UserModel{}).Count(&userCount)
	assert.Equal(t, int64(32), recipeCount)
	assert.Equal(t, int64(1), userCount)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, ParseLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, ParseLogLevel("error"))
	assert.Equal(t, gormlogger.Info, ParseLogLevel("info"))
	assert.Equal(t, gormlogger.Warn, ParseLogLevel("warn"))
	assert.Equal(t, gormlogger.Warn, ParseLogLevel(""))
}
