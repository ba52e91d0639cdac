package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mealweek/backend/internal/models"
	"github.com/mealweek/backend/internal/testdb"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testdb.NewSQLite(t)
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestIngredient(t *testing.T, db *gorm.DB, name, category string, cal, protein, carbs, fat float64) *models.Ingredient {
	t.Helper()
	ing := &models.Ingredient{
		Name:            name,
		Category:        category,
		CaloriesPer100g: cal,
		ProteinPer100g:  protein,
		CarbsPer100g:    carbs,
		FatPer100g:      fat,
	}
	require.NoError(t, db.Create(ing).Error)
	return ing
}

func createTestMeal(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *models.Meal {
	t.Helper()
	meal := &models.Meal{
		UserID:   userID,
		Name:     name,
		Category: models.MealDinner,
		Servings: 2,
	}
	require.NoError(t, db.Create(meal).Error)
	return meal
}
