package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealweek/backend/internal/models"
	"github.com/mealweek/backend/internal/service"
	"github.com/mealweek/backend/internal/testdb"
)

// TestWeeklyPlanningFlow runs the whole planning flow against a real
// PostgreSQL instance: register, build a meal, plan a week, read the
// nutrition summary and generate the grocery list.
func TestWeeklyPlanningFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	td := testdb.SetupPostgres(t)
	db := td.DB
	ctx := context.Background()

	auth := service.NewAuthService(db, "integration-secret")
	users := service.NewUserService(db)
	ingredients := service.NewIngredientService(db)
	meals := service.NewMealService(db)
	planner := service.NewPlannerService(db)
	grocery := service.NewGroceryService(db)

	token, err := auth.Register("carol@example.com", "password123", "Carol", "Jones")
	require.NoError(t, err)
	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	userID := claims.UserID

	profile, err := users.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", profile.Email)

	chicken, err := ingredients.CreateIngredient(ctx, &models.Ingredient{
		Name:            "Chicken Breast",
		Category:        models.CategoryProtein,
		CaloriesPer100g: 165,
		ProteinPer100g:  31,
		FatPer100g:      3.6,
	})
	require.NoError(t, err)
	broccoli, err := ingredients.CreateIngredient(ctx, &models.Ingredient{
		Name:            "Broccoli",
		Category:        models.CategoryVegetables,
		CaloriesPer100g: 34,
		ProteinPer100g:  2.8,
		CarbsPer100g:    7,
		FatPer100g:      0.4,
	})
	require.NoError(t, err)

	meal, err := meals.CreateMeal(ctx, &models.Meal{
		UserID:   userID,
		Name:     "Chicken and Broccoli",
		Category: models.MealDinner,
		Servings: 2,
	})
	require.NoError(t, err)
	_, err = meals.AddIngredient(ctx, userID, meal.ID, chicken.ID, 300, "g")
	require.NoError(t, err)
	_, err = meals.AddIngredient(ctx, userID, meal.ID, broccoli.ID, 150, "g")
	require.NoError(t, err)

	got, err := meals.GetMeal(ctx, userID, meal.ID)
	require.NoError(t, err)
	// 300g chicken + 150g broccoli.
	assert.Equal(t, 546.0, got.Calories)
	assert.Equal(t, 97.2, got.ProteinG)

	monday := service.WeekStart(time.Now().UTC())
	for i := 0; i < 3; i++ {
		_, err = planner.AssignMeal(ctx, userID, meal.ID, monday.AddDate(0, 0, i), models.SlotDinner)
		require.NoError(t, err)
	}

	summary, err := planner.WeeklyNutrition(ctx, userID, monday)
	require.NoError(t, err)
	require.Len(t, summary.Days, 7)
	assert.Equal(t, 546.0, summary.Days[0].Calories)
	assert.Zero(t, summary.Days[3].Calories)

	list, err := grocery.Generate(ctx, userID, monday)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)

	byName := make(map[string]models.GroceryItem)
	for _, item := range list.Items {
		byName[item.ItemName] = item
	}
	// One meal assigned three times still contributes its ingredients once
	// per distinct meal.
	assert.Equal(t, 300.0, byName["Chicken Breast"].Quantity)
	assert.Equal(t, models.ShoppingMeat, byName["Chicken Breast"].Category)
	assert.Equal(t, 150.0, byName["Broccoli"].Quantity)
	assert.Equal(t, models.ShoppingProduce, byName["Broccoli"].Category)
}
