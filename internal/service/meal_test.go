package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealweek/backend/internal/models"
)

func TestMealCRUDAndOwnership(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "meals@example.com")
	other := createTestUser(t, db, "other@example.com")
	svc := NewMealService(db)
	ctx := context.Background()

	meal, err := svc.CreateMeal(ctx, &models.Meal{
		UserID:      user.ID,
		Name:        "Veggie Curry",
		Category:    models.MealDinner,
		Servings:    4,
		DietaryTags: models.StringArray{"vegetarian"},
	})
	require.NoError(t, err)

	got, err := svc.GetMeal(ctx, user.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Veggie Curry", got.Name)
	assert.Equal(t, models.StringArray{"vegetarian"}, got.DietaryTags)

	_, err = svc.GetMeal(ctx, other.ID, meal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.UpdateMeal(ctx, user.ID, meal.ID, &models.Meal{
		Name:     "Veggie Curry v2",
		Category: models.MealLunch,
		Servings: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Veggie Curry v2", updated.Name)
	assert.Equal(t, models.MealLunch, updated.Category)

	require.NoError(t, svc.DeleteMeal(ctx, user.ID, meal.ID))
	_, err = svc.GetMeal(ctx, user.ID, meal.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMealsFilters(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "meals@example.com")
	svc := NewMealService(db)
	ctx := context.Background()

	for _, m := range []models.Meal{
		{UserID: user.ID, Name: "Chicken Curry", Category: models.MealDinner, Servings: 2},
		{UserID: user.ID, Name: "Chicken Salad", Category: models.MealLunch, Servings: 2},
		{UserID: user.ID, Name: "Oatmeal", Category: models.MealBreakfast, Servings: 1},
	} {
		m := m
		require.NoError(t, db.Create(&m).Error)
	}

	all, err := svc.ListMeals(ctx, user.ID, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	chicken, err := svc.ListMeals(ctx, user.ID, "chicken", "")
	require.NoError(t, err)
	assert.Len(t, chicken, 2)

	lunches, err := svc.ListMeals(ctx, user.ID, "chicken", models.MealLunch)
	require.NoError(t, err)
	require.Len(t, lunches, 1)
	assert.Equal(t, "Chicken Salad", lunches[0].Name)
}

func TestIngredientLinksRefreshCachedNutrition(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "meals@example.com")
	chicken := createTestIngredient(t, db, "Chicken Breast", models.CategoryProtein, 165, 31, 0, 3.6)
	svc := NewMealService(db)
	ctx := context.Background()

	meal := createTestMeal(t, db, user.ID, "Grilled Chicken")

	link, err := svc.AddIngredient(ctx, user.ID, meal.ID, chicken.ID, 200, "g")
	require.NoError(t, err)

	got, err := svc.GetMeal(ctx, user.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, 330.0, got.Calories)
	assert.Equal(t, 62.0, got.ProteinG)
	assert.Equal(t, 0.0, got.CarbsG)
	assert.Equal(t, 7.2, got.FatG)

	require.NoError(t, svc.UpdateIngredient(ctx, user.ID, meal.ID, link.ID, 100, "g"))
	got, err = svc.GetMeal(ctx, user.ID, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, 165.0, got.Calories)
	assert.Equal(t, 31.0, got.ProteinG)

	require.NoError(t, svc.RemoveIngredient(ctx, user.ID, meal.ID, link.ID))
	got, err = svc.GetMeal(ctx, user.ID, meal.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Calories)
	assert.Zero(t, got.ProteinG)
	assert.Zero(t, got.FatG)
}

func TestIngredientLinkErrors(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "meals@example.com")
	other := createTestUser(t, db, "other@example.com")
	chicken := createTestIngredient(t, db, "Chicken Breast", models.CategoryProtein, 165, 31, 0, 3.6)
	svc := NewMealService(db)
	ctx := context.Background()

	meal := createTestMeal(t, db, user.ID, "Grilled Chicken")

	// Unknown ingredient.
	_, err := svc.AddIngredient(ctx, user.ID, meal.ID, user.ID, 100, "g")
	assert.ErrorIs(t, err, ErrNotFound)

	// Not the meal owner.
	_, err = svc.AddIngredient(ctx, other.ID, meal.ID, chicken.ID, 100, "g")
	assert.ErrorIs(t, err, ErrNotFound)

	// Unknown link id.
	assert.ErrorIs(t, svc.UpdateIngredient(ctx, user.ID, meal.ID, chicken.ID, 100, "g"), ErrNotFound)
	assert.ErrorIs(t, svc.RemoveIngredient(ctx, user.ID, meal.ID, chicken.ID), ErrNotFound)
}

func TestDeleteMealRemovesLinksAndAssignments(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "meals@example.com")
	chicken := createTestIngredient(t, db, "Chicken Breast", models.CategoryProtein, 165, 31, 0, 3.6)
	meals := NewMealService(db)
	planner := NewPlannerService(db)
	ctx := context.Background()

	meal := createTestMeal(t, db, user.ID, "Grilled Chicken")
	_, err := meals.AddIngredient(ctx, user.ID, meal.ID, chicken.ID, 100, "g")
	require.NoError(t, err)
	_, err = planner.AssignMeal(ctx, user.ID, meal.ID, monday, models.SlotDinner)
	require.NoError(t, err)

	require.NoError(t, meals.DeleteMeal(ctx, user.ID, meal.ID))

	var linkCount, plannedCount int64
	require.NoError(t, db.Model(&models.MealIngredient{}).Count(&linkCount).Error)
	require.NoError(t, db.Model(&models.PlannedMeal{}).Count(&plannedCount).Error)
	assert.Zero(t, linkCount)
	assert.Zero(t, plannedCount)
}
