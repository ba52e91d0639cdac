package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealweek/backend/internal/models"
)

func TestShoppingCategoryFor(t *testing.T) {
	assert.Equal(t, models.ShoppingProduce, shoppingCategoryFor(models.CategoryVegetables))
	assert.Equal(t, models.ShoppingProduce, shoppingCategoryFor(models.CategoryFruits))
	assert.Equal(t, models.ShoppingMeat, shoppingCategoryFor(models.CategoryProtein))
	assert.Equal(t, models.ShoppingDairy, shoppingCategoryFor(models.CategoryDairy))
	assert.Equal(t, models.ShoppingPantry, shoppingCategoryFor(models.CategoryCarbs))
	assert.Equal(t, models.ShoppingPantry, shoppingCategoryFor(models.CategoryFats))
	assert.Equal(t, models.ShoppingOther, shoppingCategoryFor(models.CategoryOther))
	assert.Equal(t, models.ShoppingOther, shoppingCategoryFor("something else"))
}

func TestGenerateRequiresPlanWithMeals(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "grocery@example.com")
	grocery := NewGroceryService(db)
	planner := NewPlannerService(db)
	ctx := context.Background()

	// No plan at all for this week.
	_, err := grocery.Generate(ctx, user.ID, monday)
	assert.ErrorIs(t, err, ErrNotFound)

	// Viewing the week creates an empty plan, which still cannot generate.
	_, _, err = planner.GetWeek(ctx, user.ID, monday)
	require.NoError(t, err)
	_, err = grocery.Generate(ctx, user.ID, monday)
	assert.ErrorIs(t, err, ErrEmptyPlan)
}

func TestGenerateMergesByNameAndUnit(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "grocery@example.com")
	chicken := createTestIngredient(t, db, "Chicken Breast", models.CategoryProtein, 165, 31, 0, 3.6)
	rice := createTestIngredient(t, db, "White Rice", models.CategoryCarbs, 130, 2.7, 28, 0.3)

	meals := NewMealService(db)
	planner := NewPlannerService(db)
	grocery := NewGroceryService(db)
	ctx := context.Background()

	meal1 := createTestMeal(t, db, user.ID, "Chicken and Rice")
	_, err := meals.AddIngredient(ctx, user.ID, meal1.ID, chicken.ID, 200, "g")
	require.NoError(t, err)
	_, err = meals.AddIngredient(ctx, user.ID, meal1.ID, rice.ID, 1, "cup")
	require.NoError(t, err)

	meal2 := createTestMeal(t, db, user.ID, "Grilled Chicken")
	_, err = meals.AddIngredient(ctx, user.ID, meal2.ID, chicken.ID, 150, "g")
	require.NoError(t, err)
	_, err = meals.AddIngredient(ctx, user.ID, meal2.ID, chicken.ID, 1, "piece")
	require.NoError(t, err)

	_, err = planner.AssignMeal(ctx, user.ID, meal1.ID, monday, models.SlotDinner)
	require.NoError(t, err)
	_, err = planner.AssignMeal(ctx, user.ID, meal2.ID, monday.AddDate(0, 0, 1), models.SlotDinner)
	require.NoError(t, err)
	// The same meal twice does not double its ingredients per occurrence key.
	_, err = planner.AssignMeal(ctx, user.ID, meal2.ID, monday.AddDate(0, 0, 2), models.SlotDinner)
	require.NoError(t, err)

	list, err := grocery.Generate(ctx, user.ID, monday.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, "Grocery List - Week of Mar 02, 2026", list.Name)
	require.Len(t, list.Items, 3)

	byKey := make(map[string]models.GroceryItem)
	for _, item := range list.Items {
		byKey[item.ItemName+"|"+item.Unit] = item
	}

	// Same ingredient in the same unit merges across meals.
	assert.Equal(t, 350.0, byKey["Chicken Breast|g"].Quantity)
	assert.Equal(t, models.ShoppingMeat, byKey["Chicken Breast|g"].Category)
	// A different unit stays a separate line item.
	assert.Equal(t, 1.0, byKey["Chicken Breast|piece"].Quantity)
	assert.Equal(t, 1.0, byKey["White Rice|cup"].Quantity)
	assert.Equal(t, models.ShoppingPantry, byKey["White Rice|cup"].Category)
}

func TestGenerateReplacesPriorList(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "grocery@example.com")
	chicken := createTestIngredient(t, db, "Chicken Breast", models.CategoryProtein, 165, 31, 0, 3.6)

	meals := NewMealService(db)
	planner := NewPlannerService(db)
	grocery := NewGroceryService(db)
	ctx := context.Background()

	meal := createTestMeal(t, db, user.ID, "Chicken")
	_, err := meals.AddIngredient(ctx, user.ID, meal.ID, chicken.ID, 100, "g")
	require.NoError(t, err)
	_, err = planner.AssignMeal(ctx, user.ID, meal.ID, monday, models.SlotLunch)
	require.NoError(t, err)

	first, err := grocery.Generate(ctx, user.ID, monday)
	require.NoError(t, err)
	second, err := grocery.Generate(ctx, user.ID, monday)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	lists, err := grocery.ListLists(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, second.ID, lists[0].ID)

	// Items of the replaced list are gone too.
	var itemCount int64
	require.NoError(t, db.Model(&models.GroceryItem{}).Count(&itemCount).Error)
	assert.EqualValues(t, 1, itemCount)
}

func TestGroceryListOwnership(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "grocery@example.com")
	other := createTestUser(t, db, "other@example.com")
	chicken := createTestIngredient(t, db, "Chicken Breast", models.CategoryProtein, 165, 31, 0, 3.6)

	meals := NewMealService(db)
	planner := NewPlannerService(db)
	grocery := NewGroceryService(db)
	ctx := context.Background()

	meal := createTestMeal(t, db, user.ID, "Chicken")
	_, err := meals.AddIngredient(ctx, user.ID, meal.ID, chicken.ID, 100, "g")
	require.NoError(t, err)
	_, err = planner.AssignMeal(ctx, user.ID, meal.ID, monday, models.SlotLunch)
	require.NoError(t, err)

	list, err := grocery.Generate(ctx, user.ID, monday)
	require.NoError(t, err)

	_, err = grocery.GetList(ctx, other.ID, list.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, grocery.DeleteList(ctx, other.ID, list.ID), ErrNotFound)
	assert.ErrorIs(t, grocery.SetItemChecked(ctx, other.ID, list.ID, list.Items[0].ID, true), ErrNotFound)

	require.NoError(t, grocery.SetItemChecked(ctx, user.ID, list.ID, list.Items[0].ID, true))
	got, err := grocery.GetList(ctx, user.ID, list.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].IsChecked)

	require.NoError(t, grocery.DeleteList(ctx, user.ID, list.ID))
	_, err = grocery.GetList(ctx, user.ID, list.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
