package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealweek/backend/internal/models"
)

func TestIngredientCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, &models.Ingredient{
		Name:            "Chicken Breast",
		Category:        models.CategoryProtein,
		CaloriesPer100g: 165,
		ProteinPer100g:  31,
		FatPer100g:      3.6,
	})
	require.NoError(t, err)
	createTestIngredient(t, db, "Broccoli", models.CategoryVegetables, 34, 2.8, 7, 0.4)
	createTestIngredient(t, db, "Chickpeas", models.CategoryProtein, 164, 8.9, 27, 2.6)

	got, err := svc.GetIngredient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Breast", got.Name)

	_, err = svc.GetIngredient(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := svc.ListIngredients(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Ordered by name.
	assert.Equal(t, "Broccoli", all[0].Name)

	matches, err := svc.ListIngredients(ctx, "chick")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}
