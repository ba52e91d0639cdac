package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealweek/backend/internal/models"
	"github.com/mealweek/backend/internal/nutrition"
)

// MealService handles meal CRUD and the ingredient links of a meal. Every
// link mutation recomputes the meal's cached nutrition inside the same
// transaction, so readers never observe stale totals.
type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// CreateMeal stores a new meal for the user.
func (s *MealService) CreateMeal(ctx context.Context, meal *models.Meal) (*models.Meal, error) {
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// GetMeal returns a meal with its ingredient links.
func (s *MealService) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// ListMeals lists the user's meals, optionally filtered by a name search and
// a category.
func (s *MealService) ListMeals(ctx context.Context, userID uuid.UUID, search, category string) ([]models.Meal, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var meals []models.Meal
	if err := query.Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// UpdateMeal updates a meal's own fields. Cached nutrition is untouched since
// the ingredient set does not change here.
func (s *MealService) UpdateMeal(ctx context.Context, userID, mealID uuid.UUID, updates *models.Meal) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	meal.Name = updates.Name
	meal.Description = updates.Description
	meal.Category = updates.Category
	meal.PreparationTimeMinutes = updates.PreparationTimeMinutes
	meal.CookingTimeMinutes = updates.CookingTimeMinutes
	meal.Servings = updates.Servings
	meal.Instructions = updates.Instructions
	meal.DietaryTags = updates.DietaryTags
	if err := s.db.WithContext(ctx).Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes a meal and its ingredient links.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.PlannedMeal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Meal{}, "id = ?", meal.ID).Error
	})
}

// AddIngredient links an ingredient to a meal and refreshes the cached
// nutrition totals.
func (s *MealService) AddIngredient(ctx context.Context, userID, mealID, ingredientID uuid.UUID, quantity float64, unit string) (*models.MealIngredient, error) {
	if _, err := s.GetMeal(ctx, userID, mealID); err != nil {
		return nil, err
	}

	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", ingredientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	link := models.MealIngredient{
		MealID:       mealID,
		IngredientID: ingredientID,
		Quantity:     quantity,
		Unit:         unit,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		return refreshNutrition(tx, mealID)
	})
	if err != nil {
		return nil, err
	}
	link.Ingredient = ingredient
	return &link, nil
}

// UpdateIngredient changes the quantity or unit of an existing link and
// refreshes the cached nutrition totals.
func (s *MealService) UpdateIngredient(ctx context.Context, userID, mealID, linkID uuid.UUID, quantity float64, unit string) error {
	if _, err := s.GetMeal(ctx, userID, mealID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.MealIngredient{}).
			Where("id = ? AND meal_id = ?", linkID, mealID).
			Updates(map[string]interface{}{"quantity": quantity, "unit": unit})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return refreshNutrition(tx, mealID)
	})
}

// RemoveIngredient deletes a link and refreshes the cached nutrition totals.
func (s *MealService) RemoveIngredient(ctx context.Context, userID, mealID, linkID uuid.UUID) error {
	if _, err := s.GetMeal(ctx, userID, mealID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND meal_id = ?", linkID, mealID).Delete(&models.MealIngredient{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return refreshNutrition(tx, mealID)
	})
}

// refreshNutrition recomputes a meal's cached totals from its current
// ingredient links and persists them. Runs inside the caller's transaction.
func refreshNutrition(tx *gorm.DB, mealID uuid.UUID) error {
	var links []models.MealIngredient
	if err := tx.Preload("Ingredient").Where("meal_id = ?", mealID).Find(&links).Error; err != nil {
		return err
	}

	nl := make([]nutrition.Link, len(links))
	for i, l := range links {
		nl[i] = nutrition.Link{
			Quantity:        l.Quantity,
			Unit:            l.Unit,
			CaloriesPer100g: l.Ingredient.CaloriesPer100g,
			ProteinPer100g:  l.Ingredient.ProteinPer100g,
			CarbsPer100g:    l.Ingredient.CarbsPer100g,
			FatPer100g:      l.Ingredient.FatPer100g,
		}
	}
	totals := nutrition.ForLinks(nl)

	return tx.Model(&models.Meal{}).Where("id = ?", mealID).Updates(map[string]interface{}{
		"calories":  totals.Calories,
		"protein_g": totals.ProteinG,
		"carbs_g":   totals.CarbsG,
		"fat_g":     totals.FatG,
	}).Error
}
