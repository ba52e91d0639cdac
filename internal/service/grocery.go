package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealweek/backend/internal/models"
)

// shoppingCategories maps an ingredient's nutrition category to the aisle
// grouping used on grocery lists.
var shoppingCategories = map[string]string{
	models.CategoryVegetables: models.ShoppingProduce,
	models.CategoryFruits:     models.ShoppingProduce,
	models.CategoryProtein:    models.ShoppingMeat,
	models.CategoryDairy:      models.ShoppingDairy,
	models.CategoryCarbs:      models.ShoppingPantry,
	models.CategoryFats:       models.ShoppingPantry,
	models.CategoryOther:      models.ShoppingOther,
}

func shoppingCategoryFor(ingredientCategory string) string {
	if c, ok := shoppingCategories[ingredientCategory]; ok {
		return c
	}
	return models.ShoppingOther
}

// GroceryService manages grocery lists and generates them from meal plans.
type GroceryService struct {
	db *gorm.DB
}

func NewGroceryService(db *gorm.DB) *GroceryService {
	return &GroceryService{db: db}
}

// ListLists returns the user's grocery lists, newest first.
func (s *GroceryService) ListLists(ctx context.Context, userID uuid.UUID) ([]models.GroceryList, error) {
	var lists []models.GroceryList
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

// GetList returns one list with its items.
func (s *GroceryService) GetList(ctx context.Context, userID, listID uuid.UUID) (*models.GroceryList, error) {
	var list models.GroceryList
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND user_id = ?", listID, userID).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &list, nil
}

// DeleteList removes a list and its items.
func (s *GroceryService) DeleteList(ctx context.Context, userID, listID uuid.UUID) error {
	var list models.GroceryList
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", listID, userID).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("grocery_list_id = ?", list.ID).Delete(&models.GroceryItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.GroceryList{}, "id = ?", list.ID).Error
	})
}

// SetItemChecked flips the checked state of one item on a list the user owns.
func (s *GroceryService) SetItemChecked(ctx context.Context, userID, listID, itemID uuid.UUID, checked bool) error {
	var list models.GroceryList
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", listID, userID).
		First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	res := s.db.WithContext(ctx).
		Model(&models.GroceryItem{}).
		Where("id = ? AND grocery_list_id = ?", itemID, list.ID).
		Update("is_checked", checked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// mergedItem accumulates quantities for one (ingredient name, unit) pair.
type mergedItem struct {
	name     string
	quantity float64
	unit     string
	category string
}

// Generate builds a grocery list from the plan of the week containing date.
// Ingredient links are merged by (name, unit); the same ingredient in two
// units stays as two line items since quantities are not converted to grams
// here. Prior lists generated from the same plan are replaced.
func (s *GroceryService) Generate(ctx context.Context, userID uuid.UUID, date time.Time) (*models.GroceryList, error) {
	weekStart := WeekStart(date)

	var plan models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND week_start_date = ?", userID, weekStart.Format(DateLayout)).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var assignments []models.PlannedMeal
	if err := s.db.WithContext(ctx).
		Where("meal_plan_id = ?", plan.ID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, ErrEmptyPlan
	}

	seen := make(map[uuid.UUID]bool)
	var mealIDs []uuid.UUID
	for _, a := range assignments {
		if !seen[a.MealID] {
			seen[a.MealID] = true
			mealIDs = append(mealIDs, a.MealID)
		}
	}

	var links []models.MealIngredient
	if err := s.db.WithContext(ctx).
		Preload("Ingredient").
		Where("meal_id IN ?", mealIDs).
		Find(&links).Error; err != nil {
		return nil, err
	}

	merged := make(map[string]*mergedItem)
	var order []string
	for _, l := range links {
		key := l.Ingredient.Name + "|" + l.Unit
		if m, ok := merged[key]; ok {
			m.quantity += l.Quantity
			continue
		}
		merged[key] = &mergedItem{
			name:     l.Ingredient.Name,
			quantity: l.Quantity,
			unit:     l.Unit,
			category: shoppingCategoryFor(l.Ingredient.Category),
		}
		order = append(order, key)
	}

	list := models.GroceryList{
		UserID:     userID,
		MealPlanID: &plan.ID,
		Name:       "Grocery List - Week of " + weekStart.Format("Jan 02, 2006"),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Replace any list previously generated from this plan.
		var stale []models.GroceryList
		if err := tx.Where("user_id = ? AND meal_plan_id = ?", userID, plan.ID).Find(&stale).Error; err != nil {
			return err
		}
		for _, old := range stale {
			if err := tx.Where("grocery_list_id = ?", old.ID).Delete(&models.GroceryItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.GroceryList{}, "id = ?", old.ID).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&list).Error; err != nil {
			return err
		}
		for _, key := range order {
			m := merged[key]
			item := models.GroceryItem{
				GroceryListID: list.ID,
				ItemName:      m.name,
				Quantity:      m.quantity,
				Unit:          m.unit,
				Category:      m.category,
				IsChecked:     false,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			list.Items = append(list.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}
