package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shopping categories, mapped from ingredient categories during generation.
const (
	ShoppingProduce = "produce"
	ShoppingMeat    = "meat"
	ShoppingDairy   = "dairy"
	ShoppingPantry  = "pantry"
	ShoppingOther   = "other"
)

// GroceryList is a generated shopping list, optionally linked to the meal
// plan it was built from.
type GroceryList struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time     `json:"created_at"`
	UserID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	MealPlanID *uuid.UUID    `gorm:"type:uuid;index" json:"meal_plan_id,omitempty"`
	Name       string        `gorm:"size:255;not null" json:"name"`
	Items      []GroceryItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (GroceryList) TableName() string {
	return "grocery_lists"
}

func (l *GroceryList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// GroceryItem is one merged line of a grocery list. Unit is free text carried
// over from the source ingredient links, not the fixed unit enumeration.
type GroceryItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	GroceryListID uuid.UUID `gorm:"type:uuid;not null;index" json:"grocery_list_id"`
	ItemName      string    `gorm:"size:255;not null" json:"item_name"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	Unit          string    `gorm:"size:50;not null" json:"unit"`
	Category      string    `gorm:"size:20;not null" json:"category"`
	IsChecked     bool      `gorm:"not null;default:false" json:"is_checked"`
}

func (GroceryItem) TableName() string {
	return "grocery_items"
}

func (i *GroceryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
