package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient categories.
const (
	CategoryProtein    = "protein"
	CategoryCarbs      = "carbs"
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
	CategoryDairy      = "dairy"
	CategoryFats       = "fats"
	CategoryOther      = "other"
)

// Ingredient is a shared catalog entry with nutrition values per 100 grams.
type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	Name            string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Category        string    `gorm:"size:20;not null" json:"category"`
	CaloriesPer100g float64   `gorm:"not null" json:"calories_per_100g"`
	ProteinPer100g  float64   `gorm:"not null" json:"protein_per_100g"`
	CarbsPer100g    float64   `gorm:"not null" json:"carbs_per_100g"`
	FatPer100g      float64   `gorm:"not null" json:"fat_per_100g"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
