package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal categories.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// StringArray is a custom type for storing string slices as JSON.
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Meal is a user-owned recipe. Calories, ProteinG, CarbsG and FatG are
// denormalized totals that must be recomputed whenever the ingredient set
// changes.
type Meal struct {
	ID                     uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
	DeletedAt              gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID                 uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name                   string           `gorm:"size:100;not null" json:"name"`
	Description            string           `gorm:"type:text" json:"description"`
	Category               string           `gorm:"size:20;not null" json:"category"`
	PreparationTimeMinutes int              `gorm:"not null;default:0" json:"preparation_time_minutes"`
	CookingTimeMinutes     int              `gorm:"not null;default:0" json:"cooking_time_minutes"`
	Servings               int              `gorm:"not null;default:2" json:"servings"`
	Instructions           string           `gorm:"type:text" json:"instructions"`
	DietaryTags            StringArray      `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_tags"`
	Calories               float64          `gorm:"not null;default:0" json:"calories"`
	ProteinG               float64          `gorm:"not null;default:0" json:"protein_g"`
	CarbsG                 float64          `gorm:"not null;default:0" json:"carbs_g"`
	FatG                   float64          `gorm:"not null;default:0" json:"fat_g"`
	Ingredients            []MealIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

func (Meal) TableName() string {
	return "meals"
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MealIngredient links a meal to an ingredient with a quantity and unit.
// Rows are owned by their meal and removed with it.
type MealIngredient struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	MealID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"meal_id"`
	IngredientID uuid.UUID  `gorm:"type:uuid;not null" json:"ingredient_id"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
	Unit         string     `gorm:"size:20;not null" json:"unit"`
	Ingredient   Ingredient `json:"ingredient"`
}

func (MealIngredient) TableName() string {
	return "meal_ingredients"
}

func (mi *MealIngredient) BeforeCreate(tx *gorm.DB) error {
	if mi.ID == uuid.Nil {
		mi.ID = uuid.New()
	}
	return nil
}
