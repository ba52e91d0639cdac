package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Planner slots. Snacks are not plannable.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
)

// MealPlan is the weekly container for planned meals, unique per user and
// week. WeekStartDate is always the Monday of the week, formatted YYYY-MM-DD.
type MealPlan struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_plan_user_week" json:"user_id"`
	WeekStartDate Date          `gorm:"type:date;not null;uniqueIndex:idx_plan_user_week" json:"week_start_date"`
	Name          string        `gorm:"size:255;not null" json:"name"`
	PlannedMeals  []PlannedMeal `gorm:"constraint:OnDelete:CASCADE" json:"planned_meals,omitempty"`
}

func (MealPlan) TableName() string {
	return "meal_plans"
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PlannedMeal assigns a meal to one (date, slot) cell of a plan. At most one
// row exists per cell; re-assigning a cell overwrites MealID.
type PlannedMeal struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	MealPlanID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_planned_slot" json:"meal_plan_id"`
	MealID     uuid.UUID `gorm:"type:uuid;not null" json:"meal_id"`
	Date       Date      `gorm:"type:date;not null;uniqueIndex:idx_planned_slot" json:"date"`
	MealSlot   string    `gorm:"size:20;not null;uniqueIndex:idx_planned_slot" json:"meal_slot"`
	Meal       Meal      `json:"meal"`
}

func (PlannedMeal) TableName() string {
	return "planned_meals"
}

func (pm *PlannedMeal) BeforeCreate(tx *gorm.DB) error {
	if pm.ID == uuid.Nil {
		pm.ID = uuid.New()
	}
	return nil
}
