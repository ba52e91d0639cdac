package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mealweek/backend/internal/models"
	"github.com/mealweek/backend/internal/nutrition"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = models.DateLayout

// WeekStart resolves any date to the Monday of its week. Every component
// that buckets by week goes through this function.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// DayNutrition is the nutrition sum of all assignments on one calendar date.
type DayNutrition struct {
	Date string `json:"date"`
	nutrition.Totals
}

// WeeklyNutrition always contains seven day entries, Monday through Sunday.
// The average divides by seven regardless of how many days have assignments.
type WeeklyNutrition struct {
	Days          []DayNutrition   `json:"days"`
	WeeklyAverage nutrition.Totals `json:"weekly_average"`
}

// PlannerService manages weekly meal plans and slot assignments.
type PlannerService struct {
	db *gorm.DB
}

func NewPlannerService(db *gorm.DB) *PlannerService {
	return &PlannerService{db: db}
}

// GetWeek returns the plan for the week containing date, creating it on
// first access, together with its assignments.
func (s *PlannerService) GetWeek(ctx context.Context, userID uuid.UUID, date time.Time) (*models.MealPlan, []models.PlannedMeal, error) {
	var plan *models.MealPlan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		plan, err = upsertPlan(tx, userID, WeekStart(date))
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	var assignments []models.PlannedMeal
	if err := s.db.WithContext(ctx).
		Preload("Meal").
		Where("meal_plan_id = ?", plan.ID).
		Find(&assignments).Error; err != nil {
		return nil, nil, err
	}
	return plan, assignments, nil
}

// upsertPlan returns the plan for (user, weekStart), creating it with a
// default name if none exists yet.
func upsertPlan(tx *gorm.DB, userID uuid.UUID, weekStart time.Time) (*models.MealPlan, error) {
	weekStartStr := weekStart.Format(DateLayout)

	var plan models.MealPlan
	err := tx.Where("user_id = ? AND week_start_date = ?", userID, weekStartStr).First(&plan).Error
	if err == nil {
		return &plan, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	plan = models.MealPlan{
		UserID:        userID,
		WeekStartDate: models.Date(weekStartStr),
		Name:          "Week of " + weekStart.Format("Jan 02, 2006"),
	}
	if err := tx.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// AssignMeal places a meal into the (date, slot) cell of the week's plan.
// An occupied cell has its meal reference overwritten; no duplicate row is
// created. The plan itself is created on first write to that week.
func (s *PlannerService) AssignMeal(ctx context.Context, userID, mealID uuid.UUID, date time.Time, slot string) (*models.PlannedMeal, error) {
	var meal models.Meal
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	dateStr := date.Format(DateLayout)
	var assignment models.PlannedMeal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := upsertPlan(tx, userID, WeekStart(date))
		if err != nil {
			return err
		}

		err = tx.Where("meal_plan_id = ? AND date = ? AND meal_slot = ?", plan.ID, dateStr, slot).
			First(&assignment).Error
		if err == nil {
			assignment.MealID = mealID
			return tx.Model(&assignment).Update("meal_id", mealID).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		assignment = models.PlannedMeal{
			MealPlanID: plan.ID,
			MealID:     mealID,
			Date:       models.Date(dateStr),
			MealSlot:   slot,
		}
		return tx.Create(&assignment).Error
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// RemoveAssignment deletes a slot assignment after verifying that its plan
// belongs to the requesting user.
func (s *PlannerService) RemoveAssignment(ctx context.Context, userID, assignmentID uuid.UUID) error {
	var assignment models.PlannedMeal
	err := s.db.WithContext(ctx).
		Joins("JOIN meal_plans ON meal_plans.id = planned_meals.meal_plan_id").
		Where("planned_meals.id = ? AND meal_plans.user_id = ?", assignmentID, userID).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.WithContext(ctx).Delete(&models.PlannedMeal{}, "id = ?", assignment.ID).Error
}

// WeeklyNutrition folds the cached nutrition of every assignment in the week
// into per-day sums and a weekly average. A week without a plan or without
// assignments yields seven zero days, never an error.
func (s *PlannerService) WeeklyNutrition(ctx context.Context, userID uuid.UUID, date time.Time) (*WeeklyNutrition, error) {
	weekStart := WeekStart(date)

	result := &WeeklyNutrition{Days: make([]DayNutrition, 7)}
	for i := range result.Days {
		result.Days[i].Date = weekStart.AddDate(0, 0, i).Format(DateLayout)
	}

	var plan models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND week_start_date = ?", userID, weekStart.Format(DateLayout)).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result, nil
		}
		return nil, err
	}

	var assignments []models.PlannedMeal
	if err := s.db.WithContext(ctx).
		Preload("Meal").
		Where("meal_plan_id = ?", plan.ID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	byDate := make(map[string]*DayNutrition, 7)
	for i := range result.Days {
		byDate[result.Days[i].Date] = &result.Days[i]
	}

	var weekTotals nutrition.Totals
	for _, a := range assignments {
		day, ok := byDate[string(a.Date)]
		if !ok {
			continue
		}
		day.Calories += a.Meal.Calories
		day.ProteinG += a.Meal.ProteinG
		day.CarbsG += a.Meal.CarbsG
		day.FatG += a.Meal.FatG
	}
	// Day values are sums of already-rounded cached totals; Round1 here
	// only strips float accumulation noise.
	for i := range result.Days {
		d := &result.Days[i]
		d.Calories = nutrition.Round1(d.Calories)
		d.ProteinG = nutrition.Round1(d.ProteinG)
		d.CarbsG = nutrition.Round1(d.CarbsG)
		d.FatG = nutrition.Round1(d.FatG)
		weekTotals.Calories += d.Calories
		weekTotals.ProteinG += d.ProteinG
		weekTotals.CarbsG += d.CarbsG
		weekTotals.FatG += d.FatG
	}

	result.WeeklyAverage = nutrition.Totals{
		Calories: math.Round(weekTotals.Calories / 7),
		ProteinG: nutrition.Round1(weekTotals.ProteinG / 7),
		CarbsG:   nutrition.Round1(weekTotals.CarbsG / 7),
		FatG:     nutrition.Round1(weekTotals.FatG / 7),
	}
	return result, nil
}
