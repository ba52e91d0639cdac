package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mealweek/backend/internal/service"
)

type PlannerHandler struct {
	plannerService *service.PlannerService
}

func NewPlannerHandler(plannerService *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup) {
	planner := router.Group("/planner")
	{
		planner.GET("", h.GetWeek)
		planner.POST("/meals", h.AssignMeal)
		planner.DELETE("/meals/:id", h.RemoveAssignment)
		planner.GET("/nutrition", h.WeeklyNutrition)
	}
}

// weekQueryDate parses the optional week query parameter, defaulting to the
// current week when absent.
func weekQueryDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("week")
	if raw == "" {
		return time.Now().UTC(), true
	}
	date, err := time.Parse(service.DateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be formatted as YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func (h *PlannerHandler) GetWeek(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := weekQueryDate(c)
	if !ok {
		return
	}

	plan, assignments, err := h.plannerService.GetWeek(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan":          plan,
		"planned_meals": assignments,
	})
}

type AssignMealRequest struct {
	MealID string `json:"meal_id" binding:"required,uuid"`
	Date   string `json:"date" binding:"required"`
	Slot   string `json:"slot" binding:"required,oneof=breakfast lunch dinner"`
}

func (h *PlannerHandler) AssignMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AssignMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mealID, err := uuid.Parse(req.MealID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	date, err := time.Parse(service.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	assignment, err := h.plannerService.AssignMeal(c.Request.Context(), userID, mealID, date, req.Slot)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign meal"})
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *PlannerHandler) RemoveAssignment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment id"})
		return
	}

	if err := h.plannerService.RemoveAssignment(c.Request.Context(), userID, assignmentID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove planned meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PlannerHandler) WeeklyNutrition(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date, ok := weekQueryDate(c)
	if !ok {
		return
	}

	summary, err := h.plannerService.WeeklyNutrition(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute weekly nutrition"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
