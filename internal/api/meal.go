package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mealweek/backend/internal/models"
	"github.com/mealweek/backend/internal/service"
)

type MealHandler struct {
	mealService *service.MealService
}

func NewMealHandler(mealService *service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.POST("", h.CreateMeal)
		meals.GET("/:id", h.GetMeal)
		meals.PUT("/:id", h.UpdateMeal)
		meals.DELETE("/:id", h.DeleteMeal)
		meals.POST("/:id/ingredients", h.AddIngredient)
		meals.PUT("/:id/ingredients/:linkID", h.UpdateIngredient)
		meals.DELETE("/:id/ingredients/:linkID", h.RemoveIngredient)
	}
}

type MealRequest struct {
	Name                   string   `json:"name" binding:"required,max=100"`
	Description            string   `json:"description" binding:"max=500"`
	Category               string   `json:"category" binding:"required,oneof=breakfast lunch dinner snack"`
	PreparationTimeMinutes int      `json:"preparation_time_minutes" binding:"gte=0"`
	CookingTimeMinutes     int      `json:"cooking_time_minutes" binding:"gte=0"`
	Servings               int      `json:"servings" binding:"gte=0"`
	Instructions           string   `json:"instructions"`
	DietaryTags            []string `json:"dietary_tags" binding:"dive,oneof=vegetarian vegan gluten-free dairy-free keto paleo"`
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	meals, err := h.mealService.ListMeals(c.Request.Context(), userID, c.Query("search"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	servings := req.Servings
	if servings == 0 {
		servings = 2
	}
	meal := &models.Meal{
		UserID:                 userID,
		Name:                   req.Name,
		Description:            req.Description,
		Category:               req.Category,
		PreparationTimeMinutes: req.PreparationTimeMinutes,
		CookingTimeMinutes:     req.CookingTimeMinutes,
		Servings:               servings,
		Instructions:           req.Instructions,
		DietaryTags:            models.StringArray(req.DietaryTags),
	}
	if _, err := h.mealService.CreateMeal(c.Request.Context(), meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := h.mealService.GetMeal(c.Request.Context(), userID, mealID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) UpdateMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var req MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	servings := req.Servings
	if servings == 0 {
		servings = 2
	}
	meal, err := h.mealService.UpdateMeal(c.Request.Context(), userID, mealID, &models.Meal{
		Name:                   req.Name,
		Description:            req.Description,
		Category:               req.Category,
		PreparationTimeMinutes: req.PreparationTimeMinutes,
		CookingTimeMinutes:     req.CookingTimeMinutes,
		Servings:               servings,
		Instructions:           req.Instructions,
		DietaryTags:            models.StringArray(req.DietaryTags),
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal"})
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.mealService.DeleteMeal(c.Request.Context(), userID, mealID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully", "id": mealID})
}

type MealIngredientRequest struct {
	IngredientID string   `json:"ingredient_id" binding:"required,uuid"`
	Quantity     *float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string   `json:"unit" binding:"required,oneof=g kg ml l cup tbsp tsp oz lb piece"`
}

func (h *MealHandler) AddIngredient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var req MealIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	link, err := h.mealService.AddIngredient(c.Request.Context(), userID, mealID, ingredientID, *req.Quantity, req.Unit)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add ingredient"})
		return
	}

	c.JSON(http.StatusCreated, link)
}

type UpdateMealIngredientRequest struct {
	Quantity *float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string   `json:"unit" binding:"required,oneof=g kg ml l cup tbsp tsp oz lb piece"`
}

func (h *MealHandler) UpdateIngredient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	linkID, err := uuid.Parse(c.Param("linkID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient entry id"})
		return
	}

	var req UpdateMealIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.mealService.UpdateIngredient(c.Request.Context(), userID, mealID, linkID, *req.Quantity, req.Unit); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *MealHandler) RemoveIngredient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	linkID, err := uuid.Parse(c.Param("linkID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient entry id"})
		return
	}

	if err := h.mealService.RemoveIngredient(c.Request.Context(), userID, mealID, linkID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove ingredient"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
