package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mealweek/backend/internal/models"
	"github.com/mealweek/backend/internal/service"
)

type IngredientHandler struct {
	ingredientService *service.IngredientService
}

func NewIngredientHandler(ingredientService *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients")
	{
		ingredients.GET("", h.ListIngredients)
		ingredients.POST("", h.CreateIngredient)
		ingredients.GET("/:id", h.GetIngredient)
	}
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredientService.ListIngredients(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

type CreateIngredientRequest struct {
	Name            string   `json:"name" binding:"required,max=255"`
	Category        string   `json:"category" binding:"required,oneof=protein carbs vegetables fruits dairy fats other"`
	CaloriesPer100g *float64 `json:"calories_per_100g" binding:"required,gte=0"`
	ProteinPer100g  *float64 `json:"protein_per_100g" binding:"required,gte=0"`
	CarbsPer100g    *float64 `json:"carbs_per_100g" binding:"required,gte=0"`
	FatPer100g      *float64 `json:"fat_per_100g" binding:"required,gte=0"`
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient := &models.Ingredient{
		Name:            req.Name,
		Category:        req.Category,
		CaloriesPer100g: *req.CaloriesPer100g,
		ProteinPer100g:  *req.ProteinPer100g,
		CarbsPer100g:    *req.CarbsPer100g,
		FatPer100g:      *req.FatPer100g,
	}
	if _, err := h.ingredientService.CreateIngredient(c.Request.Context(), ingredient); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}

	c.JSON(http.StatusCreated, ingredient)
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ingredient id"})
		return
	}

	ingredient, err := h.ingredientService.GetIngredient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredient"})
		return
	}

	c.JSON(http.StatusOK, ingredient)
}
