package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mealweek/backend/internal/service"
)

type GroceryHandler struct {
	groceryService *service.GroceryService
}

func NewGroceryHandler(groceryService *service.GroceryService) *GroceryHandler {
	return &GroceryHandler{groceryService: groceryService}
}

func (h *GroceryHandler) RegisterRoutes(router *gin.RouterGroup) {
	grocery := router.Group("/grocery")
	{
		grocery.GET("", h.ListLists)
		grocery.POST("/generate", h.Generate)
		grocery.GET("/:id", h.GetList)
		grocery.DELETE("/:id", h.DeleteList)
		grocery.PUT("/:id/items/:itemID", h.SetItemChecked)
	}
}

func (h *GroceryHandler) ListLists(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	lists, err := h.groceryService.ListLists(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch grocery lists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lists": lists})
}

func (h *GroceryHandler) GetList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid list id"})
		return
	}

	list, err := h.groceryService.GetList(c.Request.Context(), userID, listID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch grocery list"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *GroceryHandler) DeleteList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid list id"})
		return
	}

	if err := h.groceryService.DeleteList(c.Request.Context(), userID, listID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete grocery list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Grocery list deleted successfully", "id": listID})
}

type GenerateGroceryRequest struct {
	Week string `json:"week"`
}

func (h *GroceryHandler) Generate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// The body is optional; an empty request generates for the current week.
	var req GenerateGroceryRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date := time.Now().UTC()
	if req.Week != "" {
		var err error
		date, err = time.Parse(service.DateLayout, req.Week)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "week must be formatted as YYYY-MM-DD"})
			return
		}
	}

	list, err := h.groceryService.Generate(c.Request.Context(), userID, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no meal plan for that week"})
		case errors.Is(err, service.ErrEmptyPlan):
			c.JSON(http.StatusBadRequest, gin.H{"error": "meal plan has no planned meals"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate grocery list"})
		}
		return
	}

	c.JSON(http.StatusCreated, list)
}

type SetItemCheckedRequest struct {
	IsChecked *bool `json:"is_checked" binding:"required"`
}

func (h *GroceryHandler) SetItemChecked(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid list id"})
		return
	}
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req SetItemCheckedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.groceryService.SetItemChecked(c.Request.Context(), userID, listID, itemID, *req.IsChecked); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
