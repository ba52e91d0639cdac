package router

import (
	"github.com/gin-gonic/gin"

	"github.com/mealweek/backend/internal/api"
	"github.com/mealweek/backend/internal/middleware"
)

// Handlers bundles every route handler the API exposes.
type Handlers struct {
	Auth       *api.AuthHandler
	Profile    *api.ProfileHandler
	Ingredient *api.IngredientHandler
	Meal       *api.MealHandler
	Planner    *api.PlannerHandler
	Grocery    *api.GroceryHandler
}

// SetupRouter configures the application routes. The rate limiter is
// optional; passing nil disables it.
func SetupRouter(
	handlers Handlers,
	validator middleware.TokenValidator,
	rateLimiter *middleware.RateLimiter,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")

	handlers.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	if rateLimiter != nil {
		protected.Use(rateLimiter.RateLimitMiddleware())
	}

	handlers.Profile.RegisterRoutes(protected)
	handlers.Ingredient.RegisterRoutes(protected)
	handlers.Meal.RegisterRoutes(protected)
	handlers.Planner.RegisterRoutes(protected)
	handlers.Grocery.RegisterRoutes(protected)

	return router
}
