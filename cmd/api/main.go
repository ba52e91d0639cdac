package main

import (
	"log"
	"time"

	"github.com/mealweek/backend/config"
	"github.com/mealweek/backend/internal/api"
	"github.com/mealweek/backend/internal/database"
	"github.com/mealweek/backend/internal/middleware"
	"github.com/mealweek/backend/internal/router"
	"github.com/mealweek/backend/internal/server"
	"github.com/mealweek/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Rate limiting needs Redis; the API still runs without it.
	var rateLimiter *middleware.RateLimiter
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	} else {
		rateLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     120,
			KeyPrefix: "ratelimit",
		})
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	userService := service.NewUserService(db)
	ingredientService := service.NewIngredientService(db)
	mealService := service.NewMealService(db)
	plannerService := service.NewPlannerService(db)
	groceryService := service.NewGroceryService(db)

	handlers := router.Handlers{
		Auth:       api.NewAuthHandler(authService),
		Profile:    api.NewProfileHandler(userService),
		Ingredient: api.NewIngredientHandler(ingredientService),
		Meal:       api.NewMealHandler(mealService),
		Planner:    api.NewPlannerHandler(plannerService),
		Grocery:    api.NewGroceryHandler(groceryService),
	}

	engine := router.SetupRouter(handlers, authService, rateLimiter, cfg.AllowedOrigins)

	srv := server.NewServer(engine)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
