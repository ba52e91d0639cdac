package main

import (
	"log"

	"github.com/mealweek/backend/config"
	"github.com/mealweek/backend/internal/database"
	"github.com/mealweek/backend/internal/models"
)

// catalog holds common ingredients with nutrition per 100g.
var catalog = []models.Ingredient{
	// Proteins
	{Name: "Chicken Breast", Category: models.CategoryProtein, CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6},
	{Name: "Ground Beef (90% lean)", Category: models.CategoryProtein, CaloriesPer100g: 176, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 10},
	{Name: "Salmon", Category: models.CategoryProtein, CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 13},
	{Name: "Eggs", Category: models.CategoryProtein, CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11},
	{Name: "Tuna (canned in water)", Category: models.CategoryProtein, CaloriesPer100g: 116, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 0.8},
	{Name: "Pork Chop", Category: models.CategoryProtein, CaloriesPer100g: 231, ProteinPer100g: 25, CarbsPer100g: 0, FatPer100g: 14},
	{Name: "Turkey Breast", Category: models.CategoryProtein, CaloriesPer100g: 135, ProteinPer100g: 30, CarbsPer100g: 0, FatPer100g: 0.7},
	{Name: "Shrimp", Category: models.CategoryProtein, CaloriesPer100g: 99, ProteinPer100g: 24, CarbsPer100g: 0.2, FatPer100g: 0.3},
	{Name: "Tofu", Category: models.CategoryProtein, CaloriesPer100g: 76, ProteinPer100g: 8, CarbsPer100g: 1.9, FatPer100g: 4.8},
	{Name: "Black Beans", Category: models.CategoryProtein, CaloriesPer100g: 132, ProteinPer100g: 8.9, CarbsPer100g: 23.7, FatPer100g: 0.5},
	{Name: "Cod", Category: models.CategoryProtein, CaloriesPer100g: 82, ProteinPer100g: 18, CarbsPer100g: 0, FatPer100g: 0.7},
	{Name: "Tilapia", Category: models.CategoryProtein, CaloriesPer100g: 96, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 1.7},
	{Name: "Bacon", Category: models.CategoryProtein, CaloriesPer100g: 541, ProteinPer100g: 37, CarbsPer100g: 1.4, FatPer100g: 42},
	{Name: "Ham", Category: models.CategoryProtein, CaloriesPer100g: 145, ProteinPer100g: 21, CarbsPer100g: 1.5, FatPer100g: 5.5},
	{Name: "Chickpeas", Category: models.CategoryProtein, CaloriesPer100g: 164, ProteinPer100g: 8.9, CarbsPer100g: 27, FatPer100g: 2.6},
	{Name: "Lentils", Category: models.CategoryProtein, CaloriesPer100g: 116, ProteinPer100g: 9, CarbsPer100g: 20, FatPer100g: 0.4},
	{Name: "Kidney Beans", Category: models.CategoryProtein, CaloriesPer100g: 127, ProteinPer100g: 8.7, CarbsPer100g: 23, FatPer100g: 0.5},
	{Name: "Tempeh", Category: models.CategoryProtein, CaloriesPer100g: 193, ProteinPer100g: 19, CarbsPer100g: 9, FatPer100g: 11},
	{Name: "Edamame", Category: models.CategoryProtein, CaloriesPer100g: 121, ProteinPer100g: 11, CarbsPer100g: 10, FatPer100g: 5},

	// Vegetables
	{Name: "Broccoli", Category: models.CategoryVegetables, CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4},
	{Name: "Spinach", Category: models.CategoryVegetables, CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, FatPer100g: 0.4},
	{Name: "Carrots", Category: models.CategoryVegetables, CaloriesPer100g: 41, ProteinPer100g: 0.9, CarbsPer100g: 10, FatPer100g: 0.2},
	{Name: "Bell Pepper", Category: models.CategoryVegetables, CaloriesPer100g: 31, ProteinPer100g: 1, CarbsPer100g: 6, FatPer100g: 0.3},
	{Name: "Tomatoes", Category: models.CategoryVegetables, CaloriesPer100g: 18, ProteinPer100g: 0.9, CarbsPer100g: 3.9, FatPer100g: 0.2},
	{Name: "Onion", Category: models.CategoryVegetables, CaloriesPer100g: 40, ProteinPer100g: 1.1, CarbsPer100g: 9.3, FatPer100g: 0.1},
	{Name: "Garlic", Category: models.CategoryVegetables, CaloriesPer100g: 149, ProteinPer100g: 6.4, CarbsPer100g: 33, FatPer100g: 0.5},
	{Name: "Cucumber", Category: models.CategoryVegetables, CaloriesPer100g: 16, ProteinPer100g: 0.7, CarbsPer100g: 3.6, FatPer100g: 0.1},
	{Name: "Lettuce", Category: models.CategoryVegetables, CaloriesPer100g: 15, ProteinPer100g: 1.4, CarbsPer100g: 2.9, FatPer100g: 0.2},
	{Name: "Zucchini", Category: models.CategoryVegetables, CaloriesPer100g: 17, ProteinPer100g: 1.2, CarbsPer100g: 3.1, FatPer100g: 0.3},
	{Name: "Cauliflower", Category: models.CategoryVegetables, CaloriesPer100g: 25, ProteinPer100g: 1.9, CarbsPer100g: 5, FatPer100g: 0.3},
	{Name: "Mushrooms", Category: models.CategoryVegetables, CaloriesPer100g: 22, ProteinPer100g: 3.1, CarbsPer100g: 3.3, FatPer100g: 0.3},
	{Name: "Asparagus", Category: models.CategoryVegetables, CaloriesPer100g: 20, ProteinPer100g: 2.2, CarbsPer100g: 3.9, FatPer100g: 0.1},
	{Name: "Green Beans", Category: models.CategoryVegetables, CaloriesPer100g: 31, ProteinPer100g: 1.8, CarbsPer100g: 7, FatPer100g: 0.2},
	{Name: "Kale", Category: models.CategoryVegetables, CaloriesPer100g: 49, ProteinPer100g: 4.3, CarbsPer100g: 9, FatPer100g: 0.9},
	{Name: "Eggplant", Category: models.CategoryVegetables, CaloriesPer100g: 25, ProteinPer100g: 1, CarbsPer100g: 6, FatPer100g: 0.2},
	{Name: "Celery", Category: models.CategoryVegetables, CaloriesPer100g: 16, ProteinPer100g: 0.7, CarbsPer100g: 3, FatPer100g: 0.2},
	{Name: "Cabbage", Category: models.CategoryVegetables, CaloriesPer100g: 25, ProteinPer100g: 1.3, CarbsPer100g: 5.8, FatPer100g: 0.1},
	{Name: "Brussels Sprouts", Category: models.CategoryVegetables, CaloriesPer100g: 43, ProteinPer100g: 3.4, CarbsPer100g: 9, FatPer100g: 0.3},
	{Name: "Corn", Category: models.CategoryVegetables, CaloriesPer100g: 86, ProteinPer100g: 3.3, CarbsPer100g: 19, FatPer100g: 1.4},
	{Name: "Peas", Category: models.CategoryVegetables, CaloriesPer100g: 81, ProteinPer100g: 5.4, CarbsPer100g: 14, FatPer100g: 0.4},

	// Fruits
	{Name: "Apple", Category: models.CategoryFruits, CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2},
	{Name: "Banana", Category: models.CategoryFruits, CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3},
	{Name: "Orange", Category: models.CategoryFruits, CaloriesPer100g: 47, ProteinPer100g: 0.9, CarbsPer100g: 12, FatPer100g: 0.1},
	{Name: "Strawberries", Category: models.CategoryFruits, CaloriesPer100g: 32, ProteinPer100g: 0.7, CarbsPer100g: 7.7, FatPer100g: 0.3},
	{Name: "Blueberries", Category: models.CategoryFruits, CaloriesPer100g: 57, ProteinPer100g: 0.7, CarbsPer100g: 14, FatPer100g: 0.3},
	{Name: "Avocado", Category: models.CategoryFruits, CaloriesPer100g: 160, ProteinPer100g: 2, CarbsPer100g: 8.5, FatPer100g: 15},
	{Name: "Grapes", Category: models.CategoryFruits, CaloriesPer100g: 69, ProteinPer100g: 0.7, CarbsPer100g: 18, FatPer100g: 0.2},
	{Name: "Mango", Category: models.CategoryFruits, CaloriesPer100g: 60, ProteinPer100g: 0.8, CarbsPer100g: 15, FatPer100g: 0.4},
	{Name: "Pineapple", Category: models.CategoryFruits, CaloriesPer100g: 50, ProteinPer100g: 0.5, CarbsPer100g: 13, FatPer100g: 0.1},

	// Carbs
	{Name: "White Rice", Category: models.CategoryCarbs, CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3},
	{Name: "Brown Rice", Category: models.CategoryCarbs, CaloriesPer100g: 112, ProteinPer100g: 2.6, CarbsPer100g: 24, FatPer100g: 0.9},
	{Name: "Quinoa", Category: models.CategoryCarbs, CaloriesPer100g: 120, ProteinPer100g: 4.4, CarbsPer100g: 21, FatPer100g: 1.9},
	{Name: "Pasta", Category: models.CategoryCarbs, CaloriesPer100g: 131, ProteinPer100g: 5, CarbsPer100g: 25, FatPer100g: 1.1},
	{Name: "Bread (Whole Wheat)", Category: models.CategoryCarbs, CaloriesPer100g: 247, ProteinPer100g: 13, CarbsPer100g: 41, FatPer100g: 3.4},
	{Name: "Oats", Category: models.CategoryCarbs, CaloriesPer100g: 389, ProteinPer100g: 17, CarbsPer100g: 66, FatPer100g: 6.9},
	{Name: "Sweet Potato", Category: models.CategoryCarbs, CaloriesPer100g: 86, ProteinPer100g: 1.6, CarbsPer100g: 20, FatPer100g: 0.1},
	{Name: "Potato", Category: models.CategoryCarbs, CaloriesPer100g: 77, ProteinPer100g: 2, CarbsPer100g: 17, FatPer100g: 0.1},
	{Name: "Couscous", Category: models.CategoryCarbs, CaloriesPer100g: 112, ProteinPer100g: 3.8, CarbsPer100g: 23, FatPer100g: 0.2},
	{Name: "Tortilla", Category: models.CategoryCarbs, CaloriesPer100g: 304, ProteinPer100g: 8, CarbsPer100g: 51, FatPer100g: 7.3},

	// Dairy
	{Name: "Milk (2%)", Category: models.CategoryDairy, CaloriesPer100g: 50, ProteinPer100g: 3.3, CarbsPer100g: 4.8, FatPer100g: 2},
	{Name: "Greek Yogurt", Category: models.CategoryDairy, CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 0.4},
	{Name: "Cheddar Cheese", Category: models.CategoryDairy, CaloriesPer100g: 403, ProteinPer100g: 25, CarbsPer100g: 1.3, FatPer100g: 33},
	{Name: "Mozzarella Cheese", Category: models.CategoryDairy, CaloriesPer100g: 280, ProteinPer100g: 28, CarbsPer100g: 2.2, FatPer100g: 17},
	{Name: "Butter", Category: models.CategoryDairy, CaloriesPer100g: 717, ProteinPer100g: 0.9, CarbsPer100g: 0.1, FatPer100g: 81},
	{Name: "Parmesan Cheese", Category: models.CategoryDairy, CaloriesPer100g: 431, ProteinPer100g: 38, CarbsPer100g: 4.1, FatPer100g: 29},
	{Name: "Cottage Cheese", Category: models.CategoryDairy, CaloriesPer100g: 98, ProteinPer100g: 11, CarbsPer100g: 3.4, FatPer100g: 4.3},

	// Fats and oils
	{Name: "Olive Oil", Category: models.CategoryFats, CaloriesPer100g: 884, ProteinPer100g: 0, CarbsPer100g: 0, FatPer100g: 100},
	{Name: "Coconut Oil", Category: models.CategoryFats, CaloriesPer100g: 862, ProteinPer100g: 0, CarbsPer100g: 0, FatPer100g: 100},
	{Name: "Almonds", Category: models.CategoryFats, CaloriesPer100g: 579, ProteinPer100g: 21, CarbsPer100g: 22, FatPer100g: 50},
	{Name: "Walnuts", Category: models.CategoryFats, CaloriesPer100g: 654, ProteinPer100g: 15, CarbsPer100g: 14, FatPer100g: 65},
	{Name: "Peanut Butter", Category: models.CategoryFats, CaloriesPer100g: 588, ProteinPer100g: 25, CarbsPer100g: 20, FatPer100g: 50},
	{Name: "Chia Seeds", Category: models.CategoryFats, CaloriesPer100g: 486, ProteinPer100g: 17, CarbsPer100g: 42, FatPer100g: 31},

	// Other
	{Name: "Soy Sauce", Category: models.CategoryOther, CaloriesPer100g: 53, ProteinPer100g: 5.6, CarbsPer100g: 4.9, FatPer100g: 0.1},
	{Name: "Honey", Category: models.CategoryOther, CaloriesPer100g: 304, ProteinPer100g: 0.3, CarbsPer100g: 82, FatPer100g: 0},
	{Name: "Lemon Juice", Category: models.CategoryOther, CaloriesPer100g: 22, ProteinPer100g: 0.4, CarbsPer100g: 6.9, FatPer100g: 0.2},
	{Name: "Basil (fresh)", Category: models.CategoryOther, CaloriesPer100g: 23, ProteinPer100g: 3.2, CarbsPer100g: 2.7, FatPer100g: 0.6},
	{Name: "Black Pepper", Category: models.CategoryOther, CaloriesPer100g: 251, ProteinPer100g: 10, CarbsPer100g: 64, FatPer100g: 3.3},
	{Name: "Salt", Category: models.CategoryOther, CaloriesPer100g: 0, ProteinPer100g: 0, CarbsPer100g: 0, FatPer100g: 0},
	{Name: "Paprika", Category: models.CategoryOther, CaloriesPer100g: 282, ProteinPer100g: 14, CarbsPer100g: 54, FatPer100g: 13},
	{Name: "Cumin", Category: models.CategoryOther, CaloriesPer100g: 375, ProteinPer100g: 18, CarbsPer100g: 44, FatPer100g: 22},
	{Name: "Oregano", Category: models.CategoryOther, CaloriesPer100g: 265, ProteinPer100g: 9, CarbsPer100g: 69, FatPer100g: 4.3},
	{Name: "Cinnamon", Category: models.CategoryOther, CaloriesPer100g: 247, ProteinPer100g: 4, CarbsPer100g: 81, FatPer100g: 1.2},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeded := 0
	for _, ing := range catalog {
		ing := ing
		res := db.Where("name = ?", ing.Name).FirstOrCreate(&ing)
		if res.Error != nil {
			log.Fatalf("Failed to seed ingredient %q: %v", ing.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			seeded++
		}
	}

	log.Printf("Seeded %d new ingredients (%d in catalog)", seeded, len(catalog))
}
