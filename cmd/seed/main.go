package main

import (
	"log"
	"os"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

type seedIngredient struct {
	Name        string
	Category    string
	DefaultUnit string
	Allergens   string
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Ingredient Catalog...")

	ingredients := []seedIngredient{
		{Name: "maize flour", Category: "grains", DefaultUnit: "kg", Allergens: `[]`},
		{Name: "rice", Category: "grains", DefaultUnit: "kg", Allergens: `[]`},
		{Name: "wheat flour", Category: "grains", DefaultUnit: "kg", Allergens: `["gluten"]`},
		{Name: "bread", Category: "bakery", DefaultUnit: "pieces", Allergens: `["gluten"]`},
		{Name: "milk", Category: "dairy", DefaultUnit: "l", Allergens: `["dairy"]`},
		{Name: "eggs", Category: "dairy", DefaultUnit: "pieces", Allergens: `["eggs"]`},
		{Name: "butter", Category: "dairy", DefaultUnit: "g", Allergens: `["dairy"]`},
		{Name: "beef", Category: "meat", DefaultUnit: "kg", Allergens: `[]`},
		{Name: "chicken", Category: "meat", DefaultUnit: "kg", Allergens: `[]`},
		{Name: "tilapia", Category: "fish", DefaultUnit: "kg", Allergens: `["fish"]`},
		{Name: "tomatoes", Category: "vegetables", DefaultUnit: "pieces", Allergens: `[]`},
		{Name: "onions", Category: "vegetables", DefaultUnit: "pieces", Allergens: `[]`},
		{Name: "kale", Category: "vegetables", DefaultUnit: "g", Allergens: `[]`},
		{Name: "spinach", Category: "vegetables", DefaultUnit: "g", Allergens: `[]`},
		{Name: "potatoes", Category: "vegetables", DefaultUnit: "kg", Allergens: `[]`},
		{Name: "carrots", Category: "vegetables", DefaultUnit: "pieces", Allergens: `[]`},
		{Name: "garlic", Category: "vegetables", DefaultUnit: "pieces", Allergens: `[]`},
		{Name: "bananas", Category: "fruits", DefaultUnit: "pieces", Allergens: `[]`},
		{Name: "avocado", Category: "fruits", DefaultUnit: "pieces", Allergens: `[]`},
		{Name: "cooking oil", Category: "pantry staples", DefaultUnit: "l", Allergens: `[]`},
		{Name: "sugar", Category: "pantry staples", DefaultUnit: "kg", Allergens: `[]`},
		{Name: "salt", Category: "pantry staples", DefaultUnit: "g", Allergens: `[]`},
		{Name: "beans", Category: "legumes", DefaultUnit: "kg", Allergens: `[]`},
		{Name: "lentils", Category: "legumes", DefaultUnit: "kg", Allergens: `[]`},
		{Name: "peanuts", Category: "legumes", DefaultUnit: "g", Allergens: `["peanuts"]`},
		{Name: "tea leaves", Category: "beverages", DefaultUnit: "g", Allergens: `[]`},
	}

	created, skipped := 0, 0
	for _, s := range ingredients {
		var existing model.Ingredient
		if err := db.Where("name = ?", s.Name).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		category := s.Category
		row := model.Ingredient{
			Name:              s.Name,
			Category:          &category,
			DefaultUnit:       s.DefaultUnit,
			ContainsAllergens: datatypes.JSON(s.Allergens),
		}
		if err := db.Create(&row).Error; err != nil {
			color.Red("Error creating ingredient '%s': %v", s.Name, err)
			continue
		}
		created++
		color.Green("Created ingredient: %s (%s)", s.Name, s.DefaultUnit)
	}

	color.Cyan("Ingredient seeding completed! created=%d skipped=%d", created, skipped)
}
