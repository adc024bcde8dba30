package main

import (
	"log"
	"os"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate for 13 Tables...")

	models := []interface{}{
		&model.User{},
		&model.EmailVerificationToken{},
		&model.PasswordResetToken{},
		&model.UserRefreshToken{},
		&model.Profile{},
		&model.UserAllergy{},
		&model.CustomDietaryRestriction{},
		&model.Ingredient{},
		&model.PantryItem{},
		&model.UserRecipe{},
		&model.ShoppingList{},
		&model.ShoppingListItem{},
		&model.Notification{},
	}

	// Migrate strictly
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views & Functions
	log.Println("Step 3: Creating Views and Functions...")

	postMigrationSQL := []string{
		// Function: set_current_timestamp_updated_at
		`CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
		DECLARE _new_value TIMESTAMP WITH TIME ZONE;
		BEGIN
		  _new_value := now();
		  IF NEW.updated_at IS DISTINCT FROM _new_value THEN NEW.updated_at = _new_value; END IF;
		  RETURN NEW;
		END; $$;`,

		// View: expiring_pantry_items
		`CREATE OR REPLACE VIEW expiring_pantry_items AS
		 SELECT pi.id, pi.user_id, i.name AS ingredient_name, pi.quantity, pi.unit, pi.expiry_date
		 FROM pantry_items pi
		 JOIN ingredients i ON pi.ingredient_id = i.id
		 WHERE pi.expiry_date IS NOT NULL
		 ORDER BY pi.expiry_date ASC;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
