package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddPantryItemRequest struct {
	IngredientId         *uuid.UUID `json:"ingredient_id"`
	IngredientName       *string    `json:"ingredient_name" validate:"omitempty,min=2,max=255"`
	Quantity             float64    `json:"quantity" validate:"required,gt=0"`
	Unit                 string     `json:"unit" validate:"required,oneof=grams kg ml liters cups tbsp tsp pieces cans bottles"`
	PurchaseDate         *time.Time `json:"purchase_date"`
	ExpiryDate           *time.Time `json:"expiry_date"`
	EstimatedDaysLasting *int       `json:"estimated_days_lasting" validate:"omitempty,min=1"`
}

type UpdatePantryItemRequest struct {
	Quantity             *float64   `json:"quantity" validate:"omitempty,gt=0"`
	Unit                 *string    `json:"unit" validate:"omitempty,oneof=grams kg ml liters cups tbsp tsp pieces cans bottles"`
	ExpiryDate           *time.Time `json:"expiry_date"`
	EstimatedDaysLasting *int       `json:"estimated_days_lasting" validate:"omitempty,min=1"`
}

type PantryItemResponse struct {
	Id                   uuid.UUID           `json:"id"`
	Ingredient           *IngredientResponse `json:"ingredient,omitempty"`
	Quantity             float64             `json:"quantity"`
	Unit                 string              `json:"unit"`
	PurchaseDate         *time.Time          `json:"purchase_date,omitempty"`
	ExpiryDate           *time.Time          `json:"expiry_date,omitempty"`
	EstimatedDaysLasting *int                `json:"estimated_days_lasting,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
}
