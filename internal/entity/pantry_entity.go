package entity

import (
	"time"

	"github.com/google/uuid"
)

type PantryItem struct {
	Id                   uuid.UUID
	UserId               uuid.UUID
	IngredientId         uuid.UUID
	Ingredient           *Ingredient
	Quantity             float64
	Unit                 UnitType
	PurchaseDate         *time.Time
	ExpiryDate           *time.Time
	EstimatedDaysLasting *int
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}
