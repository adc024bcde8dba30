package entity

import (
	"time"

	"github.com/google/uuid"
)

type UnitType string

const (
	UnitGrams   UnitType = "grams"
	UnitKg      UnitType = "kg"
	UnitMl      UnitType = "ml"
	UnitLiters  UnitType = "liters"
	UnitCups    UnitType = "cups"
	UnitTbsp    UnitType = "tbsp"
	UnitTsp     UnitType = "tsp"
	UnitPieces  UnitType = "pieces"
	UnitCans    UnitType = "cans"
	UnitBottles UnitType = "bottles"
)

// Ingredient is a shared catalog entry; pantry items and shopping list items
// reference it.
type Ingredient struct {
	Id                uuid.UUID
	Name              string
	Category          *string
	DefaultUnit       UnitType
	ContainsAllergens []AllergyType
	CreatedAt         time.Time
}
