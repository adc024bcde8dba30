package dto

import (
	"github.com/google/uuid"
)

type CreateIngredientRequest struct {
	Name              string   `json:"name" validate:"required,min=2,max=255"`
	Category          *string  `json:"category" validate:"omitempty,max=100"`
	DefaultUnit       string   `json:"default_unit" validate:"required,oneof=grams kg ml liters cups tbsp tsp pieces cans bottles"`
	ContainsAllergens []string `json:"contains_allergens" validate:"omitempty,dive,oneof=nuts dairy gluten eggs seafood soy shellfish sesame other"`
}

type IngredientResponse struct {
	Id                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          *string   `json:"category,omitempty"`
	DefaultUnit       string    `json:"default_unit"`
	ContainsAllergens []string  `json:"contains_allergens,omitempty"`
}
