package entity

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingList struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ShoppingListItem links either a catalog ingredient or a free-text custom
// name; exactly one of IngredientId / CustomItemName is expected to be set.
type ShoppingListItem struct {
	Id             uuid.UUID
	ShoppingListId uuid.UUID
	IngredientId   *uuid.UUID
	Ingredient     *Ingredient
	CustomItemName *string
	Quantity       float64
	Unit           UnitType
	IsPurchased    bool
	CreatedAt      time.Time
}
