package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateShoppingListRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type ShoppingListResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type AddShoppingItemRequest struct {
	IngredientId   *uuid.UUID `json:"ingredient_id"`
	CustomItemName *string    `json:"custom_item_name" validate:"omitempty,min=1,max=255"`
	Quantity       float64    `json:"quantity" validate:"required,gt=0"`
	Unit           string     `json:"unit" validate:"required,oneof=grams kg ml liters cups tbsp tsp pieces cans bottles"`
}

type ShoppingItemResponse struct {
	Id             uuid.UUID           `json:"id"`
	Ingredient     *IngredientResponse `json:"ingredient,omitempty"`
	CustomItemName *string             `json:"custom_item_name,omitempty"`
	Quantity       float64             `json:"quantity"`
	Unit           string              `json:"unit"`
	IsPurchased    bool                `json:"is_purchased"`
	CreatedAt      time.Time           `json:"created_at"`
}

type ShoppingListDetailResponse struct {
	List  ShoppingListResponse   `json:"list"`
	Items []ShoppingItemResponse `json:"items"`
}

// AddSuggestedItemsRequest bulk-adds items that were parsed out of an
// assistant reply. The message text is re-parsed server side.
type AddSuggestedItemsRequest struct {
	ListId      *uuid.UUID `json:"list_id"`
	MessageText string     `json:"message_text" validate:"required,min=1"`
}
