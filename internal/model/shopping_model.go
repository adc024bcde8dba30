package model

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingList struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ShoppingList) TableName() string {
	return "shopping_lists"
}

type ShoppingListItem struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ShoppingListId uuid.UUID  `gorm:"type:uuid;not null;index"`
	IngredientId   *uuid.UUID `gorm:"type:uuid;index"`
	Ingredient     *Ingredient
	CustomItemName *string   `gorm:"type:varchar(255)"`
	Quantity       float64   `gorm:"type:numeric;not null;default:1"`
	Unit           string    `gorm:"type:varchar(20);not null;default:'pieces'"`
	IsPurchased    bool      `gorm:"default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (ShoppingListItem) TableName() string {
	return "shopping_list_items"
}
