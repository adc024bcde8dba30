package model

import (
	"time"

	"github.com/google/uuid"
)

type PantryItem struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId               uuid.UUID `gorm:"type:uuid;not null;index"`
	IngredientId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Ingredient           *Ingredient
	Quantity             float64    `gorm:"type:numeric;not null"`
	Unit                 string     `gorm:"type:varchar(20);not null"`
	PurchaseDate         *time.Time `gorm:"type:date"`
	ExpiryDate           *time.Time `gorm:"type:date"`
	EstimatedDaysLasting *int
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime"`
}

func (PantryItem) TableName() string {
	return "pantry_items"
}
