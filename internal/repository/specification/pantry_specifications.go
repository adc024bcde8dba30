package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByIngredientID struct {
	IngredientID uuid.UUID
}

func (s ByIngredientID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ingredient_id = ?", s.IngredientID)
}

// ExpiringBefore keeps pantry items whose expiry date falls on or before
// the cutoff. Items without an expiry date are excluded.
type ExpiringBefore struct {
	Cutoff time.Time
}

func (s ExpiringBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expiry_date IS NOT NULL AND expiry_date <= ?", s.Cutoff)
}

type WithIngredient struct{}

func (s WithIngredient) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Ingredient")
}
