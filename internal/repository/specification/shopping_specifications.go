package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByShoppingListID struct {
	ShoppingListID uuid.UUID
}

func (s ByShoppingListID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("shopping_list_id = ?", s.ShoppingListID)
}

type UnpurchasedOnly struct{}

func (s UnpurchasedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_purchased = ?", false)
}
