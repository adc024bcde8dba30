package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Ingredient struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category          *string        `gorm:"type:varchar(100)"`
	DefaultUnit       string         `gorm:"type:varchar(20);not null;default:'pieces'"`
	ContainsAllergens datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
