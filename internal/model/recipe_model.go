package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserRecipe struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID      `gorm:"type:uuid;not null;index"`
	RecipeName        string         `gorm:"type:varchar(255);not null"`
	RecipeDescription *string        `gorm:"type:text"`
	Ingredients       datatypes.JSON `gorm:"type:jsonb"`
	Instructions      *string        `gorm:"type:text"`
	PrepTime          *int
	CookTime          *int
	Servings          *int
	Source            string     `gorm:"type:varchar(50);not null;default:'manual'"`
	IsFavorite        bool       `gorm:"default:false"`
	SearchCount       int        `gorm:"default:0"`
	LastSearchedAt    *time.Time `gorm:"index"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (UserRecipe) TableName() string {
	return "user_recipes"
}
