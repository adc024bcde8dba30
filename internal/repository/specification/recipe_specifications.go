package specification

import (
	"gorm.io/gorm"
)

type BySource struct {
	Source string
}

func (s BySource) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source = ?", s.Source)
}

type FavoritesOnly struct{}

func (s FavoritesOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_favorite = ?", true)
}

type ByRecipeNameLike struct {
	Query string
}

func (s ByRecipeNameLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("recipe_name ILIKE ?", "%"+s.Query+"%")
}
