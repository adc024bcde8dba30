package specification

import (
	"gorm.io/gorm"
)

type ByAllergy struct {
	Allergy string
}

func (s ByAllergy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("allergy = ?", s.Allergy)
}

type UnreadOnly struct{}

func (s UnreadOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}

type ByNameLike struct {
	Query string
}

func (s ByNameLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name ILIKE ?", "%"+s.Query+"%")
}
