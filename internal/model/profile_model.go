package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile Id is the owning user Id, mirroring the one-row-per-user layout of
// the profiles table.
type Profile struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	HouseholdSize int       `gorm:"not null;default:1"`
	Country       string    `gorm:"type:varchar(100);not null;default:'Kenya'"`
	Currency      string    `gorm:"type:varchar(10);not null;default:'KES'"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}

type UserAllergy struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_allergy,unique"`
	Allergy   string    `gorm:"type:varchar(50);not null;index:idx_user_allergy,unique"`
	Severity  *string   `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UserAllergy) TableName() string {
	return "user_allergies"
}

type CustomDietaryRestriction struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Restriction string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (CustomDietaryRestriction) TableName() string {
	return "custom_dietary_restrictions"
}
