package entity

import (
	"time"

	"github.com/google/uuid"
)

type AllergyType string

const (
	AllergyNuts      AllergyType = "nuts"
	AllergyDairy     AllergyType = "dairy"
	AllergyGluten    AllergyType = "gluten"
	AllergyEggs      AllergyType = "eggs"
	AllergySeafood   AllergyType = "seafood"
	AllergySoy       AllergyType = "soy"
	AllergyShellfish AllergyType = "shellfish"
	AllergySesame    AllergyType = "sesame"
	AllergyOther     AllergyType = "other"
)

// Profile holds per-user household information. Profile Id equals the owning
// user Id (one-to-one).
type Profile struct {
	Id            uuid.UUID
	HouseholdSize int
	Country       string
	Currency      string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type UserAllergy struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Allergy   AllergyType
	Severity  *string
	CreatedAt time.Time
}

type CustomDietaryRestriction struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Restriction string
	CreatedAt   time.Time
}
