package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	Id            uuid.UUID `json:"id"`
	HouseholdSize int       `json:"household_size"`
	Country       string    `json:"country"`
	Currency      string    `json:"currency"`
}

type UpdateProfileRequest struct {
	HouseholdSize *int    `json:"household_size" validate:"omitempty,min=1,max=50"`
	Country       *string `json:"country" validate:"omitempty,min=2,max=100"`
	Currency      *string `json:"currency" validate:"omitempty,min=2,max=10"`
}

type AddAllergyRequest struct {
	Allergy  string  `json:"allergy" validate:"required,oneof=nuts dairy gluten eggs seafood soy shellfish sesame other"`
	Severity *string `json:"severity" validate:"omitempty,oneof=mild moderate severe"`
}

type AllergyResponse struct {
	Id        uuid.UUID `json:"id"`
	Allergy   string    `json:"allergy"`
	Severity  *string   `json:"severity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AddRestrictionRequest struct {
	Restriction string `json:"restriction" validate:"required,min=2,max=255"`
}

type RestrictionResponse struct {
	Id          uuid.UUID `json:"id"`
	Restriction string    `json:"restriction"`
	CreatedAt   time.Time `json:"created_at"`
}

type DietaryProfileResponse struct {
	Profile      ProfileResponse       `json:"profile"`
	Allergies    []AllergyResponse     `json:"allergies"`
	Restrictions []RestrictionResponse `json:"restrictions"`
}
