package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRecipeRequest struct {
	RecipeName      string   `json:"recipe_name" validate:"required,min=2,max=255"`
	Description     *string  `json:"description" validate:"omitempty,max=1000"`
	Ingredients     []string `json:"ingredients" validate:"required,min=1,dive,min=1"`
	Instructions    *string  `json:"instructions"`
	PrepTimeMinutes *int     `json:"prep_time_minutes" validate:"omitempty,min=0"`
	CookTimeMinutes *int     `json:"cook_time_minutes" validate:"omitempty,min=0"`
	Servings        *int     `json:"servings" validate:"omitempty,min=1"`
}

type UpdateRecipeRequest struct {
	RecipeName      *string  `json:"recipe_name" validate:"omitempty,min=2,max=255"`
	Description     *string  `json:"description" validate:"omitempty,max=1000"`
	Ingredients     []string `json:"ingredients" validate:"omitempty,min=1,dive,min=1"`
	Instructions    *string  `json:"instructions"`
	PrepTimeMinutes *int     `json:"prep_time_minutes" validate:"omitempty,min=0"`
	CookTimeMinutes *int     `json:"cook_time_minutes" validate:"omitempty,min=0"`
	Servings        *int     `json:"servings" validate:"omitempty,min=1"`
}

type RecipeResponse struct {
	Id              uuid.UUID  `json:"id"`
	RecipeName      string     `json:"recipe_name"`
	Description     *string    `json:"description,omitempty"`
	Ingredients     []string   `json:"ingredients"`
	Instructions    *string    `json:"instructions,omitempty"`
	PrepTimeMinutes *int       `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes *int       `json:"cook_time_minutes,omitempty"`
	Servings        *int       `json:"servings,omitempty"`
	Source          string     `json:"source"`
	IsFavorite      bool       `json:"is_favorite"`
	SearchCount     int        `json:"search_count"`
	LastSearchedAt  *time.Time `json:"last_searched_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SaveExtractedRecipeRequest persists a recipe that was parsed out of an
// assistant reply. The message text is re-parsed server side.
type SaveExtractedRecipeRequest struct {
	MessageText string `json:"message_text" validate:"required,min=1"`
}
