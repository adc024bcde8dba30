package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	RecipeSourceManual = "manual"
	RecipeSourceAiChat = "ai_chat"
)

// UserRecipe is a recipe saved to the user's collection, either entered
// manually or extracted from an assistant reply.
type UserRecipe struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	RecipeName      string
	Description     *string
	Ingredients     []string
	Instructions    *string
	PrepTimeMinutes *int
	CookTimeMinutes *int
	Servings        *int
	Source          string
	IsFavorite      bool
	SearchCount     int
	LastSearchedAt  *time.Time
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
