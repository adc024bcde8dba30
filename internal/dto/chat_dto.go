package dto

import (
	"time"
)

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=4000"`
}

type ChatMessageDTO struct {
	Id        string    `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"is_bot"`
	IsRecipe  bool      `json:"is_recipe"`
	CreatedAt time.Time `json:"created_at"`
}

type SendMessageResponse struct {
	UserMessage ChatMessageDTO `json:"user_message"`
	BotMessage  ChatMessageDTO `json:"bot_message"`
}

type ConversationHistoryResponse struct {
	Messages []ChatMessageDTO `json:"messages"`
}

type RecentRecipesResponse struct {
	Messages []ChatMessageDTO `json:"messages"`
}

type SuggestedItemDTO struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Name     string  `json:"name"`
}

type SuggestedItemsResponse struct {
	Items []SuggestedItemDTO `json:"items"`
}

// PublishRecipeExtractedMessage is the in-process event payload emitted when
// a bot reply is classified as a recipe.
type PublishRecipeExtractedMessage struct {
	UserId      string `json:"user_id"`
	MessageId   string `json:"message_id"`
	MessageText string `json:"message_text"`
}

type ExtractedRecipeDTO struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	PrepTime     *int     `json:"prep_time,omitempty"`
	CookTime     *int     `json:"cook_time,omitempty"`
	Servings     *int     `json:"servings,omitempty"`
}
