package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/pkg/logger"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/chat/extract"

	"github.com/google/uuid"
)

const (
	// MaxMessages bounds the transcript; the oldest entries are evicted
	// first when the bound is exceeded.
	MaxMessages = 50

	// RecentRecipeLimit caps RecentRecipes results.
	RecentRecipeLimit = 5

	keyPrefix = "conversation_history_"
)

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one transcript entry. IsRecipe and SuggestedItems are computed
// once at insertion and never recomputed, even if classification rules
// change later.
type Message struct {
	Id             string                 `json:"id"`
	Role           Role                   `json:"role"`
	Text           string                 `json:"text"`
	CreatedAt      time.Time              `json:"createdAt"`
	IsRecipe       bool                   `json:"isRecipe"`
	SuggestedItems []extract.ShoppingItem `json:"suggestedItems,omitempty"`
}

// Store keeps one bounded transcript per user, mirrored to a KV backend.
// Every append rewrites the full record; the message cap keeps that cheap.
type Store struct {
	kv  KV
	log logger.ILogger
}

func NewStore(kv KV, log logger.ILogger) *Store {
	return &Store{
		kv:  kv,
		log: log,
	}
}

func storageKey(userId string) string {
	return keyPrefix + userId
}

// Load reads the user's transcript. A missing or malformed record degrades
// to an empty history; backend failures are logged, never propagated.
func (s *Store) Load(ctx context.Context, userId string) []Message {
	data, err := s.kv.Get(ctx, storageKey(userId))
	if err != nil {
		s.log.Error("history", "Failed to load conversation history", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return []Message{}
	}
	if len(data) == 0 {
		return []Message{}
	}

	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		s.log.Error("history", "Malformed conversation history record", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return []Message{}
	}

	return messages
}

// AddMessage appends a new entry, derives IsRecipe and SuggestedItems when
// applicable, truncates to the most recent MaxMessages, and persists the
// full list. Persistence failures are logged and dropped.
func (s *Store) AddMessage(ctx context.Context, userId string, role Role, text string, suggested []extract.ShoppingItem) Message {
	if suggested == nil {
		suggested = extract.ExtractShoppingItems(text)
	}

	msg := Message{
		Id:             uuid.NewString(),
		Role:           role,
		Text:           text,
		CreatedAt:      time.Now(),
		IsRecipe:       extract.IsRecipe(text, role == RoleBot),
		SuggestedItems: suggested,
	}

	messages := append(s.Load(ctx, userId), msg)
	if len(messages) > MaxMessages {
		messages = messages[len(messages)-MaxMessages:]
	}

	if err := s.persist(ctx, userId, messages); err != nil {
		s.log.Error("history", "Failed to persist conversation history", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	}

	return msg
}

// RecentRecipes returns up to RecentRecipeLimit bot messages flagged as
// recipes, most recent first.
func (s *Store) RecentRecipes(ctx context.Context, userId string) []Message {
	messages := s.Load(ctx, userId)

	var recipes []Message
	for i := len(messages) - 1; i >= 0 && len(recipes) < RecentRecipeLimit; i-- {
		if messages[i].Role == RoleBot && messages[i].IsRecipe {
			recipes = append(recipes, messages[i])
		}
	}

	return recipes
}

// Clear deletes the user's durable record. Unlike loads and appends, the
// deletion error is returned so callers can notify the user.
func (s *Store) Clear(ctx context.Context, userId string) error {
	if err := s.kv.Delete(ctx, storageKey(userId)); err != nil {
		return fmt.Errorf("failed to clear conversation history: %w", err)
	}
	return nil
}

func (s *Store) persist(ctx context.Context, userId string, messages []Message) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, storageKey(userId), data)
}
