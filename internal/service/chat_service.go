package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/pkg/logger"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/memory"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/unitofwork"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/assistant"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/chat/extract"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/chat/history"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/chat/prompt"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/events"
	pktNats "github.com/KagureMwangi/sous-chef-smart-cart/pkg/nats"

	"github.com/google/uuid"
)

const (
	fallbackNoReply   = "No reply received from the assistant. Please try again."
	fallbackSendError = "Error: Failed to get response from the assistant. Please try again."
)

// ErrConversationBusy is returned when a send arrives while a previous send
// for the same user is still in flight.
var ErrConversationBusy = errors.New("a message is already being processed")

type IChatService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) (*dto.ConversationHistoryResponse, error)
	GetRecentRecipes(ctx context.Context, userId uuid.UUID) (*dto.RecentRecipesResponse, error)
	ClearHistory(ctx context.Context, userId uuid.UUID) error
	// GetSuggestedItems re-parses a stored message for shopping items.
	GetSuggestedItems(ctx context.Context, userId uuid.UUID, messageId string) (*dto.SuggestedItemsResponse, error)
	// PreviewRecipe parses a message text into a structured recipe without
	// persisting anything.
	PreviewRecipe(messageText string) *dto.ExtractedRecipeDTO
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	store            *history.Store
	client           assistant.Client
	sessionRepo      *memory.CopilotSessionRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger

	mu      sync.Mutex
	sending map[string]bool
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	store *history.Store,
	client assistant.Client,
	sessionRepo *memory.CopilotSessionRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		store:            store,
		client:           client,
		sessionRepo:      sessionRepo,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
		sending:          make(map[string]bool),
	}
}

func (cs *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, errors.New("message text is required")
	}

	userKey := userId.String()
	if !cs.acquire(userKey) {
		return nil, ErrConversationBusy
	}
	defer cs.release(userKey)

	userMsg := cs.store.AddMessage(ctx, userKey, history.RoleUser, text, nil)

	enriched := prompt.Build(text, cs.assembleContext(ctx, userId))

	var session *assistant.Session
	if cached, found := cs.sessionRepo.Get(userKey); found {
		session = &assistant.Session{
			ConversationID:  cached.ConversationID,
			DirectLineToken: cached.DirectLineToken,
		}
	}

	var botText string
	result, err := cs.client.Send(ctx, enriched, session)
	switch {
	case err != nil:
		cs.log.Error("chat", "Assistant request failed", map[string]interface{}{
			"user_id": userKey,
			"error":   err.Error(),
		})
		botText = fallbackSendError
		cs.notify(ctx, userId, entity.NotificationLevelError, "Assistant unavailable", botText)
	case !result.HasReply:
		botText = fallbackNoReply
		cs.notify(ctx, userId, entity.NotificationLevelWarning, "Empty reply", botText)
	default:
		botText = result.Reply
		cs.notify(ctx, userId, entity.NotificationLevelSuccess, "Assistant replied", "Your assistant has responded.")
	}

	if result != nil && result.Session != nil {
		cs.sessionRepo.Save(&memory.CopilotSession{
			UserID:          userKey,
			ConversationID:  result.Session.ConversationID,
			DirectLineToken: result.Session.DirectLineToken,
		})
	}

	botMsg := cs.store.AddMessage(ctx, userKey, history.RoleBot, botText, nil)

	if botMsg.IsRecipe && cs.publisherService != nil {
		payload := dto.PublishRecipeExtractedMessage{
			UserId:      userKey,
			MessageId:   botMsg.Id,
			MessageText: botMsg.Text,
		}
		if data, marshalErr := json.Marshal(payload); marshalErr == nil {
			if pubErr := cs.publisherService.Publish(ctx, data); pubErr != nil {
				cs.log.Error("chat", "Failed to publish recipe extracted event", map[string]interface{}{
					"user_id": userKey,
					"error":   pubErr.Error(),
				})
			}
		}
	}

	return &dto.SendMessageResponse{
		UserMessage: messageToDTO(userMsg),
		BotMessage:  messageToDTO(botMsg),
	}, nil
}

func (cs *chatService) GetHistory(ctx context.Context, userId uuid.UUID) (*dto.ConversationHistoryResponse, error) {
	messages := cs.store.Load(ctx, userId.String())

	resp := &dto.ConversationHistoryResponse{Messages: make([]dto.ChatMessageDTO, 0, len(messages))}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, messageToDTO(msg))
	}
	return resp, nil
}

func (cs *chatService) GetRecentRecipes(ctx context.Context, userId uuid.UUID) (*dto.RecentRecipesResponse, error) {
	messages := cs.store.RecentRecipes(ctx, userId.String())

	resp := &dto.RecentRecipesResponse{Messages: make([]dto.ChatMessageDTO, 0, len(messages))}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, messageToDTO(msg))
	}
	return resp, nil
}

func (cs *chatService) ClearHistory(ctx context.Context, userId uuid.UUID) error {
	if err := cs.store.Clear(ctx, userId.String()); err != nil {
		cs.notify(ctx, userId, entity.NotificationLevelWarning, "Clear failed", "Could not clear your conversation history. Please try again.")
		return err
	}
	return nil
}

func (cs *chatService) GetSuggestedItems(ctx context.Context, userId uuid.UUID, messageId string) (*dto.SuggestedItemsResponse, error) {
	messages := cs.store.Load(ctx, userId.String())

	for _, msg := range messages {
		if msg.Id != messageId {
			continue
		}

		items := msg.SuggestedItems
		if items == nil {
			items = extract.ExtractShoppingItems(msg.Text)
		}

		resp := &dto.SuggestedItemsResponse{Items: make([]dto.SuggestedItemDTO, 0, len(items))}
		for _, item := range items {
			resp.Items = append(resp.Items, dto.SuggestedItemDTO{
				Quantity: item.Quantity,
				Unit:     item.Unit,
				Name:     item.Name,
			})
		}
		return resp, nil
	}

	return nil, errors.New("message not found")
}

func (cs *chatService) PreviewRecipe(messageText string) *dto.ExtractedRecipeDTO {
	parsed := extract.ExtractRecipeFromMessage(messageText)
	return &dto.ExtractedRecipeDTO{
		Title:        parsed.Name,
		Description:  parsed.Description,
		Ingredients:  parsed.Ingredients,
		Instructions: parsed.Instructions,
		PrepTime:     parsed.PrepTimeMinutes,
		CookTime:     parsed.CookTimeMinutes,
		Servings:     parsed.Servings,
	}
}

func (cs *chatService) acquire(userKey string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.sending[userKey] {
		return false
	}
	cs.sending[userKey] = true
	return true
}

func (cs *chatService) release(userKey string) {
	cs.mu.Lock()
	delete(cs.sending, userKey)
	cs.mu.Unlock()
}

// assembleContext fetches pantry, dietary and household data for the prompt
// builder. Each category degrades to empty on failure; a broken profile read
// must never block a chat message.
func (cs *chatService) assembleContext(ctx context.Context, userId uuid.UUID) prompt.Context {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	var pc prompt.Context

	pantryItems, err := uow.PantryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.WithIngredient{},
	)
	if err != nil {
		cs.log.Warn("chat", "Failed to load pantry for context", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	} else {
		for _, item := range pantryItems {
			name := "unknown"
			if item.Ingredient != nil {
				name = item.Ingredient.Name
			}
			entry := prompt.PantryEntry{
				Name:     name,
				Quantity: item.Quantity,
				Unit:     string(item.Unit),
			}
			if item.ExpiryDate != nil {
				entry.ExpiryDate = item.ExpiryDate.Format("2006-01-02")
			}
			pc.Pantry = append(pc.Pantry, entry)
		}
	}

	allergies, err := uow.ProfileRepository().FindAllergies(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		cs.log.Warn("chat", "Failed to load allergies for context", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	} else {
		for _, allergy := range allergies {
			entry := prompt.AllergyEntry{Allergy: string(allergy.Allergy)}
			if allergy.Severity != nil {
				entry.Severity = *allergy.Severity
			}
			pc.Allergies = append(pc.Allergies, entry)
		}
	}

	restrictions, err := uow.ProfileRepository().FindRestrictions(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		cs.log.Warn("chat", "Failed to load restrictions for context", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	} else {
		for _, restriction := range restrictions {
			pc.Restrictions = append(pc.Restrictions, restriction.Restriction)
		}
	}

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		cs.log.Warn("chat", "Failed to load profile for context", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	} else if profile != nil {
		pc.Household = &prompt.Household{
			Size:     profile.HouseholdSize,
			Country:  profile.Country,
			Currency: profile.Currency,
		}
	}

	return pc
}

func (cs *chatService) notify(ctx context.Context, userId uuid.UUID, level entity.NotificationLevel, title, message string) {
	if cs.eventPublisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type: "CHAT_NOTIFICATION",
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"level":   string(level),
			"title":   title,
			"message": message,
		},
		OccurredAt: time.Now(),
	}
	if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
		cs.log.Warn("chat", "Failed to publish notification event", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
}

func messageToDTO(msg history.Message) dto.ChatMessageDTO {
	return dto.ChatMessageDTO{
		Id:        msg.Id,
		Text:      msg.Text,
		IsBot:     msg.Role == history.RoleBot,
		IsRecipe:  msg.IsRecipe,
		CreatedAt: msg.CreatedAt,
	}
}
