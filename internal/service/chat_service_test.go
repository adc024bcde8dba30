package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/contract"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/memory"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/unitofwork"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/assistant"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/chat/history"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakePantryRepo serves FindAll from a fixed slice; everything else is unused.
type fakePantryRepo struct {
	items []*entity.PantryItem
	err   error
}

func (f *fakePantryRepo) Create(ctx context.Context, item *entity.PantryItem) error { return nil }
func (f *fakePantryRepo) Update(ctx context.Context, item *entity.PantryItem) error { return nil }
func (f *fakePantryRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakePantryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PantryItem, error) {
	return nil, nil
}
func (f *fakePantryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PantryItem, error) {
	return f.items, f.err
}
func (f *fakePantryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.items)), nil
}
func (f *fakePantryRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity float64) error {
	return nil
}

type fakeProfileRepo struct {
	profile      *entity.Profile
	allergies    []*entity.UserAllergy
	restrictions []*entity.CustomDietaryRestriction
	err          error
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error { return nil }
func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error { return nil }
func (f *fakeProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	return f.profile, f.err
}
func (f *fakeProfileRepo) AddAllergy(ctx context.Context, allergy *entity.UserAllergy) error {
	return nil
}
func (f *fakeProfileRepo) RemoveAllergy(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeProfileRepo) FindAllergies(ctx context.Context, specs ...specification.Specification) ([]*entity.UserAllergy, error) {
	return f.allergies, f.err
}
func (f *fakeProfileRepo) AddRestriction(ctx context.Context, restriction *entity.CustomDietaryRestriction) error {
	return nil
}
func (f *fakeProfileRepo) RemoveRestriction(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeProfileRepo) FindRestrictions(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomDietaryRestriction, error) {
	return f.restrictions, f.err
}

type fakeUow struct {
	pantry  *fakePantryRepo
	profile *fakeProfileRepo
	users   contract.UserRepository
}

func (f *fakeUow) Begin(ctx context.Context) error { return nil }
func (f *fakeUow) Commit() error                   { return nil }
func (f *fakeUow) Rollback() error                 { return nil }

func (f *fakeUow) UserRepository() contract.UserRepository             { return f.users }
func (f *fakeUow) ProfileRepository() contract.ProfileRepository       { return f.profile }
func (f *fakeUow) IngredientRepository() contract.IngredientRepository { return nil }
func (f *fakeUow) PantryRepository() contract.PantryRepository         { return f.pantry }
func (f *fakeUow) RecipeRepository() contract.RecipeRepository         { return nil }
func (f *fakeUow) ShoppingRepository() contract.ShoppingRepository     { return nil }
func (f *fakeUow) NotificationRepository() contract.NotificationRepository {
	return nil
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// fakeAssistant records the prompts it receives and replays a scripted
// result. When block is non-nil, Send parks until it is closed.
type fakeAssistant struct {
	mu      sync.Mutex
	prompts []string

	result *assistant.Result
	err    error
	block  chan struct{}
}

func (f *fakeAssistant) Send(ctx context.Context, prompt string, session *assistant.Session) (*assistant.Result, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.block != nil {
		<-f.block
	}
	return f.result, f.err
}

func (f *fakeAssistant) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	return f.err
}

type chatFixture struct {
	service   IChatService
	store     *history.Store
	client    *fakeAssistant
	publisher *fakePublisher
	uow       *fakeUow
}

func newChatFixture(client *fakeAssistant) *chatFixture {
	uow := &fakeUow{
		pantry:  &fakePantryRepo{},
		profile: &fakeProfileRepo{},
	}
	store := history.NewStore(history.NewMemoryKV(), nopLogger{})
	publisher := &fakePublisher{}

	svc := NewChatService(
		&fakeFactory{uow: uow},
		store,
		client,
		memory.NewCopilotSessionRepository(),
		publisher,
		nil,
		nopLogger{},
	)

	return &chatFixture{
		service:   svc,
		store:     store,
		client:    client,
		publisher: publisher,
		uow:       uow,
	}
}

func TestSendMessageRejectsEmptyText(t *testing.T) {
	fx := newChatFixture(&fakeAssistant{result: &assistant.Result{Reply: "hi", HasReply: true}})

	_, err := fx.service.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{Text: "   "})
	assert.Error(t, err)
}

func TestSendMessagePersistsBothSides(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{Reply: "Try boiling them first.", HasReply: true}}
	fx := newChatFixture(client)
	userId := uuid.New()

	resp, err := fx.service.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Text: "What do I do with potatoes?"})
	require.NoError(t, err)

	assert.Equal(t, "What do I do with potatoes?", resp.UserMessage.Text)
	assert.False(t, resp.UserMessage.IsBot)
	assert.Equal(t, "Try boiling them first.", resp.BotMessage.Text)
	assert.True(t, resp.BotMessage.IsBot)

	messages := fx.store.Load(context.Background(), userId.String())
	require.Len(t, messages, 2)
	assert.Equal(t, history.RoleUser, messages[0].Role)
	assert.Equal(t, history.RoleBot, messages[1].Role)
}

func TestSendMessageTransportErrorFallback(t *testing.T) {
	client := &fakeAssistant{err: errors.New("connection refused")}
	fx := newChatFixture(client)
	userId := uuid.New()

	resp, err := fx.service.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Text: "hello"})
	require.NoError(t, err)

	assert.Equal(t, "Error: Failed to get response from the assistant. Please try again.", resp.BotMessage.Text)

	// The fallback is persisted like any other bot message.
	messages := fx.store.Load(context.Background(), userId.String())
	require.Len(t, messages, 2)
	assert.Equal(t, resp.BotMessage.Text, messages[1].Text)
}

func TestSendMessageEmptyReplyFallback(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{HasReply: false}}
	fx := newChatFixture(client)

	resp, err := fx.service.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{Text: "hello"})
	require.NoError(t, err)

	assert.Equal(t, "No reply received from the assistant. Please try again.", resp.BotMessage.Text)
}

func TestSendMessageRejectsConcurrentSends(t *testing.T) {
	client := &fakeAssistant{
		result: &assistant.Result{Reply: "done", HasReply: true},
		block:  make(chan struct{}),
	}
	fx := newChatFixture(client)
	userId := uuid.New()

	firstDone := make(chan error, 1)
	go func() {
		_, err := fx.service.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Text: "first"})
		firstDone <- err
	}()

	// Wait for the first send to reach the assistant.
	require.Eventually(t, func() bool {
		client.mu.Lock()
		defer client.mu.Unlock()
		return len(client.prompts) == 1
	}, time.Second, 5*time.Millisecond)

	_, err := fx.service.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Text: "second"})
	assert.ErrorIs(t, err, ErrConversationBusy)

	close(client.block)
	require.NoError(t, <-firstDone)

	// After the first send finishes, the user can send again.
	_, err = fx.service.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Text: "third"})
	assert.NoError(t, err)
}

func TestSendMessageEnrichesPromptWithContext(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{Reply: "ok", HasReply: true}}
	fx := newChatFixture(client)
	userId := uuid.New()

	expiry := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	severity := "severe"
	fx.uow.pantry.items = []*entity.PantryItem{
		{
			Ingredient: &entity.Ingredient{Name: "tomatoes"},
			Quantity:   3,
			Unit:       entity.UnitPieces,
			ExpiryDate: &expiry,
		},
	}
	fx.uow.profile.allergies = []*entity.UserAllergy{
		{Allergy: entity.AllergyNuts, Severity: &severity},
	}
	fx.uow.profile.restrictions = []*entity.CustomDietaryRestriction{
		{Restriction: "no pork"},
	}
	fx.uow.profile.profile = &entity.Profile{HouseholdSize: 4, Country: "Kenya", Currency: "KES"}

	_, err := fx.service.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Text: "What can I cook tonight?"})
	require.NoError(t, err)

	prompt := client.lastPrompt()
	assert.Contains(t, prompt, "What can I cook tonight?")
	assert.Contains(t, prompt, "tomatoes")
	assert.Contains(t, prompt, "2026-09-04")
	assert.Contains(t, prompt, "nuts")
	assert.Contains(t, prompt, "severe")
	assert.Contains(t, prompt, "no pork")
	assert.Contains(t, prompt, "Household size: 4")
}

func TestSendMessageContextFailuresDegradeSoftly(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{Reply: "ok", HasReply: true}}
	fx := newChatFixture(client)
	fx.uow.pantry.err = errors.New("db down")
	fx.uow.profile.err = errors.New("db down")

	resp, err := fx.service.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.BotMessage.Text)

	// With no usable context the prompt goes through untouched.
	assert.Equal(t, "hello", client.lastPrompt())
}

func TestSendMessagePublishesRecipeEvent(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{
		Reply:    "Here is a recipe for ugali.\n\nIngredients:\n- 2 cups maize flour",
		HasReply: true,
	}}
	fx := newChatFixture(client)
	userId := uuid.New()

	resp, err := fx.service.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Text: "dinner ideas"})
	require.NoError(t, err)
	require.True(t, resp.BotMessage.IsRecipe)

	require.Len(t, fx.publisher.payloads, 1)

	var evt dto.PublishRecipeExtractedMessage
	require.NoError(t, json.Unmarshal(fx.publisher.payloads[0], &evt))
	assert.Equal(t, userId.String(), evt.UserId)
	assert.Equal(t, resp.BotMessage.Id, evt.MessageId)
	assert.Equal(t, resp.BotMessage.Text, evt.MessageText)
}

func TestSendMessageNonRecipeDoesNotPublish(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{Reply: "The weather is nice.", HasReply: true}}
	fx := newChatFixture(client)

	_, err := fx.service.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{Text: "hi"})
	require.NoError(t, err)

	assert.Empty(t, fx.publisher.payloads)
}

func TestSendMessageReusesAssistantSession(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{
		Reply:    "ok",
		HasReply: true,
		Session:  &assistant.Session{ConversationID: "conv-1", DirectLineToken: "tok-1"},
	}}

	uow := &fakeUow{pantry: &fakePantryRepo{}, profile: &fakeProfileRepo{}}
	sessionRepo := memory.NewCopilotSessionRepository()
	svc := NewChatService(
		&fakeFactory{uow: uow},
		history.NewStore(history.NewMemoryKV(), nopLogger{}),
		client,
		sessionRepo,
		&fakePublisher{},
		nil,
		nopLogger{},
	)
	userId := uuid.New()

	_, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Text: "first"})
	require.NoError(t, err)

	cached, found := sessionRepo.Get(userId.String())
	require.True(t, found)
	assert.Equal(t, "conv-1", cached.ConversationID)
	assert.Equal(t, "tok-1", cached.DirectLineToken)
}

func TestGetHistoryAndClear(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{Reply: "ok", HasReply: true}}
	fx := newChatFixture(client)
	userId := uuid.New()

	_, err := fx.service.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Text: "hello"})
	require.NoError(t, err)

	hist, err := fx.service.GetHistory(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, hist.Messages, 2)

	require.NoError(t, fx.service.ClearHistory(context.Background(), userId))

	hist, err = fx.service.GetHistory(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, hist.Messages)
}

func TestGetSuggestedItems(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{
		Reply:    "Shopping list to buy:\n- 2 kg rice\n- 1 l milk",
		HasReply: true,
	}}
	fx := newChatFixture(client)
	userId := uuid.New()

	resp, err := fx.service.SendMessage(context.Background(), userId, &dto.SendMessageRequest{Text: "what should I buy"})
	require.NoError(t, err)

	items, err := fx.service.GetSuggestedItems(context.Background(), userId, resp.BotMessage.Id)
	require.NoError(t, err)
	require.Len(t, items.Items, 2)
	assert.Equal(t, "rice", items.Items[0].Name)
	assert.Equal(t, float64(2), items.Items[0].Quantity)
	assert.Equal(t, "kg", items.Items[0].Unit)

	_, err = fx.service.GetSuggestedItems(context.Background(), userId, "missing-id")
	assert.Error(t, err)
}

func TestPreviewRecipe(t *testing.T) {
	fx := newChatFixture(&fakeAssistant{})

	text := "Ugali Recipe\n\nIngredients:\n- 2 cups maize flour\n- 4 cups water\n\nInstructions:\n1. Boil the water.\n2. Stir in the flour.\n\nServes 4"
	parsed := fx.service.PreviewRecipe(text)

	assert.Equal(t, "Ugali Recipe", parsed.Title)
	assert.Len(t, parsed.Ingredients, 2)
	assert.NotEmpty(t, parsed.Instructions)
}
