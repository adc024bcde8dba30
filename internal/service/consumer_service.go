package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/unitofwork"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/chat/extract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService processes recipe-extracted events: it parses the bot
// message into a structured recipe, saves it to the user's collection, and
// links every ingredient line into the shared catalog.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	ingredientService IIngredientService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	ingredientService IIngredientService,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		ingredientService: ingredientService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishRecipeExtractedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	userId, err := uuid.Parse(payload.UserId)
	if err != nil {
		log.Printf("[ERROR] Invalid user id in message %s: %v", payload.MessageId, err)
		msg.Ack()
		return
	}

	log.Printf("[INFO] Processing extracted recipe for message %s", payload.MessageId)

	parsed := extract.ExtractRecipeFromMessage(payload.MessageText)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	description := parsed.Description
	recipe := &entity.UserRecipe{
		Id:              uuid.New(),
		UserId:          userId,
		RecipeName:      parsed.Name,
		Description:     &description,
		Ingredients:     parsed.Ingredients,
		PrepTimeMinutes: parsed.PrepTimeMinutes,
		CookTimeMinutes: parsed.CookTimeMinutes,
		Servings:        parsed.Servings,
		Source:          entity.RecipeSourceAiChat,
		CreatedAt:       time.Now(),
	}
	if parsed.Instructions != "" {
		instructions := parsed.Instructions
		recipe.Instructions = &instructions
	}

	if err := uow.RecipeRepository().Create(ctx, recipe); err != nil {
		log.Printf("[ERROR] Failed to save extracted recipe for message %s: %v", payload.MessageId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	linked := 0
	for _, line := range parsed.Ingredients {
		name := ingredientNameFromLine(line)
		if name == "" {
			continue
		}
		if _, err := cs.ingredientService.FindOrCreate(ctx, name, entity.UnitPieces); err != nil {
			log.Printf("[WARN] Failed to link ingredient %q: %v", name, err)
			continue
		}
		linked++
	}

	log.Printf("[SUCCESS] Recipe %q saved, %d ingredients linked (message %s)", recipe.RecipeName, linked, payload.MessageId)
	msg.Ack()
}

var knownUnits = map[string]bool{
	"grams": true, "g": true, "kg": true, "ml": true, "liters": true,
	"liter": true, "l": true, "cups": true, "cup": true, "tbsp": true,
	"tsp": true, "pieces": true, "piece": true, "cans": true, "can": true,
	"bottles": true, "bottle": true, "oz": true, "lb": true,
}

// ingredientNameFromLine strips a leading quantity and unit token from an
// ingredient line, leaving the bare name for catalog lookup.
func ingredientNameFromLine(line string) string {
	fields := strings.Fields(line)
	i := 0
	if i < len(fields) && fields[i][0] >= '0' && fields[i][0] <= '9' {
		i++
	}
	if i < len(fields) && knownUnits[strings.ToLower(fields[i])] {
		i++
	}
	return strings.TrimSpace(strings.Join(fields[i:], " "))
}
