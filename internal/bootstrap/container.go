package bootstrap

import (
	"context"
	"log"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/config"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/controller"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/handler"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/pkg/logger"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/pkg/mailer"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/implementation"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/memory"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/unitofwork"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/service"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/websocket"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/assistant"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/chat/history"

	pktNats "github.com/KagureMwangi/sous-chef-smart-cart/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	ProfileController    controller.IProfileController
	IngredientController controller.IIngredientController
	PantryController     controller.IPantryController
	RecipeController     controller.IRecipeController
	ShoppingController   controller.IShoppingController
	ChatController       controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Conversation history backend
	var historyKV history.KV
	switch cfg.History.Backend {
	case "file":
		fileKV, err := history.NewFileKV(cfg.History.FileDir)
		if err != nil {
			log.Printf("[WARN] Failed to init file history backend: %v. Falling back to memory", err)
			historyKV = history.NewMemoryKV()
		} else {
			historyKV = fileKV
			log.Printf("[INFO] Using History Backend: FILE (%s)", cfg.History.FileDir)
		}
	case "memory":
		historyKV = history.NewMemoryKV()
		log.Printf("[INFO] Using History Backend: MEMORY")
	default:
		historyKV = history.NewRedisKV(rdb)
		log.Printf("[INFO] Using History Backend: REDIS")
	}
	historyStore := history.NewStore(historyKV, sysLogger)

	// Assistant backend
	var assistantClient assistant.Client
	if cfg.Assistant.Protocol == "copilot" {
		assistantClient = assistant.NewCopilotClient(cfg.Assistant.CopilotURL)
		log.Printf("[INFO] Using Assistant Protocol: COPILOT")
	} else {
		assistantClient = assistant.NewWebhookClient(cfg.Assistant.WebhookURL)
		log.Printf("[INFO] Using Assistant Protocol: WEBHOOK")
	}

	// In-memory copilot continuation tokens
	sessionRepo := memory.NewCopilotSessionRepository()

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.RecipeTopic, pubSub)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	profileService := service.NewProfileService(uowFactory)
	ingredientService := service.NewIngredientService(uowFactory)
	pantryService := service.NewPantryService(uowFactory, ingredientService)
	recipeService := service.NewRecipeService(uowFactory)
	shoppingService := service.NewShoppingService(uowFactory, ingredientService)

	chatService := service.NewChatService(
		uowFactory,
		historyStore,
		assistantClient,
		sessionRepo,
		publisherService,
		natsPub,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.RecipeTopic,
		uowFactory,
		ingredientService,
	)

	// 3.5 Notification System Infrastructure
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler:  notifHandler,
		WebSocketHub:         wsHub,
		AuthController:       controller.NewAuthController(authService),
		ProfileController:    controller.NewProfileController(profileService),
		IngredientController: controller.NewIngredientController(ingredientService),
		PantryController:     controller.NewPantryController(pantryService),
		RecipeController:     controller.NewRecipeController(recipeService),
		ShoppingController:   controller.NewShoppingController(shoppingService),
		ChatController:       controller.NewChatController(chatService),

		ConsumerService: consumerService,
	}
}
