package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/pkg/logger"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/contract"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/events"
	pktNats "github.com/KagureMwangi/sous-chef-smart-cart/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification entity.Notification)
}

type NotificationService struct {
	repo       contract.NotificationRepository
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo contract.NotificationRepository, sub *pktNats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", typeCode), map[string]interface{}{"type": typeCode})

	payload := event.Payload()

	uidStr, ok := payload["user_id"].(string)
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("No user_id in payload for event %s", typeCode), nil)
		return nil
	}
	userId, err := uuid.Parse(uidStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Invalid user_id in payload", map[string]interface{}{"user_id": uidStr})
		return nil
	}

	notif := s.buildNotification(userId, typeCode, payload)
	if notif == nil {
		return nil
	}

	if err := s.repo.Create(ctx, notif); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userId), map[string]interface{}{"error": err})
		return err // NATS will retry
	}

	if s.delivery != nil {
		s.delivery.Send(userId, *notif)
	}

	return nil
}

func (s *NotificationService) buildNotification(userId uuid.UUID, typeCode string, payload map[string]interface{}) *entity.Notification {
	notif := &entity.Notification{
		Id:        uuid.New(),
		UserId:    userId,
		Level:     entity.NotificationLevelInfo,
		CreatedAt: time.Now(),
	}

	switch typeCode {
	case "CHAT_NOTIFICATION":
		if level, ok := payload["level"].(string); ok {
			notif.Level = entity.NotificationLevel(level)
		}
		notif.Title, _ = payload["title"].(string)
		notif.Message, _ = payload["message"].(string)
	case "USER_LOGIN":
		// Logins are audit noise, not inbox material
		return nil
	default:
		notif.Title = typeCode
		if message, ok := payload["message"].(string); ok {
			notif.Message = message
		}
	}

	if notif.Title == "" && notif.Message == "" {
		return nil
	}
	return notif
}

// GetNotifications fetches notifications for a user, newest first.
func (s *NotificationService) GetNotifications(ctx context.Context, userId uuid.UUID, limit, offset int) ([]dto.NotificationResponse, int64, error) {
	if limit <= 0 {
		limit = 20
	}

	notifications, err := s.repo.FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, dto.NotificationResponse{
			Id:        n.Id,
			Level:     string(n.Level),
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return responses, total, nil
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	return s.repo.Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.UnreadOnly{},
	)
}

// MarkAsRead marks a notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userId uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userId)
}
