package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	created []*entity.Notification
	err     error
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, notification)
	return nil
}
func (f *fakeNotificationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	return f.created, nil
}
func (f *fakeNotificationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.created)), nil
}
func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error        { return nil }
func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userId uuid.UUID) error { return nil }
func (f *fakeNotificationRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

type fakeDelivery struct {
	sent []entity.Notification
}

func (f *fakeDelivery) Send(userID uuid.UUID, notification entity.Notification) {
	f.sent = append(f.sent, notification)
}

func chatEvent(userId uuid.UUID, level, title, message string) events.Event {
	return events.BaseEvent{
		Type: "events.CHAT_NOTIFICATION",
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"level":   level,
			"title":   title,
			"message": message,
		},
		OccurredAt: time.Now(),
	}
}

func TestHandleEventChatNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	delivery := &fakeDelivery{}
	svc := NewNotificationService(repo, nil, delivery, nopLogger{})
	userId := uuid.New()

	err := svc.handleEvent(context.Background(), chatEvent(userId, "error", "Assistant unavailable", "Please try again."))
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	saved := repo.created[0]
	assert.Equal(t, userId, saved.UserId)
	assert.Equal(t, entity.NotificationLevelError, saved.Level)
	assert.Equal(t, "Assistant unavailable", saved.Title)
	assert.Equal(t, "Please try again.", saved.Message)

	// Delivered over the hub as well.
	require.Len(t, delivery.sent, 1)
	assert.Equal(t, saved.Title, delivery.sent[0].Title)
}

func TestHandleEventSkipsLogins(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil, &fakeDelivery{}, nopLogger{})

	evt := events.BaseEvent{
		Type:       "events.USER_LOGIN",
		Data:       map[string]interface{}{"user_id": uuid.New().String()},
		OccurredAt: time.Now(),
	}

	require.NoError(t, svc.handleEvent(context.Background(), evt))
	assert.Empty(t, repo.created)
}

func TestHandleEventMissingUserIdIsDropped(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil, &fakeDelivery{}, nopLogger{})

	evt := events.BaseEvent{
		Type:       "events.CHAT_NOTIFICATION",
		Data:       map[string]interface{}{"title": "orphan"},
		OccurredAt: time.Now(),
	}

	// Dropped without error so the broker does not redeliver.
	require.NoError(t, svc.handleEvent(context.Background(), evt))
	assert.Empty(t, repo.created)
}

func TestHandleEventSaveFailurePropagates(t *testing.T) {
	repo := &fakeNotificationRepo{err: errors.New("db down")}
	svc := NewNotificationService(repo, nil, &fakeDelivery{}, nopLogger{})

	err := svc.handleEvent(context.Background(), chatEvent(uuid.New(), "info", "t", "m"))
	assert.Error(t, err)
}

func TestHandleEventUnknownTypeFallsBackToTypeCode(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil, &fakeDelivery{}, nopLogger{})
	userId := uuid.New()

	evt := events.BaseEvent{
		Type: "events.PANTRY_EXPIRY",
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"message": "3 items expire this week",
		},
		OccurredAt: time.Now(),
	}

	require.NoError(t, svc.handleEvent(context.Background(), evt))
	require.Len(t, repo.created, 1)
	assert.Equal(t, "PANTRY_EXPIRY", repo.created[0].Title)
	assert.Equal(t, "3 items expire this week", repo.created[0].Message)
	assert.Equal(t, entity.NotificationLevelInfo, repo.created[0].Level)
}
