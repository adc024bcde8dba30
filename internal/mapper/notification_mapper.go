package mapper

import (
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}

	return &entity.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Level:     entity.NotificationLevel(n.Level),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}

	return &model.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Level:     string(n.Level),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(notifications []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, 0, len(notifications))
	for _, n := range notifications {
		entities = append(entities, m.ToEntity(n))
	}
	return entities
}
