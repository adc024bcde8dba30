package contract

import (
	"context"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userId uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
