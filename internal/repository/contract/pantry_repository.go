package contract

import (
	"context"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"

	"github.com/google/uuid"
)

type PantryRepository interface {
	Create(ctx context.Context, item *entity.PantryItem) error
	Update(ctx context.Context, item *entity.PantryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PantryItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PantryItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity float64) error
}
