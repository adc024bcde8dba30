package contract

import (
	"context"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"

	"github.com/google/uuid"
)

type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ingredient, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ingredient, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindByNormalizedName matches on lowercased trimmed name.
	FindByNormalizedName(ctx context.Context, name string) (*entity.Ingredient, error)
	Search(ctx context.Context, query string, limit int) ([]*entity.Ingredient, error)
}
