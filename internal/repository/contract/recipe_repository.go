package contract

import (
	"context"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"

	"github.com/google/uuid"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *entity.UserRecipe) error
	Update(ctx context.Context, recipe *entity.UserRecipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserRecipe, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserRecipe, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
	TouchSearch(ctx context.Context, id uuid.UUID) error
	DeleteAllForUser(ctx context.Context, userId uuid.UUID) error
}
