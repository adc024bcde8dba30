package contract

import (
	"context"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"

	"github.com/google/uuid"
)

type ShoppingRepository interface {
	CreateList(ctx context.Context, list *entity.ShoppingList) error
	UpdateList(ctx context.Context, list *entity.ShoppingList) error
	DeleteList(ctx context.Context, id uuid.UUID) error
	FindOneList(ctx context.Context, specs ...specification.Specification) (*entity.ShoppingList, error)
	FindAllLists(ctx context.Context, specs ...specification.Specification) ([]*entity.ShoppingList, error)

	CreateItem(ctx context.Context, item *entity.ShoppingListItem) error
	CreateItems(ctx context.Context, items []*entity.ShoppingListItem) error
	UpdateItem(ctx context.Context, item *entity.ShoppingListItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	FindOneItem(ctx context.Context, specs ...specification.Specification) (*entity.ShoppingListItem, error)
	FindAllItems(ctx context.Context, specs ...specification.Specification) ([]*entity.ShoppingListItem, error)

	SetItemPurchased(ctx context.Context, id uuid.UUID, purchased bool) error
	ClearPurchased(ctx context.Context, listId uuid.UUID) error
}
