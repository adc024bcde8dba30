package service

import (
	"context"
	"errors"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/unitofwork"
	"github.com/KagureMwangi/sous-chef-smart-cart/pkg/chat/extract"

	"github.com/google/uuid"
)

const defaultShoppingListName = "My Shopping List"

type IShoppingService interface {
	CreateList(ctx context.Context, userId uuid.UUID, req *dto.CreateShoppingListRequest) (*dto.ShoppingListResponse, error)
	DeleteList(ctx context.Context, userId, listId uuid.UUID) error
	GetLists(ctx context.Context, userId uuid.UUID) ([]dto.ShoppingListResponse, error)
	GetListDetail(ctx context.Context, userId, listId uuid.UUID) (*dto.ShoppingListDetailResponse, error)

	AddItem(ctx context.Context, userId, listId uuid.UUID, req *dto.AddShoppingItemRequest) (*dto.ShoppingItemResponse, error)
	RemoveItem(ctx context.Context, userId, listId, itemId uuid.UUID) error
	SetItemPurchased(ctx context.Context, userId, listId, itemId uuid.UUID, purchased bool) error
	ClearPurchased(ctx context.Context, userId, listId uuid.UUID) error

	// AddSuggestedItems re-parses an assistant message for shopping items and
	// bulk-adds them. When no list id is given the user's newest list is
	// used, created on the fly if none exists.
	AddSuggestedItems(ctx context.Context, userId uuid.UUID, req *dto.AddSuggestedItemsRequest) ([]dto.ShoppingItemResponse, error)
}

type shoppingService struct {
	uowFactory        unitofwork.RepositoryFactory
	ingredientService IIngredientService
}

func NewShoppingService(uowFactory unitofwork.RepositoryFactory, ingredientService IIngredientService) IShoppingService {
	return &shoppingService{
		uowFactory:        uowFactory,
		ingredientService: ingredientService,
	}
}

func (s *shoppingService) CreateList(ctx context.Context, userId uuid.UUID, req *dto.CreateShoppingListRequest) (*dto.ShoppingListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	list := &entity.ShoppingList{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}

	if err := uow.ShoppingRepository().CreateList(ctx, list); err != nil {
		return nil, err
	}

	return listToResponse(list), nil
}

func (s *shoppingService) DeleteList(ctx context.Context, userId, listId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedList(ctx, uow, userId, listId); err != nil {
		return err
	}

	return uow.ShoppingRepository().DeleteList(ctx, listId)
}

func (s *shoppingService) GetLists(ctx context.Context, userId uuid.UUID) ([]dto.ShoppingListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	lists, err := uow.ShoppingRepository().FindAllLists(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ShoppingListResponse, 0, len(lists))
	for _, list := range lists {
		responses = append(responses, *listToResponse(list))
	}
	return responses, nil
}

func (s *shoppingService) GetListDetail(ctx context.Context, userId, listId uuid.UUID) (*dto.ShoppingListDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	list, err := s.findOwnedList(ctx, uow, userId, listId)
	if err != nil {
		return nil, err
	}

	items, err := uow.ShoppingRepository().FindAllItems(ctx,
		specification.ByShoppingListID{ShoppingListID: listId},
		specification.WithIngredient{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	detail := &dto.ShoppingListDetailResponse{
		List:  *listToResponse(list),
		Items: make([]dto.ShoppingItemResponse, 0, len(items)),
	}
	for _, item := range items {
		detail.Items = append(detail.Items, *itemToResponse(item))
	}
	return detail, nil
}

func (s *shoppingService) AddItem(ctx context.Context, userId, listId uuid.UUID, req *dto.AddShoppingItemRequest) (*dto.ShoppingItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedList(ctx, uow, userId, listId); err != nil {
		return nil, err
	}

	if req.IngredientId == nil && req.CustomItemName == nil {
		return nil, errors.New("ingredient_id or custom_item_name is required")
	}

	item := &entity.ShoppingListItem{
		Id:             uuid.New(),
		ShoppingListId: listId,
		IngredientId:   req.IngredientId,
		CustomItemName: req.CustomItemName,
		Quantity:       req.Quantity,
		Unit:           entity.UnitType(req.Unit),
		CreatedAt:      time.Now(),
	}

	if req.IngredientId != nil {
		ingredient, err := uow.IngredientRepository().FindOne(ctx, specification.ByID{ID: *req.IngredientId})
		if err != nil {
			return nil, err
		}
		if ingredient == nil {
			return nil, errors.New("ingredient not found")
		}
		item.Ingredient = ingredient
	}

	if err := uow.ShoppingRepository().CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return itemToResponse(item), nil
}

func (s *shoppingService) RemoveItem(ctx context.Context, userId, listId, itemId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedItem(ctx, uow, userId, listId, itemId); err != nil {
		return err
	}

	return uow.ShoppingRepository().DeleteItem(ctx, itemId)
}

func (s *shoppingService) SetItemPurchased(ctx context.Context, userId, listId, itemId uuid.UUID, purchased bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedItem(ctx, uow, userId, listId, itemId); err != nil {
		return err
	}

	return uow.ShoppingRepository().SetItemPurchased(ctx, itemId, purchased)
}

func (s *shoppingService) ClearPurchased(ctx context.Context, userId, listId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedList(ctx, uow, userId, listId); err != nil {
		return err
	}

	return uow.ShoppingRepository().ClearPurchased(ctx, listId)
}

func (s *shoppingService) AddSuggestedItems(ctx context.Context, userId uuid.UUID, req *dto.AddSuggestedItemsRequest) ([]dto.ShoppingItemResponse, error) {
	suggested := extract.ExtractShoppingItems(req.MessageText)
	if len(suggested) == 0 {
		return nil, errors.New("no shopping items found in message")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var list *entity.ShoppingList
	var err error

	if req.ListId != nil {
		list, err = s.findOwnedList(ctx, uow, userId, *req.ListId)
		if err != nil {
			return nil, err
		}
	} else {
		list, err = uow.ShoppingRepository().FindOneList(ctx,
			specification.UserOwnedBy{UserID: userId},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		if err != nil {
			return nil, err
		}
		if list == nil {
			list = &entity.ShoppingList{
				Id:        uuid.New(),
				UserId:    userId,
				Name:      defaultShoppingListName,
				CreatedAt: time.Now(),
			}
			if err := uow.ShoppingRepository().CreateList(ctx, list); err != nil {
				return nil, err
			}
		}
	}

	items := make([]*entity.ShoppingListItem, 0, len(suggested))
	for _, suggestion := range suggested {
		item := &entity.ShoppingListItem{
			Id:             uuid.New(),
			ShoppingListId: list.Id,
			Quantity:       suggestion.Quantity,
			Unit:           entity.UnitType(suggestion.Unit),
			CreatedAt:      time.Now(),
		}

		// Link to the catalog when the name resolves; fall back to a
		// free-text item otherwise.
		ingredient, lookupErr := uow.IngredientRepository().FindByNormalizedName(ctx, suggestion.Name)
		if lookupErr == nil && ingredient != nil {
			item.IngredientId = &ingredient.Id
			item.Ingredient = ingredient
		} else {
			name := suggestion.Name
			item.CustomItemName = &name
		}

		items = append(items, item)
	}

	if err := uow.ShoppingRepository().CreateItems(ctx, items); err != nil {
		return nil, err
	}

	responses := make([]dto.ShoppingItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, *itemToResponse(item))
	}
	return responses, nil
}

func (s *shoppingService) findOwnedList(ctx context.Context, uow unitofwork.UnitOfWork, userId, listId uuid.UUID) (*entity.ShoppingList, error) {
	list, err := uow.ShoppingRepository().FindOneList(ctx,
		specification.ByID{ID: listId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, errors.New("shopping list not found")
	}
	return list, nil
}

func (s *shoppingService) findOwnedItem(ctx context.Context, uow unitofwork.UnitOfWork, userId, listId, itemId uuid.UUID) (*entity.ShoppingListItem, error) {
	if _, err := s.findOwnedList(ctx, uow, userId, listId); err != nil {
		return nil, err
	}

	item, err := uow.ShoppingRepository().FindOneItem(ctx,
		specification.ByID{ID: itemId},
		specification.ByShoppingListID{ShoppingListID: listId},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("shopping list item not found")
	}
	return item, nil
}

func listToResponse(list *entity.ShoppingList) *dto.ShoppingListResponse {
	return &dto.ShoppingListResponse{
		Id:        list.Id,
		Name:      list.Name,
		CreatedAt: list.CreatedAt,
	}
}

func itemToResponse(item *entity.ShoppingListItem) *dto.ShoppingItemResponse {
	resp := &dto.ShoppingItemResponse{
		Id:             item.Id,
		CustomItemName: item.CustomItemName,
		Quantity:       item.Quantity,
		Unit:           string(item.Unit),
		IsPurchased:    item.IsPurchased,
		CreatedAt:      item.CreatedAt,
	}
	if item.Ingredient != nil {
		resp.Ingredient = ingredientToResponse(item.Ingredient)
	}
	return resp
}
