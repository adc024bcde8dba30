package service

import (
	"context"
	"errors"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPantryService interface {
	AddItem(ctx context.Context, userId uuid.UUID, req *dto.AddPantryItemRequest) (*dto.PantryItemResponse, error)
	UpdateItem(ctx context.Context, userId, itemId uuid.UUID, req *dto.UpdatePantryItemRequest) (*dto.PantryItemResponse, error)
	RemoveItem(ctx context.Context, userId, itemId uuid.UUID) error
	ListItems(ctx context.Context, userId uuid.UUID) ([]dto.PantryItemResponse, error)
	ListExpiring(ctx context.Context, userId uuid.UUID, withinDays int) ([]dto.PantryItemResponse, error)
}

type pantryService struct {
	uowFactory        unitofwork.RepositoryFactory
	ingredientService IIngredientService
}

func NewPantryService(uowFactory unitofwork.RepositoryFactory, ingredientService IIngredientService) IPantryService {
	return &pantryService{
		uowFactory:        uowFactory,
		ingredientService: ingredientService,
	}
}

func (s *pantryService) AddItem(ctx context.Context, userId uuid.UUID, req *dto.AddPantryItemRequest) (*dto.PantryItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var ingredient *entity.Ingredient
	var err error

	switch {
	case req.IngredientId != nil:
		ingredient, err = uow.IngredientRepository().FindOne(ctx, specification.ByID{ID: *req.IngredientId})
		if err != nil {
			return nil, err
		}
		if ingredient == nil {
			return nil, errors.New("ingredient not found")
		}
	case req.IngredientName != nil:
		ingredient, err = s.ingredientService.FindOrCreate(ctx, *req.IngredientName, entity.UnitType(req.Unit))
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("ingredient_id or ingredient_name is required")
	}

	existing, err := uow.PantryRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByIngredientID{IngredientID: ingredient.Id},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil && string(existing.Unit) == req.Unit {
		// Same ingredient in the same unit merges instead of duplicating
		existing.Quantity += req.Quantity
		if req.ExpiryDate != nil {
			existing.ExpiryDate = req.ExpiryDate
		}
		now := time.Now()
		existing.UpdatedAt = &now
		if err := uow.PantryRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		existing.Ingredient = ingredient
		return pantryItemToResponse(existing), nil
	}

	item := &entity.PantryItem{
		Id:                   uuid.New(),
		UserId:               userId,
		IngredientId:         ingredient.Id,
		Quantity:             req.Quantity,
		Unit:                 entity.UnitType(req.Unit),
		PurchaseDate:         req.PurchaseDate,
		ExpiryDate:           req.ExpiryDate,
		EstimatedDaysLasting: req.EstimatedDaysLasting,
		CreatedAt:            time.Now(),
	}

	if err := uow.PantryRepository().Create(ctx, item); err != nil {
		return nil, err
	}

	item.Ingredient = ingredient
	return pantryItemToResponse(item), nil
}

func (s *pantryService) UpdateItem(ctx context.Context, userId, itemId uuid.UUID, req *dto.UpdatePantryItemRequest) (*dto.PantryItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.PantryRepository().FindOne(ctx,
		specification.ByID{ID: itemId},
		specification.UserOwnedBy{UserID: userId},
		specification.WithIngredient{},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.New("pantry item not found")
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = entity.UnitType(*req.Unit)
	}
	if req.ExpiryDate != nil {
		item.ExpiryDate = req.ExpiryDate
	}
	if req.EstimatedDaysLasting != nil {
		item.EstimatedDaysLasting = req.EstimatedDaysLasting
	}
	now := time.Now()
	item.UpdatedAt = &now

	if err := uow.PantryRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	return pantryItemToResponse(item), nil
}

func (s *pantryService) RemoveItem(ctx context.Context, userId, itemId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.PantryRepository().FindOne(ctx,
		specification.ByID{ID: itemId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.New("pantry item not found")
	}

	return uow.PantryRepository().Delete(ctx, itemId)
}

func (s *pantryService) ListItems(ctx context.Context, userId uuid.UUID) ([]dto.PantryItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.PantryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.WithIngredient{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	return pantryItemsToResponses(items), nil
}

func (s *pantryService) ListExpiring(ctx context.Context, userId uuid.UUID, withinDays int) ([]dto.PantryItemResponse, error) {
	if withinDays <= 0 {
		withinDays = 7
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	cutoff := time.Now().AddDate(0, 0, withinDays)
	items, err := uow.PantryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ExpiringBefore{Cutoff: cutoff},
		specification.WithIngredient{},
		specification.OrderBy{Field: "expiry_date"},
	)
	if err != nil {
		return nil, err
	}

	return pantryItemsToResponses(items), nil
}

func pantryItemToResponse(item *entity.PantryItem) *dto.PantryItemResponse {
	resp := &dto.PantryItemResponse{
		Id:                   item.Id,
		Quantity:             item.Quantity,
		Unit:                 string(item.Unit),
		PurchaseDate:         item.PurchaseDate,
		ExpiryDate:           item.ExpiryDate,
		EstimatedDaysLasting: item.EstimatedDaysLasting,
		CreatedAt:            item.CreatedAt,
	}
	if item.Ingredient != nil {
		resp.Ingredient = ingredientToResponse(item.Ingredient)
	}
	return resp
}

func pantryItemsToResponses(items []*entity.PantryItem) []dto.PantryItemResponse {
	responses := make([]dto.PantryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, *pantryItemToResponse(item))
	}
	return responses
}
