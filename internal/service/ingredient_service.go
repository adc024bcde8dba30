package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const ingredientSearchLimit = 20

type IIngredientService interface {
	Create(ctx context.Context, req *dto.CreateIngredientRequest) (*dto.IngredientResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.IngredientResponse, error)
	Search(ctx context.Context, query string) ([]dto.IngredientResponse, error)
	// FindOrCreate resolves a free-text name to a catalog entry, creating one
	// with the given default unit when no match exists.
	FindOrCreate(ctx context.Context, name string, defaultUnit entity.UnitType) (*entity.Ingredient, error)
}

type ingredientService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewIngredientService(uowFactory unitofwork.RepositoryFactory) IIngredientService {
	return &ingredientService{uowFactory: uowFactory}
}

func (s *ingredientService) Create(ctx context.Context, req *dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.IngredientRepository().FindByNormalizedName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("ingredient already exists")
	}

	allergens := make([]entity.AllergyType, 0, len(req.ContainsAllergens))
	for _, a := range req.ContainsAllergens {
		allergens = append(allergens, entity.AllergyType(a))
	}

	ingredient := &entity.Ingredient{
		Id:                uuid.New(),
		Name:              strings.TrimSpace(req.Name),
		Category:          req.Category,
		DefaultUnit:       entity.UnitType(req.DefaultUnit),
		ContainsAllergens: allergens,
		CreatedAt:         time.Now(),
	}

	if err := uow.IngredientRepository().Create(ctx, ingredient); err != nil {
		return nil, err
	}

	return ingredientToResponse(ingredient), nil
}

func (s *ingredientService) GetById(ctx context.Context, id uuid.UUID) (*dto.IngredientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ingredient, err := uow.IngredientRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, errors.New("ingredient not found")
	}

	return ingredientToResponse(ingredient), nil
}

func (s *ingredientService) Search(ctx context.Context, query string) ([]dto.IngredientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ingredients, err := uow.IngredientRepository().Search(ctx, query, ingredientSearchLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		responses = append(responses, *ingredientToResponse(ingredient))
	}
	return responses, nil
}

func (s *ingredientService) FindOrCreate(ctx context.Context, name string, defaultUnit entity.UnitType) (*entity.Ingredient, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errors.New("ingredient name is required")
	}

	existing, err := uow.IngredientRepository().FindByNormalizedName(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if defaultUnit == "" {
		defaultUnit = entity.UnitPieces
	}

	ingredient := &entity.Ingredient{
		Id:          uuid.New(),
		Name:        trimmed,
		DefaultUnit: defaultUnit,
		CreatedAt:   time.Now(),
	}

	if err := uow.IngredientRepository().Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func ingredientToResponse(ingredient *entity.Ingredient) *dto.IngredientResponse {
	allergens := make([]string, 0, len(ingredient.ContainsAllergens))
	for _, a := range ingredient.ContainsAllergens {
		allergens = append(allergens, string(a))
	}
	return &dto.IngredientResponse{
		Id:                ingredient.Id,
		Name:              ingredient.Name,
		Category:          ingredient.Category,
		DefaultUnit:       string(ingredient.DefaultUnit),
		ContainsAllergens: allergens,
	}
}
