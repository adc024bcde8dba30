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

type IRecipeService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateRecipeRequest) (*dto.RecipeResponse, error)
	Update(ctx context.Context, userId, recipeId uuid.UUID, req *dto.UpdateRecipeRequest) (*dto.RecipeResponse, error)
	Delete(ctx context.Context, userId, recipeId uuid.UUID) error
	GetById(ctx context.Context, userId, recipeId uuid.UUID) (*dto.RecipeResponse, error)
	List(ctx context.Context, userId uuid.UUID, favoritesOnly bool) ([]dto.RecipeResponse, error)
	ToggleFavorite(ctx context.Context, userId, recipeId uuid.UUID) (*dto.RecipeResponse, error)
	Reset(ctx context.Context, userId uuid.UUID) error
	// SaveExtracted re-parses an assistant message and stores the structured
	// recipe under the ai_chat source.
	SaveExtracted(ctx context.Context, userId uuid.UUID, req *dto.SaveExtractedRecipeRequest) (*dto.RecipeResponse, error)
}

type recipeService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRecipeService(uowFactory unitofwork.RepositoryFactory) IRecipeService {
	return &recipeService{uowFactory: uowFactory}
}

func (s *recipeService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipe := &entity.UserRecipe{
		Id:              uuid.New(),
		UserId:          userId,
		RecipeName:      req.RecipeName,
		Description:     req.Description,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Source:          entity.RecipeSourceManual,
		CreatedAt:       time.Now(),
	}

	if err := uow.RecipeRepository().Create(ctx, recipe); err != nil {
		return nil, err
	}

	return recipeToResponse(recipe), nil
}

func (s *recipeService) Update(ctx context.Context, userId, recipeId uuid.UUID, req *dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipe, err := s.findOwned(ctx, uow, userId, recipeId)
	if err != nil {
		return nil, err
	}

	if req.RecipeName != nil {
		recipe.RecipeName = *req.RecipeName
	}
	if req.Description != nil {
		recipe.Description = req.Description
	}
	if req.Ingredients != nil {
		recipe.Ingredients = req.Ingredients
	}
	if req.Instructions != nil {
		recipe.Instructions = req.Instructions
	}
	if req.PrepTimeMinutes != nil {
		recipe.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.CookTimeMinutes != nil {
		recipe.CookTimeMinutes = req.CookTimeMinutes
	}
	if req.Servings != nil {
		recipe.Servings = req.Servings
	}
	now := time.Now()
	recipe.UpdatedAt = &now

	if err := uow.RecipeRepository().Update(ctx, recipe); err != nil {
		return nil, err
	}

	return recipeToResponse(recipe), nil
}

func (s *recipeService) Delete(ctx context.Context, userId, recipeId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, recipeId); err != nil {
		return err
	}

	return uow.RecipeRepository().Delete(ctx, recipeId)
}

func (s *recipeService) GetById(ctx context.Context, userId, recipeId uuid.UUID) (*dto.RecipeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipe, err := s.findOwned(ctx, uow, userId, recipeId)
	if err != nil {
		return nil, err
	}

	_ = uow.RecipeRepository().TouchSearch(ctx, recipeId)

	return recipeToResponse(recipe), nil
}

func (s *recipeService) List(ctx context.Context, userId uuid.UUID, favoritesOnly bool) ([]dto.RecipeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "last_searched_at", Desc: true},
	}
	if favoritesOnly {
		specs = append(specs, specification.FavoritesOnly{})
	}

	recipes, err := uow.RecipeRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, *recipeToResponse(recipe))
	}
	return responses, nil
}

func (s *recipeService) ToggleFavorite(ctx context.Context, userId, recipeId uuid.UUID) (*dto.RecipeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recipe, err := s.findOwned(ctx, uow, userId, recipeId)
	if err != nil {
		return nil, err
	}

	recipe.IsFavorite = !recipe.IsFavorite
	if err := uow.RecipeRepository().SetFavorite(ctx, recipeId, recipe.IsFavorite); err != nil {
		return nil, err
	}

	return recipeToResponse(recipe), nil
}

func (s *recipeService) Reset(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.RecipeRepository().DeleteAllForUser(ctx, userId)
}

func (s *recipeService) SaveExtracted(ctx context.Context, userId uuid.UUID, req *dto.SaveExtractedRecipeRequest) (*dto.RecipeResponse, error) {
	parsed := extract.ExtractRecipeFromMessage(req.MessageText)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	description := parsed.Description
	recipe := &entity.UserRecipe{
		Id:              uuid.New(),
		UserId:          userId,
		RecipeName:      parsed.Name,
		Description:     &description,
		Ingredients:     parsed.Ingredients,
		PrepTimeMinutes: parsed.PrepTimeMinutes,
		CookTimeMinutes: parsed.CookTimeMinutes,
		Servings:        parsed.Servings,
		Source:          entity.RecipeSourceAiChat,
		CreatedAt:       time.Now(),
	}
	if parsed.Instructions != "" {
		instructions := parsed.Instructions
		recipe.Instructions = &instructions
	}

	if err := uow.RecipeRepository().Create(ctx, recipe); err != nil {
		return nil, err
	}

	return recipeToResponse(recipe), nil
}

func (s *recipeService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, recipeId uuid.UUID) (*entity.UserRecipe, error) {
	recipe, err := uow.RecipeRepository().FindOne(ctx,
		specification.ByID{ID: recipeId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, errors.New("recipe not found")
	}
	return recipe, nil
}

func recipeToResponse(recipe *entity.UserRecipe) *dto.RecipeResponse {
	return &dto.RecipeResponse{
		Id:              recipe.Id,
		RecipeName:      recipe.RecipeName,
		Description:     recipe.Description,
		Ingredients:     recipe.Ingredients,
		Instructions:    recipe.Instructions,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		Source:          recipe.Source,
		IsFavorite:      recipe.IsFavorite,
		SearchCount:     recipe.SearchCount,
		LastSearchedAt:  recipe.LastSearchedAt,
		CreatedAt:       recipe.CreatedAt,
	}
}
