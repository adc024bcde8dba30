package mapper

import (
	"encoding/json"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"

	"gorm.io/datatypes"
)

type RecipeMapper struct{}

func NewRecipeMapper() *RecipeMapper {
	return &RecipeMapper{}
}

func (m *RecipeMapper) ToEntity(r *model.UserRecipe) *entity.UserRecipe {
	if r == nil {
		return nil
	}

	var ingredients []string
	if len(r.Ingredients) > 0 {
		_ = json.Unmarshal(r.Ingredients, &ingredients)
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserRecipe{
		Id:              r.Id,
		UserId:          r.UserId,
		RecipeName:      r.RecipeName,
		Description:     r.RecipeDescription,
		Ingredients:     ingredients,
		Instructions:    r.Instructions,
		PrepTimeMinutes: r.PrepTime,
		CookTimeMinutes: r.CookTime,
		Servings:        r.Servings,
		Source:          r.Source,
		IsFavorite:      r.IsFavorite,
		SearchCount:     r.SearchCount,
		LastSearchedAt:  r.LastSearchedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *RecipeMapper) ToEntities(recipes []*model.UserRecipe) []*entity.UserRecipe {
	entities := make([]*entity.UserRecipe, 0, len(recipes))
	for _, r := range recipes {
		entities = append(entities, m.ToEntity(r))
	}
	return entities
}

func (m *RecipeMapper) ToModel(r *entity.UserRecipe) *model.UserRecipe {
	if r == nil {
		return nil
	}

	var ingredients datatypes.JSON
	if len(r.Ingredients) > 0 {
		if raw, err := json.Marshal(r.Ingredients); err == nil {
			ingredients = raw
		}
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.UserRecipe{
		Id:                r.Id,
		UserId:            r.UserId,
		RecipeName:        r.RecipeName,
		RecipeDescription: r.Description,
		Ingredients:       ingredients,
		Instructions:      r.Instructions,
		PrepTime:          r.PrepTimeMinutes,
		CookTime:          r.CookTimeMinutes,
		Servings:          r.Servings,
		Source:            r.Source,
		IsFavorite:        r.IsFavorite,
		SearchCount:       r.SearchCount,
		LastSearchedAt:    r.LastSearchedAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}
