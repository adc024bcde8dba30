package mapper

import (
	"encoding/json"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"

	"gorm.io/datatypes"
)

type IngredientMapper struct{}

func NewIngredientMapper() *IngredientMapper {
	return &IngredientMapper{}
}

func (m *IngredientMapper) ToEntity(i *model.Ingredient) *entity.Ingredient {
	if i == nil {
		return nil
	}

	var allergens []entity.AllergyType
	if len(i.ContainsAllergens) > 0 {
		// Malformed allergen JSON degrades to an empty list.
		_ = json.Unmarshal(i.ContainsAllergens, &allergens)
	}

	return &entity.Ingredient{
		Id:                i.Id,
		Name:              i.Name,
		Category:          i.Category,
		DefaultUnit:       entity.UnitType(i.DefaultUnit),
		ContainsAllergens: allergens,
		CreatedAt:         i.CreatedAt,
	}
}

func (m *IngredientMapper) ToEntities(ingredients []*model.Ingredient) []*entity.Ingredient {
	entities := make([]*entity.Ingredient, 0, len(ingredients))
	for _, i := range ingredients {
		entities = append(entities, m.ToEntity(i))
	}
	return entities
}

func (m *IngredientMapper) ToModel(i *entity.Ingredient) *model.Ingredient {
	if i == nil {
		return nil
	}

	var allergens datatypes.JSON
	if len(i.ContainsAllergens) > 0 {
		if raw, err := json.Marshal(i.ContainsAllergens); err == nil {
			allergens = raw
		}
	}

	return &model.Ingredient{
		Id:                i.Id,
		Name:              i.Name,
		Category:          i.Category,
		DefaultUnit:       string(i.DefaultUnit),
		ContainsAllergens: allergens,
		CreatedAt:         i.CreatedAt,
	}
}
