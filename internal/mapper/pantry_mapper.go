package mapper

import (
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"
)

type PantryMapper struct {
	ingredientMapper *IngredientMapper
}

func NewPantryMapper() *PantryMapper {
	return &PantryMapper{
		ingredientMapper: NewIngredientMapper(),
	}
}

func (m *PantryMapper) ToEntity(p *model.PantryItem) *entity.PantryItem {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.PantryItem{
		Id:                   p.Id,
		UserId:               p.UserId,
		IngredientId:         p.IngredientId,
		Ingredient:           m.ingredientMapper.ToEntity(p.Ingredient),
		Quantity:             p.Quantity,
		Unit:                 entity.UnitType(p.Unit),
		PurchaseDate:         p.PurchaseDate,
		ExpiryDate:           p.ExpiryDate,
		EstimatedDaysLasting: p.EstimatedDaysLasting,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *PantryMapper) ToEntities(items []*model.PantryItem) []*entity.PantryItem {
	entities := make([]*entity.PantryItem, 0, len(items))
	for _, i := range items {
		entities = append(entities, m.ToEntity(i))
	}
	return entities
}

func (m *PantryMapper) ToModel(p *entity.PantryItem) *model.PantryItem {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.PantryItem{
		Id:                   p.Id,
		UserId:               p.UserId,
		IngredientId:         p.IngredientId,
		Quantity:             p.Quantity,
		Unit:                 string(p.Unit),
		PurchaseDate:         p.PurchaseDate,
		ExpiryDate:           p.ExpiryDate,
		EstimatedDaysLasting: p.EstimatedDaysLasting,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}
