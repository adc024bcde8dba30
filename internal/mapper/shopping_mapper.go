package mapper

import (
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"
)

type ShoppingMapper struct {
	ingredientMapper *IngredientMapper
}

func NewShoppingMapper() *ShoppingMapper {
	return &ShoppingMapper{
		ingredientMapper: NewIngredientMapper(),
	}
}

func (m *ShoppingMapper) ListToEntity(l *model.ShoppingList) *entity.ShoppingList {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.ShoppingList{
		Id:        l.Id,
		UserId:    l.UserId,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ShoppingMapper) ListToModel(l *entity.ShoppingList) *model.ShoppingList {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.ShoppingList{
		Id:        l.Id,
		UserId:    l.UserId,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ShoppingMapper) ListsToEntities(lists []*model.ShoppingList) []*entity.ShoppingList {
	entities := make([]*entity.ShoppingList, 0, len(lists))
	for _, l := range lists {
		entities = append(entities, m.ListToEntity(l))
	}
	return entities
}

func (m *ShoppingMapper) ItemToEntity(i *model.ShoppingListItem) *entity.ShoppingListItem {
	if i == nil {
		return nil
	}

	return &entity.ShoppingListItem{
		Id:             i.Id,
		ShoppingListId: i.ShoppingListId,
		IngredientId:   i.IngredientId,
		Ingredient:     m.ingredientMapper.ToEntity(i.Ingredient),
		CustomItemName: i.CustomItemName,
		Quantity:       i.Quantity,
		Unit:           entity.UnitType(i.Unit),
		IsPurchased:    i.IsPurchased,
		CreatedAt:      i.CreatedAt,
	}
}

func (m *ShoppingMapper) ItemsToEntities(items []*model.ShoppingListItem) []*entity.ShoppingListItem {
	entities := make([]*entity.ShoppingListItem, 0, len(items))
	for _, i := range items {
		entities = append(entities, m.ItemToEntity(i))
	}
	return entities
}

func (m *ShoppingMapper) ItemToModel(i *entity.ShoppingListItem) *model.ShoppingListItem {
	if i == nil {
		return nil
	}

	return &model.ShoppingListItem{
		Id:             i.Id,
		ShoppingListId: i.ShoppingListId,
		IngredientId:   i.IngredientId,
		CustomItemName: i.CustomItemName,
		Quantity:       i.Quantity,
		Unit:           string(i.Unit),
		IsPurchased:    i.IsPurchased,
		CreatedAt:      i.CreatedAt,
	}
}
