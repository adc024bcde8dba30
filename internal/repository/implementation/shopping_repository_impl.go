package implementation

import (
	"context"
	"errors"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/mapper"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/contract"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShoppingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ShoppingMapper
}

func NewShoppingRepository(db *gorm.DB) contract.ShoppingRepository {
	return &ShoppingRepositoryImpl{
		db:     db,
		mapper: mapper.NewShoppingMapper(),
	}
}

func (r *ShoppingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ShoppingRepositoryImpl) CreateList(ctx context.Context, list *entity.ShoppingList) error {
	m := r.mapper.ListToModel(list)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*list = *r.mapper.ListToEntity(m)
	return nil
}

func (r *ShoppingRepositoryImpl) UpdateList(ctx context.Context, list *entity.ShoppingList) error {
	m := r.mapper.ListToModel(list)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*list = *r.mapper.ListToEntity(m)
	return nil
}

func (r *ShoppingRepositoryImpl) DeleteList(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopping_list_id = ?", id).Delete(&model.ShoppingListItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ShoppingList{}, id).Error
	})
}

func (r *ShoppingRepositoryImpl) FindOneList(ctx context.Context, specs ...specification.Specification) (*entity.ShoppingList, error) {
	var m model.ShoppingList
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ListToEntity(&m), nil
}

func (r *ShoppingRepositoryImpl) FindAllLists(ctx context.Context, specs ...specification.Specification) ([]*entity.ShoppingList, error) {
	var models []*model.ShoppingList
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ListsToEntities(models), nil
}

func (r *ShoppingRepositoryImpl) CreateItem(ctx context.Context, item *entity.ShoppingListItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *ShoppingRepositoryImpl) CreateItems(ctx context.Context, items []*entity.ShoppingListItem) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]*model.ShoppingListItem, 0, len(items))
	for _, item := range items {
		models = append(models, r.mapper.ItemToModel(item))
	}

	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*items[i] = *r.mapper.ItemToEntity(m)
	}
	return nil
}

func (r *ShoppingRepositoryImpl) UpdateItem(ctx context.Context, item *entity.ShoppingListItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *ShoppingRepositoryImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ShoppingListItem{}, id).Error
}

func (r *ShoppingRepositoryImpl) FindOneItem(ctx context.Context, specs ...specification.Specification) (*entity.ShoppingListItem, error) {
	var m model.ShoppingListItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ItemToEntity(&m), nil
}

func (r *ShoppingRepositoryImpl) FindAllItems(ctx context.Context, specs ...specification.Specification) ([]*entity.ShoppingListItem, error) {
	var models []*model.ShoppingListItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ItemsToEntities(models), nil
}

func (r *ShoppingRepositoryImpl) SetItemPurchased(ctx context.Context, id uuid.UUID, purchased bool) error {
	return r.db.WithContext(ctx).Model(&model.ShoppingListItem{}).Where("id = ?", id).Update("is_purchased", purchased).Error
}

func (r *ShoppingRepositoryImpl) ClearPurchased(ctx context.Context, listId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("shopping_list_id = ? AND is_purchased = ?", listId, true).
		Delete(&model.ShoppingListItem{}).Error
}
