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

type PantryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PantryMapper
}

func NewPantryRepository(db *gorm.DB) contract.PantryRepository {
	return &PantryRepositoryImpl{
		db:     db,
		mapper: mapper.NewPantryMapper(),
	}
}

func (r *PantryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PantryRepositoryImpl) Create(ctx context.Context, item *entity.PantryItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *PantryRepositoryImpl) Update(ctx context.Context, item *entity.PantryItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *PantryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PantryItem{}, id).Error
}

func (r *PantryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PantryItem, error) {
	var m model.PantryItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *PantryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PantryItem, error) {
	var models []*model.PantryItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *PantryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PantryItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PantryRepositoryImpl) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity float64) error {
	return r.db.WithContext(ctx).Model(&model.PantryItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}
