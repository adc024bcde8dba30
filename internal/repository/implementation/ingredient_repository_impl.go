package implementation

import (
	"context"
	"errors"
	"strings"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/mapper"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/contract"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IngredientRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IngredientMapper
}

func NewIngredientRepository(db *gorm.DB) contract.IngredientRepository {
	return &IngredientRepositoryImpl{
		db:     db,
		mapper: mapper.NewIngredientMapper(),
	}
}

func (r *IngredientRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *IngredientRepositoryImpl) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	m := r.mapper.ToModel(ingredient)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*ingredient = *r.mapper.ToEntity(m)
	return nil
}

func (r *IngredientRepositoryImpl) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	m := r.mapper.ToModel(ingredient)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*ingredient = *r.mapper.ToEntity(m)
	return nil
}

func (r *IngredientRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Ingredient{}, id).Error
}

func (r *IngredientRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ingredient, error) {
	var m model.Ingredient
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *IngredientRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ingredient, error) {
	var models []*model.Ingredient
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *IngredientRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Ingredient{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *IngredientRepositoryImpl) FindByNormalizedName(ctx context.Context, name string) (*entity.Ingredient, error) {
	var m model.Ingredient
	normalized := strings.ToLower(strings.TrimSpace(name))

	err := r.db.WithContext(ctx).
		Where("LOWER(TRIM(name)) = ?", normalized).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *IngredientRepositoryImpl) Search(ctx context.Context, query string, limit int) ([]*entity.Ingredient, error) {
	var models []*model.Ingredient
	pattern := "%" + query + "%"

	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", pattern).
		Order("name ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
