package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/mapper"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/contract"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecipeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecipeMapper
}

func NewRecipeRepository(db *gorm.DB) contract.RecipeRepository {
	return &RecipeRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecipeMapper(),
	}
}

func (r *RecipeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecipeRepositoryImpl) Create(ctx context.Context, recipe *entity.UserRecipe) error {
	m := r.mapper.ToModel(recipe)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*recipe = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecipeRepositoryImpl) Update(ctx context.Context, recipe *entity.UserRecipe) error {
	m := r.mapper.ToModel(recipe)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*recipe = *r.mapper.ToEntity(m)
	return nil
}

func (r *RecipeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserRecipe{}, id).Error
}

func (r *RecipeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserRecipe, error) {
	var m model.UserRecipe
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *RecipeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserRecipe, error) {
	var models []*model.UserRecipe
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *RecipeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserRecipe{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RecipeRepositoryImpl) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	return r.db.WithContext(ctx).Model(&model.UserRecipe{}).Where("id = ?", id).Update("is_favorite", favorite).Error
}

func (r *RecipeRepositoryImpl) TouchSearch(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.UserRecipe{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"search_count":     gorm.Expr("search_count + 1"),
			"last_searched_at": now,
		}).Error
}

func (r *RecipeRepositoryImpl) DeleteAllForUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.UserRecipe{}).Error
}
