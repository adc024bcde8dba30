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

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ProfileToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ProfileToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ProfileToModel(profile)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ProfileToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var m model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ProfileToEntity(&m), nil
}

func (r *ProfileRepositoryImpl) AddAllergy(ctx context.Context, allergy *entity.UserAllergy) error {
	m := r.mapper.AllergyToModel(allergy)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*allergy = *r.mapper.AllergyToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) RemoveAllergy(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserAllergy{}, id).Error
}

func (r *ProfileRepositoryImpl) FindAllergies(ctx context.Context, specs ...specification.Specification) ([]*entity.UserAllergy, error) {
	var models []*model.UserAllergy
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.AllergiesToEntities(models), nil
}

func (r *ProfileRepositoryImpl) AddRestriction(ctx context.Context, restriction *entity.CustomDietaryRestriction) error {
	m := r.mapper.RestrictionToModel(restriction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*restriction = *r.mapper.RestrictionToEntity(m)
	return nil
}

func (r *ProfileRepositoryImpl) RemoveRestriction(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CustomDietaryRestriction{}, id).Error
}

func (r *ProfileRepositoryImpl) FindRestrictions(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomDietaryRestriction, error) {
	var models []*model.CustomDietaryRestriction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.RestrictionsToEntities(models), nil
}
