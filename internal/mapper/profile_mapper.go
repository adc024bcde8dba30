package mapper

import (
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ProfileToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Profile{
		Id:            p.Id,
		HouseholdSize: p.HouseholdSize,
		Country:       p.Country,
		Currency:      p.Currency,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ProfileMapper) ProfileToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Profile{
		Id:            p.Id,
		HouseholdSize: p.HouseholdSize,
		Country:       p.Country,
		Currency:      p.Currency,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ProfileMapper) AllergyToEntity(a *model.UserAllergy) *entity.UserAllergy {
	if a == nil {
		return nil
	}

	return &entity.UserAllergy{
		Id:        a.Id,
		UserId:    a.UserId,
		Allergy:   entity.AllergyType(a.Allergy),
		Severity:  a.Severity,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ProfileMapper) AllergyToModel(a *entity.UserAllergy) *model.UserAllergy {
	if a == nil {
		return nil
	}

	return &model.UserAllergy{
		Id:        a.Id,
		UserId:    a.UserId,
		Allergy:   string(a.Allergy),
		Severity:  a.Severity,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ProfileMapper) AllergiesToEntities(allergies []*model.UserAllergy) []*entity.UserAllergy {
	entities := make([]*entity.UserAllergy, 0, len(allergies))
	for _, a := range allergies {
		entities = append(entities, m.AllergyToEntity(a))
	}
	return entities
}

func (m *ProfileMapper) RestrictionToEntity(r *model.CustomDietaryRestriction) *entity.CustomDietaryRestriction {
	if r == nil {
		return nil
	}
	return &entity.CustomDietaryRestriction{
		Id:          r.Id,
		UserId:      r.UserId,
		Restriction: r.Restriction,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *ProfileMapper) RestrictionsToEntities(restrictions []*model.CustomDietaryRestriction) []*entity.CustomDietaryRestriction {
	entities := make([]*entity.CustomDietaryRestriction, 0, len(restrictions))
	for _, r := range restrictions {
		entities = append(entities, m.RestrictionToEntity(r))
	}
	return entities
}

func (m *ProfileMapper) RestrictionToModel(r *entity.CustomDietaryRestriction) *model.CustomDietaryRestriction {
	if r == nil {
		return nil
	}
	return &model.CustomDietaryRestriction{
		Id:          r.Id,
		UserId:      r.UserId,
		Restriction: r.Restriction,
		CreatedAt:   r.CreatedAt,
	}
}
