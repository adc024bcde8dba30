package service

import (
	"context"
	"errors"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProfileService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	GetDietaryProfile(ctx context.Context, userId uuid.UUID) (*dto.DietaryProfileResponse, error)

	AddAllergy(ctx context.Context, userId uuid.UUID, req *dto.AddAllergyRequest) (*dto.AllergyResponse, error)
	RemoveAllergy(ctx context.Context, userId, allergyId uuid.UUID) error

	AddRestriction(ctx context.Context, userId uuid.UUID, req *dto.AddRestrictionRequest) (*dto.RestrictionResponse, error)
	RemoveRestriction(ctx context.Context, userId, restrictionId uuid.UUID) error
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{uowFactory: uowFactory}
}

func (s *profileService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	return profileToResponse(profile), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	if req.HouseholdSize != nil {
		profile.HouseholdSize = *req.HouseholdSize
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.Currency != nil {
		profile.Currency = *req.Currency
	}
	now := time.Now()
	profile.UpdatedAt = &now

	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	return profileToResponse(profile), nil
}

func (s *profileService) GetDietaryProfile(ctx context.Context, userId uuid.UUID) (*dto.DietaryProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}

	allergies, err := uow.ProfileRepository().FindAllergies(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	restrictions, err := uow.ProfileRepository().FindRestrictions(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	resp := &dto.DietaryProfileResponse{
		Profile:      *profileToResponse(profile),
		Allergies:    make([]dto.AllergyResponse, 0, len(allergies)),
		Restrictions: make([]dto.RestrictionResponse, 0, len(restrictions)),
	}
	for _, a := range allergies {
		resp.Allergies = append(resp.Allergies, *allergyToResponse(a))
	}
	for _, r := range restrictions {
		resp.Restrictions = append(resp.Restrictions, *restrictionToResponse(r))
	}
	return resp, nil
}

func (s *profileService) AddAllergy(ctx context.Context, userId uuid.UUID, req *dto.AddAllergyRequest) (*dto.AllergyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ProfileRepository().FindAllergies(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByAllergy{Allergy: req.Allergy},
	)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, errors.New("allergy already recorded")
	}

	allergy := &entity.UserAllergy{
		Id:        uuid.New(),
		UserId:    userId,
		Allergy:   entity.AllergyType(req.Allergy),
		Severity:  req.Severity,
		CreatedAt: time.Now(),
	}

	if err := uow.ProfileRepository().AddAllergy(ctx, allergy); err != nil {
		return nil, err
	}

	return allergyToResponse(allergy), nil
}

func (s *profileService) RemoveAllergy(ctx context.Context, userId, allergyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	allergies, err := uow.ProfileRepository().FindAllergies(ctx,
		specification.ByID{ID: allergyId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if len(allergies) == 0 {
		return errors.New("allergy not found")
	}

	return uow.ProfileRepository().RemoveAllergy(ctx, allergyId)
}

func (s *profileService) AddRestriction(ctx context.Context, userId uuid.UUID, req *dto.AddRestrictionRequest) (*dto.RestrictionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restriction := &entity.CustomDietaryRestriction{
		Id:          uuid.New(),
		UserId:      userId,
		Restriction: req.Restriction,
		CreatedAt:   time.Now(),
	}

	if err := uow.ProfileRepository().AddRestriction(ctx, restriction); err != nil {
		return nil, err
	}

	return restrictionToResponse(restriction), nil
}

func (s *profileService) RemoveRestriction(ctx context.Context, userId, restrictionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	restrictions, err := uow.ProfileRepository().FindRestrictions(ctx,
		specification.ByID{ID: restrictionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if len(restrictions) == 0 {
		return errors.New("restriction not found")
	}

	return uow.ProfileRepository().RemoveRestriction(ctx, restrictionId)
}

func profileToResponse(profile *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Id:            profile.Id,
		HouseholdSize: profile.HouseholdSize,
		Country:       profile.Country,
		Currency:      profile.Currency,
	}
}

func allergyToResponse(allergy *entity.UserAllergy) *dto.AllergyResponse {
	return &dto.AllergyResponse{
		Id:        allergy.Id,
		Allergy:   string(allergy.Allergy),
		Severity:  allergy.Severity,
		CreatedAt: allergy.CreatedAt,
	}
}

func restrictionToResponse(restriction *entity.CustomDietaryRestriction) *dto.RestrictionResponse {
	return &dto.RestrictionResponse{
		Id:          restriction.Id,
		Restriction: restriction.Restriction,
		CreatedAt:   restriction.CreatedAt,
	}
}
