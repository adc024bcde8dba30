package contract

import (
	"context"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)

	AddAllergy(ctx context.Context, allergy *entity.UserAllergy) error
	RemoveAllergy(ctx context.Context, id uuid.UUID) error
	FindAllergies(ctx context.Context, specs ...specification.Specification) ([]*entity.UserAllergy, error)

	AddRestriction(ctx context.Context, restriction *entity.CustomDietaryRestriction) error
	RemoveRestriction(ctx context.Context, id uuid.UUID) error
	FindRestrictions(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomDietaryRestriction, error)
}
