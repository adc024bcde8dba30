package unitofwork

import (
	"context"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	IngredientRepository() contract.IngredientRepository
	PantryRepository() contract.PantryRepository
	RecipeRepository() contract.RecipeRepository
	ShoppingRepository() contract.ShoppingRepository
	NotificationRepository() contract.NotificationRepository
}
