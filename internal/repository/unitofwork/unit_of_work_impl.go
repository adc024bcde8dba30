package unitofwork

import (
	"context"
	"fmt"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/contract"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProfileRepository() contract.ProfileRepository {
	return implementation.NewProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) IngredientRepository() contract.IngredientRepository {
	return implementation.NewIngredientRepository(u.getDB())
}

func (u *UnitOfWorkImpl) PantryRepository() contract.PantryRepository {
	return implementation.NewPantryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RecipeRepository() contract.RecipeRepository {
	return implementation.NewRecipeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ShoppingRepository() contract.ShoppingRepository {
	return implementation.NewShoppingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NotificationRepository() contract.NotificationRepository {
	return implementation.NewNotificationRepository(u.getDB())
}
