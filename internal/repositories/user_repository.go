package repositories

import (
	"context"

	"gorm.io/gorm"

	"cityguide/internal/models/db_models"
)

type UserRepository interface {
	InsertTx(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	DeleteCascade(ctx context.Context, id uint) (CascadeResult, error)

	FindById(ctx context.Context, id uint, relations ...string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string, relations ...string) (*db_models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (u *userRepository) InsertTx(ctx context.Context, user *db_models.User) error {
	return insert(ctx, u.db, user)
}

func (u *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return save(ctx, u.db, user)
}

func (u *userRepository) DeleteCascade(ctx context.Context, id uint) (CascadeResult, error) {
	var res CascadeResult
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = DeleteUserCascade(tx, id)
		return err
	})
	return res, err
}

func (u *userRepository) FindById(ctx context.Context, id uint, relations ...string) (*db_models.User, error) {
	return findOne[db_models.User](ctx, u.db, relations, "id = ?", id)
}

func (u *userRepository) FindByEmail(ctx context.Context, email string, relations ...string) (*db_models.User, error) {
	return findOne[db_models.User](ctx, u.db, relations, "email = ?", email)
}

func (u *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return exists[db_models.User](ctx, u.db, "email = ?", email)
}
