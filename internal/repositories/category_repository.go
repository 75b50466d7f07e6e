package repositories

import (
	"context"

	"gorm.io/gorm"

	"cityguide/internal/models/db_models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *db_models.Category) error
	Update(ctx context.Context, category *db_models.Category) error
	DeleteCascade(ctx context.Context, id uint) (CascadeResult, error)

	FindByID(ctx context.Context, id uint, relations ...string) (*db_models.Category, error)
	FindByName(ctx context.Context, name string) (*db_models.Category, error)
	FindAll(ctx context.Context, relations ...string) ([]db_models.Category, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	return insert(ctx, r.db, category)
}

func (r *categoryRepository) Update(ctx context.Context, category *db_models.Category) error {
	return save(ctx, r.db, category)
}

func (r *categoryRepository) DeleteCascade(ctx context.Context, id uint) (CascadeResult, error) {
	var res CascadeResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = DeleteCategoryCascade(tx, id)
		return err
	})
	return res, err
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint, relations ...string) (*db_models.Category, error) {
	return findOne[db_models.Category](ctx, r.db, relations, "id = ?", id)
}

// FindByName expects the normalized name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	return findOne[db_models.Category](ctx, r.db, nil, "name = ?", name)
}

func (r *categoryRepository) FindAll(ctx context.Context, relations ...string) ([]db_models.Category, error) {
	return findAll[db_models.Category](ctx, r.db, relations)
}

func (r *categoryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return exists[db_models.Category](ctx, r.db, "name = ?", name)
}
