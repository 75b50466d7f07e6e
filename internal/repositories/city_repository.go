package repositories

import (
	"context"

	"gorm.io/gorm"

	"cityguide/internal/models/db_models"
)

type CityRepository interface {
	Create(ctx context.Context, city *db_models.City) error
	Update(ctx context.Context, city *db_models.City) error
	DeleteCascade(ctx context.Context, id uint) (CascadeResult, error)

	FindByID(ctx context.Context, id uint, relations ...string) (*db_models.City, error)
	FindByName(ctx context.Context, name string, relations ...string) (*db_models.City, error)
	FindAll(ctx context.Context, relations ...string) ([]db_models.City, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Create(ctx context.Context, city *db_models.City) error {
	return insert(ctx, r.db, city)
}

func (r *cityRepository) Update(ctx context.Context, city *db_models.City) error {
	return save(ctx, r.db, city)
}

func (r *cityRepository) DeleteCascade(ctx context.Context, id uint) (CascadeResult, error) {
	var res CascadeResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = DeleteCityCascade(tx, id)
		return err
	})
	return res, err
}

func (r *cityRepository) FindByID(ctx context.Context, id uint, relations ...string) (*db_models.City, error) {
	return findOne[db_models.City](ctx, r.db, relations, "id = ?", id)
}

func (r *cityRepository) FindByName(ctx context.Context, name string, relations ...string) (*db_models.City, error) {
	return findOne[db_models.City](ctx, r.db, relations, "name = ?", name)
}

func (r *cityRepository) FindAll(ctx context.Context, relations ...string) ([]db_models.City, error) {
	return findAll[db_models.City](ctx, r.db, relations)
}

func (r *cityRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return exists[db_models.City](ctx, r.db, "name = ?", name)
}
