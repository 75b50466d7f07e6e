package repositories

import (
	"context"

	"gorm.io/gorm"

	"cityguide/internal/models/db_models"
)

type POIRepository interface {
	CreatePoi(ctx context.Context, poi *db_models.POI) (uint, error)
	UpdatePoi(ctx context.Context, poi *db_models.POI) error
	DeleteCascade(ctx context.Context, id uint) (CascadeResult, error)

	FindByID(ctx context.Context, id uint, relations ...string) (*db_models.POI, error)
	FindAll(ctx context.Context, relations ...string) ([]db_models.POI, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) CreatePoi(ctx context.Context, poi *db_models.POI) (uint, error) {
	if err := insert(ctx, r.db, poi); err != nil {
		return 0, err
	}
	return poi.ID, nil
}

func (r *poiRepository) UpdatePoi(ctx context.Context, poi *db_models.POI) error {
	return save(ctx, r.db, poi)
}

func (r *poiRepository) DeleteCascade(ctx context.Context, id uint) (CascadeResult, error) {
	var res CascadeResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = DeletePOICascade(tx, id)
		return err
	})
	return res, err
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *poiRepository) FindByID(ctx context.Context, id uint, relations ...string) (*db_models.POI, error) {
	return findOne[db_models.POI](ctx, r.db, relations, "id = ?", id)
}

func (r *poiRepository) FindAll(ctx context.Context, relations ...string) ([]db_models.POI, error) {
	return findAll[db_models.POI](ctx, r.db, relations)
}

func (r *poiRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return exists[db_models.POI](ctx, r.db, "id = ?", id)
}
