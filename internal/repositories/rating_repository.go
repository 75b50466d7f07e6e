package repositories

import (
	"context"

	"gorm.io/gorm"

	"cityguide/internal/models/db_models"
)

type RatingRepositoryInterface interface {
	CreateRating(ctx context.Context, rating *db_models.Rating) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByID(ctx context.Context, id uint, relations ...string) (*db_models.Rating, error)
	ListRatings(ctx context.Context, relations ...string) ([]db_models.Rating, error)
	ListByPOI(ctx context.Context, poiID uint, relations ...string) ([]db_models.Rating, error)
}

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) CreateRating(ctx context.Context, rating *db_models.Rating) error {
	return insert(ctx, r.db, rating)
}

func (r *RatingRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.Rating{}, id)
	return result.RowsAffected, result.Error
}

func (r *RatingRepository) FindByID(ctx context.Context, id uint, relations ...string) (*db_models.Rating, error) {
	return findOne[db_models.Rating](ctx, r.db, relations, "id = ?", id)
}

func (r *RatingRepository) ListRatings(ctx context.Context, relations ...string) ([]db_models.Rating, error) {
	return findAll[db_models.Rating](ctx, r.db, relations)
}

func (r *RatingRepository) ListByPOI(ctx context.Context, poiID uint, relations ...string) ([]db_models.Rating, error) {
	var ratings []db_models.Rating
	err := withRelations(r.db.WithContext(ctx), relations).
		Where("poi_id = ?", poiID).
		Order("id").
		Find(&ratings).Error
	return ratings, err
}
