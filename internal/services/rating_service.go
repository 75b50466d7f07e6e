package services

import (
	"context"

	"go.uber.org/zap"

	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
	"cityguide/internal/repositories"
	"cityguide/pkg/utils"
)

type RatingServiceInterface interface {
	GetAllRatings(ctx context.Context) ([]db_models.Rating, error)
	GetRatingsByPoi(ctx context.Context, poiID uint) ([]db_models.Rating, error)
	CreateRating(ctx context.Context, req request_models.CreateRatingRequest) (*db_models.Rating, error)
	DeleteRating(ctx context.Context, id uint) (string, error)
}

type RatingService struct {
	ratingRepo repositories.RatingRepositoryInterface
	poiRepo    repositories.POIRepository
	userRepo   repositories.UserRepository
	log        *zap.Logger
}

func NewRatingService(
	ratingRepo repositories.RatingRepositoryInterface,
	poiRepo repositories.POIRepository,
	userRepo repositories.UserRepository,
	log *zap.Logger,
) RatingServiceInterface {
	return &RatingService{
		ratingRepo: ratingRepo,
		poiRepo:    poiRepo,
		userRepo:   userRepo,
		log:        log.Named("rating"),
	}
}

func (r *RatingService) GetAllRatings(ctx context.Context) ([]db_models.Rating, error) {
	ratings, err := r.ratingRepo.ListRatings(ctx, "POI", "User")
	if err != nil {
		return nil, storageError(r.log, "list ratings", err, "")
	}
	return ratings, nil
}

func (r *RatingService) GetRatingsByPoi(ctx context.Context, poiID uint) ([]db_models.Rating, error) {
	found, err := r.poiRepo.Exists(ctx, poiID)
	if err != nil {
		return nil, storageError(r.log, "check poi", err, "")
	}
	if !found {
		return nil, utils.NotFound("Poi with ID %d not found", poiID)
	}

	ratings, err := r.ratingRepo.ListByPOI(ctx, poiID, "POI", "User")
	if err != nil {
		return nil, storageError(r.log, "list ratings by poi", err, "")
	}
	return ratings, nil
}

func (r *RatingService) CreateRating(ctx context.Context, req request_models.CreateRatingRequest) (*db_models.Rating, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	poi, err := r.poiRepo.FindByID(ctx, req.POIID)
	if err != nil {
		return nil, storageError(r.log, "get poi", err, "")
	}
	if poi == nil {
		return nil, utils.NotFound("Poi with ID %d not found", req.POIID)
	}
	user, err := r.userRepo.FindById(ctx, req.UserID)
	if err != nil {
		return nil, storageError(r.log, "get user", err, "")
	}
	if user == nil {
		return nil, utils.NotFound("User with ID %d not found", req.UserID)
	}

	rating := &db_models.Rating{
		Score:   req.Score,
		Comment: req.Comment,
		POIID:   poi.ID,
		UserID:  user.ID,
	}
	if err := r.ratingRepo.CreateRating(ctx, rating); err != nil {
		return nil, storageError(r.log, "create rating", err, "")
	}
	rating.POI = poi
	rating.User = user

	r.log.Info("rating created",
		zap.Uint("id", rating.ID),
		zap.Uint("poi_id", poi.ID),
		zap.Uint("user_id", user.ID))
	return rating, nil
}

func (r *RatingService) DeleteRating(ctx context.Context, id uint) (string, error) {
	affected, err := r.ratingRepo.Delete(ctx, id)
	if err != nil {
		return "", storageError(r.log, "delete rating", err, "")
	}
	if affected == 0 {
		return "", utils.NotFound("Rating with ID %d not found", id)
	}
	return "Your rating has been deleted", nil
}
