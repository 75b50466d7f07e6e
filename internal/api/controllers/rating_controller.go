package controllers

import (
	"github.com/gin-gonic/gin"

	"cityguide/internal/models/request_models"
	"cityguide/internal/models/response_models"
	"cityguide/internal/services"
	"cityguide/pkg/utils"
)

type RatingController struct {
	ratingService services.RatingServiceInterface
}

func NewRatingController(ratingService services.RatingServiceInterface) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

func (rc *RatingController) ListRatings(c *gin.Context) {
	ratings, err := rc.ratingService.GetAllRatings(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewRatings(ratings), "Ratings fetched successfully")
}

// CreateRating godoc
// @Summary Rate a POI
// @Tags Ratings
// @Accept json
// @Produce json
// @Param request body request_models.CreateRatingRequest true "Rating payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/ratings [post]
func (rc *RatingController) CreateRating(c *gin.Context) {
	var req request_models.CreateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	rating, err := rc.ratingService.CreateRating(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewRating(rating), "Rating created")
}

func (rc *RatingController) DeleteRating(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	msg, err := rc.ratingService.DeleteRating(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, msg)
}
