package controllers

import (
	"github.com/gin-gonic/gin"

	"cityguide/internal/models/request_models"
	"cityguide/internal/models/response_models"
	"cityguide/internal/services"
	"cityguide/pkg/utils"
)

type POIsController struct {
	poiService    services.POIServiceInterface
	ratingService services.RatingServiceInterface
}

func NewPOIsController(poiService services.POIServiceInterface, ratingService services.RatingServiceInterface) *POIsController {
	return &POIsController{
		poiService:    poiService,
		ratingService: ratingService,
	}
}

// ListPois godoc
// @Summary List POIs
// @Tags POIs
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/pois [get]
func (p *POIsController) ListPois(c *gin.Context) {
	pois, err := p.poiService.ListPois(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPOIs(pois), "POIs fetched successfully")
}

// GetPoiById godoc
// @Summary Get a POI
// @Description Fetch one POI with its city, category and ratings
// @Tags POIs
// @Produce json
// @Param id path int true "POI ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/pois/{id} [get]
func (p *POIsController) GetPoiById(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	poi, err := p.poiService.GetPOIById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewPOI(poi), "POI fetched successfully")
}

func (p *POIsController) GetPoiRatings(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ratings, err := p.ratingService.GetRatingsByPoi(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewRatings(ratings), "Ratings fetched successfully")
}

func (p *POIsController) CreatePoi(c *gin.Context) {
	var req request_models.CreatePoiRequest
	if !bindJSON(c, &req) {
		return
	}

	poi, err := p.poiService.CreatePoi(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewPOI(poi), "POI created")
}

func (p *POIsController) UpdatePoi(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdatePoiRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := p.poiService.UpdatePoi(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, msg)
}

func (p *POIsController) DeletePoi(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	msg, err := p.poiService.DeletePoi(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, msg)
}
