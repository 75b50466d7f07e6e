package controllers

import (
	"github.com/gin-gonic/gin"

	"cityguide/internal/models/request_models"
	"cityguide/internal/models/response_models"
	"cityguide/internal/services"
	"cityguide/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{
		cityService: cityService,
	}
}

// ListCities godoc
// @Summary List cities
// @Description Fetch every city with its POIs
// @Tags Cities
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/cities [get]
func (cc *CityController) ListCities(c *gin.Context) {
	cities, err := cc.cityService.GetAllCities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewCities(cities), "Fetched cities successfully")
}

func (cc *CityController) GetCity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	city, err := cc.cityService.GetCityById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewCity(city), "City fetched successfully")
}

// GetCityByName godoc
// @Summary Get a city by name
// @Description Name lookup ignores case and surrounding spaces
// @Tags Cities
// @Produce json
// @Param name path string true "City name"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/cities/by-name/{name} [get]
func (cc *CityController) GetCityByName(c *gin.Context) {
	city, err := cc.cityService.GetCityByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewCity(city), "City fetched successfully")
}

func (cc *CityController) IsNameUnique(c *gin.Context) {
	unique, err := cc.cityService.IsCityNameUnique(c.Request.Context(), c.Query("name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"unique": unique}, "")
}

// CreateCity godoc
// @Summary Create a city
// @Description Coordinates are geocoded from the name when not supplied
// @Tags Cities
// @Accept json
// @Produce json
// @Param request body request_models.CreateCityRequest true "City payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/cities [post]
func (cc *CityController) CreateCity(c *gin.Context) {
	var req request_models.CreateCityRequest
	if !bindJSON(c, &req) {
		return
	}

	city, err := cc.cityService.CreateCity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewCity(city), "City created")
}

func (cc *CityController) UpdateCity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req request_models.UpdateCityRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := cc.cityService.UpdateCity(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, msg)
}

func (cc *CityController) DeleteCity(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	msg, err := cc.cityService.DeleteCity(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, msg)
}
