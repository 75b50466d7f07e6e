package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
	"cityguide/internal/repositories"
	"cityguide/pkg/utils"
)

type POIServiceInterface interface {
	ListPois(ctx context.Context, relations ...string) ([]db_models.POI, error)
	GetPOIById(ctx context.Context, id uint, relations ...string) (*db_models.POI, error)
	CreatePoi(ctx context.Context, req request_models.CreatePoiRequest) (*db_models.POI, error)
	UpdatePoi(ctx context.Context, id uint, req request_models.UpdatePoiRequest) (string, error)
	DeletePoi(ctx context.Context, id uint) (string, error)
}

type PoiService struct {
	poiRepository      repositories.POIRepository
	cityRepository     repositories.CityRepository
	categoryRepository repositories.CategoryRepository
	geocoder           GeocodingService
	log                *zap.Logger
}

func NewPOIService(
	poiRepository repositories.POIRepository,
	cityRepository repositories.CityRepository,
	categoryRepository repositories.CategoryRepository,
	geocoder GeocodingService,
	log *zap.Logger,
) POIServiceInterface {
	return &PoiService{
		poiRepository:      poiRepository,
		cityRepository:     cityRepository,
		categoryRepository: categoryRepository,
		geocoder:           geocoder,
		log:                log.Named("poi"),
	}
}

func (p *PoiService) ListPois(ctx context.Context, relations ...string) ([]db_models.POI, error) {
	pois, err := p.poiRepository.FindAll(ctx, defaultRelations(relations, "City", "Category")...)
	if err != nil {
		return nil, storageError(p.log, "list pois", err, "")
	}
	return pois, nil
}

func (p *PoiService) GetPOIById(ctx context.Context, id uint, relations ...string) (*db_models.POI, error) {
	poi, err := p.poiRepository.FindByID(ctx, id, defaultRelations(relations, "City", "Category", "Ratings", "Ratings.User")...)
	if err != nil {
		return nil, storageError(p.log, "get poi", err, "")
	}
	if poi == nil {
		return nil, utils.NotFound("Poi with ID %d not found", id)
	}
	return poi, nil
}

func (p *PoiService) CreatePoi(ctx context.Context, req request_models.CreatePoiRequest) (*db_models.POI, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	city, err := p.resolveCity(ctx, req.CityID)
	if err != nil {
		return nil, err
	}
	category, err := p.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	poi := &db_models.POI{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     strings.TrimSpace(req.Address),
		PostalCode:  strings.TrimSpace(req.PostalCode),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Images:      db_models.ImageRefs(req.Images),
		CityID:      city.ID,
		CategoryID:  category.ID,
	}
	if poi.Latitude == nil || poi.Longitude == nil {
		poi.Latitude, poi.Longitude = nil, nil
		if coords := p.geocoder.LookupByAddress(ctx, geocodeAddress(poi, city)); coords != nil {
			poi.Latitude, poi.Longitude = &coords.Latitude, &coords.Longitude
		}
	}

	id, err := p.poiRepository.CreatePoi(ctx, poi)
	if err != nil {
		return nil, storageError(p.log, "create poi", err, "Poi already exists.")
	}
	poi.ID = id
	poi.City = city
	poi.Category = category
	poi.Ratings = []db_models.Rating{}

	p.log.Info("poi created",
		zap.Uint("id", poi.ID),
		zap.Uint("city_id", city.ID),
		zap.Uint("category_id", category.ID))
	return poi, nil
}

func (p *PoiService) UpdatePoi(ctx context.Context, id uint, req request_models.UpdatePoiRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	poi, err := p.poiRepository.FindByID(ctx, id)
	if err != nil {
		return "", storageError(p.log, "get poi", err, "")
	}
	if poi == nil {
		return "", utils.NotFound("Poi with ID %d not found", id)
	}

	if req.Name != nil {
		poi.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		poi.Description = *req.Description
	}
	if req.Address != nil {
		poi.Address = strings.TrimSpace(*req.Address)
	}
	if req.PostalCode != nil {
		poi.PostalCode = strings.TrimSpace(*req.PostalCode)
	}
	if req.Latitude != nil {
		poi.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		poi.Longitude = req.Longitude
	}
	if req.Images != nil {
		poi.Images = db_models.ImageRefs(*req.Images)
	}
	if req.CityID != nil && *req.CityID != poi.CityID {
		city, err := p.resolveCity(ctx, *req.CityID)
		if err != nil {
			return "", err
		}
		poi.CityID = city.ID
	}
	if req.CategoryID != nil && *req.CategoryID != poi.CategoryID {
		category, err := p.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return "", err
		}
		poi.CategoryID = category.ID
	}

	if err := p.poiRepository.UpdatePoi(ctx, poi); err != nil {
		return "", storageError(p.log, "update poi", err, "Poi already exists.")
	}
	return "POI updated", nil
}

func (p *PoiService) DeletePoi(ctx context.Context, id uint) (string, error) {
	res, err := p.poiRepository.DeleteCascade(ctx, id)
	if err != nil {
		return "", storageError(p.log, "delete poi", err, "")
	}
	if res.POIs == 0 {
		return "", utils.NotFound("Poi with ID %d not found", id)
	}

	p.log.Info("poi deleted", zap.Uint("id", id), zap.Int64("ratings", res.Ratings))
	return "The POI has been deleted", nil
}

func (p *PoiService) resolveCity(ctx context.Context, id uint) (*db_models.City, error) {
	city, err := p.cityRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(p.log, "get city", err, "")
	}
	if city == nil {
		return nil, utils.NotFound("City with ID %d not found", id)
	}
	return city, nil
}

func (p *PoiService) resolveCategory(ctx context.Context, id uint) (*db_models.Category, error) {
	category, err := p.categoryRepository.FindByID(ctx, id)
	if err != nil {
		return nil, storageError(p.log, "get category", err, "")
	}
	if category == nil {
		return nil, utils.NotFound("Category with ID %d not found", id)
	}
	return category, nil
}

// geocodeAddress builds "address, postal code city", skipping empty parts.
func geocodeAddress(poi *db_models.POI, city *db_models.City) string {
	address := strings.TrimSpace(poi.Address)
	locality := strings.TrimSpace(strings.TrimSpace(poi.PostalCode) + " " + strings.TrimSpace(city.Name))
	switch {
	case address == "":
		return locality
	case locality == "":
		return address
	}
	return address + ", " + locality
}
