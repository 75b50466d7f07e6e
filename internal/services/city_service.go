package services

import (
	"context"

	"go.uber.org/zap"

	"cityguide/internal/models/db_models"
	"cityguide/internal/models/request_models"
	"cityguide/internal/repositories"
	"cityguide/pkg/utils"
)

type CityServiceInterface interface {
	GetAllCities(ctx context.Context, relations ...string) ([]db_models.City, error)
	GetCityById(ctx context.Context, id uint, relations ...string) (*db_models.City, error)
	GetCityByName(ctx context.Context, name string, relations ...string) (*db_models.City, error)
	IsCityNameUnique(ctx context.Context, name string) (bool, error)
	CreateCity(ctx context.Context, req request_models.CreateCityRequest) (*db_models.City, error)
	UpdateCity(ctx context.Context, id uint, req request_models.UpdateCityRequest) (string, error)
	DeleteCity(ctx context.Context, id uint) (string, error)
}

type CityService struct {
	cityRepo repositories.CityRepository
	geocoder GeocodingService
	log      *zap.Logger
}

func NewCityService(cityRepo repositories.CityRepository, geocoder GeocodingService, log *zap.Logger) CityServiceInterface {
	return &CityService{
		cityRepo: cityRepo,
		geocoder: geocoder,
		log:      log.Named("city"),
	}
}

func (s *CityService) GetAllCities(ctx context.Context, relations ...string) ([]db_models.City, error) {
	cities, err := s.cityRepo.FindAll(ctx, defaultRelations(relations, "POIs", "POIs.Category")...)
	if err != nil {
		return nil, storageError(s.log, "list cities", err, "")
	}
	return cities, nil
}

func (s *CityService) GetCityById(ctx context.Context, id uint, relations ...string) (*db_models.City, error) {
	city, err := s.cityRepo.FindByID(ctx, id, defaultRelations(relations, "POIs", "POIs.Category", "Users")...)
	if err != nil {
		return nil, storageError(s.log, "get city", err, "")
	}
	if city == nil {
		return nil, utils.NotFound("City with ID %d not found", id)
	}
	return city, nil
}

func (s *CityService) GetCityByName(ctx context.Context, name string, relations ...string) (*db_models.City, error) {
	normalized := utils.NormalizeName(name)
	city, err := s.cityRepo.FindByName(ctx, normalized, defaultRelations(relations, "POIs", "POIs.Category")...)
	if err != nil {
		return nil, storageError(s.log, "get city by name", err, "")
	}
	if city == nil {
		return nil, utils.NotFound("City %q not found", normalized)
	}
	return city, nil
}

func (s *CityService) IsCityNameUnique(ctx context.Context, name string) (bool, error) {
	taken, err := s.cityRepo.NameExists(ctx, utils.NormalizeName(name))
	if err != nil {
		return false, storageError(s.log, "check city name", err, "")
	}
	return !taken, nil
}

func (s *CityService) CreateCity(ctx context.Context, req request_models.CreateCityRequest) (*db_models.City, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	name := utils.NormalizeName(req.Name)
	if err := s.ensureNameFree(ctx, name); err != nil {
		return nil, err
	}

	city := &db_models.City{
		Name:        name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if city.Latitude == nil || city.Longitude == nil {
		city.Latitude, city.Longitude = nil, nil
		if coords := s.geocoder.LookupByCityName(ctx, name); coords != nil {
			city.Latitude, city.Longitude = &coords.Latitude, &coords.Longitude
		}
	}

	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, storageError(s.log, "create city", err, "City name already exists.")
	}
	city.POIs = []db_models.POI{}
	city.Users = []db_models.User{}

	s.log.Info("city created", zap.Uint("id", city.ID), zap.String("name", city.Name))
	return city, nil
}

func (s *CityService) UpdateCity(ctx context.Context, id uint, req request_models.UpdateCityRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	city, err := s.cityRepo.FindByID(ctx, id)
	if err != nil {
		return "", storageError(s.log, "get city", err, "")
	}
	if city == nil {
		return "", utils.NotFound("City with ID %d not found", id)
	}

	if req.Name != nil {
		name := utils.NormalizeName(*req.Name)
		if name != city.Name {
			if err := s.ensureNameFree(ctx, name); err != nil {
				return "", err
			}
			city.Name = name
		}
	}
	if req.Description != nil {
		city.Description = *req.Description
	}
	if req.Latitude != nil {
		city.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		city.Longitude = req.Longitude
	}

	if err := s.cityRepo.Update(ctx, city); err != nil {
		return "", storageError(s.log, "update city", err, "City name already exists.")
	}
	return "City updated", nil
}

func (s *CityService) DeleteCity(ctx context.Context, id uint) (string, error) {
	res, err := s.cityRepo.DeleteCascade(ctx, id)
	if err != nil {
		return "", storageError(s.log, "delete city", err, "")
	}
	if res.Cities == 0 {
		return "", utils.NotFound("City with ID %d not found", id)
	}

	s.log.Info("city deleted",
		zap.Uint("id", id),
		zap.Int64("pois", res.POIs),
		zap.Int64("users", res.Users),
		zap.Int64("ratings", res.Ratings))
	return "The City has been deleted", nil
}

func (s *CityService) ensureNameFree(ctx context.Context, name string) error {
	taken, err := s.cityRepo.NameExists(ctx, name)
	if err != nil {
		return storageError(s.log, "check city name", err, "")
	}
	if taken {
		return utils.Conflict("City name already exists.")
	}
	return nil
}
