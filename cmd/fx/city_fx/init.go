package city_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cityguide/internal/repositories"
	"cityguide/internal/services"
)

var Module = fx.Provide(
	provideCityRepo, services.NewCityService,
)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}
