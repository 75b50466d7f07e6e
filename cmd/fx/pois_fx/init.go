package pois_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cityguide/internal/repositories"
	"cityguide/internal/services"
)

var Module = fx.Provide(
	providePoiRepo, services.NewPOIService,
)

func providePoiRepo(db *gorm.DB) repositories.POIRepository {
	return repositories.NewPOIRepository(db)
}
