package rating_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cityguide/internal/repositories"
	"cityguide/internal/services"
)

var Module = fx.Provide(
	provideRatingRepo, services.NewRatingService,
)

func provideRatingRepo(db *gorm.DB) repositories.RatingRepositoryInterface {
	return repositories.NewRatingRepository(db)
}
