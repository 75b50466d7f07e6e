package controllers_fx

import (
	"go.uber.org/fx"

	"cityguide/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewCityController),
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(controllers.NewRatingController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewHealthController))
