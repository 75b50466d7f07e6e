package main

import (
	"go.uber.org/fx"

	"cityguide/cmd/fx/authz_fx"
	"cityguide/cmd/fx/category_fx"
	"cityguide/cmd/fx/city_fx"
	"cityguide/cmd/fx/config_fx"
	"cityguide/cmd/fx/controllers_fx"
	"cityguide/cmd/fx/db_fx"
	"cityguide/cmd/fx/geocoding_fx"
	"cityguide/cmd/fx/graph_fx"
	"cityguide/cmd/fx/logger_fx"
	"cityguide/cmd/fx/memcache_fx"
	"cityguide/cmd/fx/pois_fx"
	"cityguide/cmd/fx/rating_fx"
	"cityguide/cmd/fx/user_fx"
)

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		geocoding_fx.Module,
		authz_fx.Module,
		category_fx.Module,
		city_fx.Module,
		pois_fx.Module,
		user_fx.Module,
		rating_fx.Module,
		graph_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideMetricsRegistry),
		fx.Provide(ProvideRateLimiter),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}
