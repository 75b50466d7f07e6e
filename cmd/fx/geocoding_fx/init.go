package geocoding_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cityguide/internal/config"
	"cityguide/internal/services"
	mem "cityguide/pkg/memcache"
)

var Module = fx.Provide(provideGeocoder)

func provideGeocoder(cfg config.GeocodingConfig, cache *mem.TTLCache[string, services.Coordinates], log *zap.Logger) services.GeocodingService {
	if cfg.GoogleAPIKey == "" && cfg.MapboxToken == "" {
		log.Info("geocoding disabled: no provider credentials configured")
		return services.NoopGeocoder{}
	}
	return services.NewHTTPGeocoder(cfg, cache, log)
}
