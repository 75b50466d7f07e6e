package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"

	"cityguide/internal/services"
	mem "cityguide/pkg/memcache"
)

const sweepInterval = 10 * time.Minute

var Module = fx.Provide(provideGeocodeCache)

// provideGeocodeCache returns the geocoding result cache and sweeps it in the
// background while the app runs.
func provideGeocodeCache(lc fx.Lifecycle) *mem.TTLCache[string, services.Coordinates] {
	cache := mem.NewTTLCache[string, services.Coordinates]()

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go cache.RunSweeper(ctx, sweepInterval)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return cache
}
