package config_fx

import (
	"go.uber.org/fx"

	"cityguide/internal/config"
)

// Module provides the loaded configuration and each section on its own so
// constructors depend only on what they read.
var Module = fx.Provide(
	config.Load,
	func(c *config.Config) config.ServerConfig { return c.Server },
	func(c *config.Config) config.DatabaseConfig { return c.Database },
	func(c *config.Config) config.AuthConfig { return c.Auth },
	func(c *config.Config) config.AdminConfig { return c.Admin },
	func(c *config.Config) config.GeocodingConfig { return c.Geocoding },
	func(c *config.Config) config.LogConfig { return c.Log },
)
