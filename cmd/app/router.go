package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cityguide/internal/api/controllers"
	"cityguide/internal/authz"
	"cityguide/internal/config"
	"cityguide/internal/services"
	"cityguide/pkg/middleware"
	"cityguide/pkg/utils"
)

type Controllers struct {
	Category *controllers.CategoryController
	City     *controllers.CityController
	POIs     *controllers.POIsController
	Ratings  *controllers.RatingController
	Users    *controllers.UserController
	Health   *controllers.HealthController
}

func ProvideMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

const (
	limiterSweepInterval = 5 * time.Minute
	limiterMaxIdle       = 15 * time.Minute
)

// ProvideRateLimiter builds the per-client limiter and drops idle buckets in
// the background while the app runs.
func ProvideRateLimiter(lc fx.Lifecycle, cfg config.ServerConfig, log *zap.Logger) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, log.Named("ratelimit"))
	if cfg.RateLimit <= 0 {
		return limiter
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(limiterSweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if n := limiter.Cleanup(limiterMaxIdle); n > 0 {
							log.Debug("dropped idle rate limiters", zap.Int("count", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}

func ProvideRouter(
	cfg config.ServerConfig,
	log *zap.Logger,
	tokens *utils.TokenIssuer,
	users services.UserServiceInterface,
	limiter *middleware.RateLimiter,
	enforcer *authz.Enforcer,
	graphqlHandler *relay.Handler,
	registry *prometheus.Registry,
	categoryController *controllers.CategoryController,
	cityController *controllers.CityController,
	poisController *controllers.POIsController,
	ratingController *controllers.RatingController,
	userController *controllers.UserController,
	healthController *controllers.HealthController,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.NewHTTPMetrics(registry).Middleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.JWTAuthMiddleware(tokens, users))
	r.Use(limiter.Middleware())

	RegisterRoutes(r, enforcer, graphqlHandler, registry, Controllers{
		Category: categoryController,
		City:     cityController,
		POIs:     poisController,
		Ratings:  ratingController,
		Users:    userController,
		Health:   healthController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine,
	enforcer middleware.Authorizer,
	graphqlHandler *relay.Handler,
	registry *prometheus.Registry,
	c Controllers) {

	r.GET("/healthz", c.Health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	r.POST("/graphql", gin.WrapH(graphqlHandler))

	api := r.Group("/api")

	categories := api.Group("/categories")
	categories.GET("", c.Category.ListCategories)
	categories.GET("/unique", c.Category.IsNameUnique)
	categories.GET("/:id", c.Category.GetCategory)
	categories.POST("", middleware.RequirePermission(enforcer, authz.ObjectCategory, authz.ActionCreate), c.Category.CreateCategory)
	categories.PUT("/:id", middleware.RequirePermission(enforcer, authz.ObjectCategory, authz.ActionUpdate), c.Category.UpdateCategory)
	categories.DELETE("/:id", middleware.RequirePermission(enforcer, authz.ObjectCategory, authz.ActionDelete), c.Category.DeleteCategory)

	cities := api.Group("/cities")
	cities.GET("", c.City.ListCities)
	cities.GET("/unique", c.City.IsNameUnique)
	cities.GET("/by-name/:name", c.City.GetCityByName)
	cities.GET("/:id", c.City.GetCity)
	cities.POST("", middleware.RequirePermission(enforcer, authz.ObjectCity, authz.ActionCreate), c.City.CreateCity)
	cities.PUT("/:id", middleware.RequirePermission(enforcer, authz.ObjectCity, authz.ActionUpdate), c.City.UpdateCity)
	cities.DELETE("/:id", middleware.RequirePermission(enforcer, authz.ObjectCity, authz.ActionDelete), c.City.DeleteCity)

	pois := api.Group("/pois")
	pois.GET("", c.POIs.ListPois)
	pois.GET("/:id", c.POIs.GetPoiById)
	pois.GET("/:id/ratings", c.POIs.GetPoiRatings)
	pois.POST("", middleware.RequirePermission(enforcer, authz.ObjectPOI, authz.ActionCreate), c.POIs.CreatePoi)
	pois.PUT("/:id", middleware.RequirePermission(enforcer, authz.ObjectPOI, authz.ActionUpdate), c.POIs.UpdatePoi)
	pois.DELETE("/:id", middleware.RequirePermission(enforcer, authz.ObjectPOI, authz.ActionDelete), c.POIs.DeletePoi)

	ratings := api.Group("/ratings")
	ratings.GET("", c.Ratings.ListRatings)
	ratings.POST("", c.Ratings.CreateRating)
	ratings.DELETE("/:id", c.Ratings.DeleteRating)

	users := api.Group("/users")
	users.POST("/register", c.Users.Register)
	users.POST("/login", c.Users.Login)
	users.GET("/session", c.Users.CheckSession)
	users.GET("/unique", c.Users.IsEmailUnique)
	users.GET("/by-email/:email", c.Users.GetUserByEmail)
	users.GET("/:id", c.Users.GetUser)
	users.PUT("/:id", c.Users.UpdateUser)
	users.DELETE("/:id", c.Users.DeleteUser)
}
