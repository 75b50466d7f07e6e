package graph

import (
	"go.uber.org/zap"

	"cityguide/internal/authz"
	"cityguide/internal/services"
)

// Resolver is the root of both Query and Mutation.
type Resolver struct {
	categories services.CategoryServiceInterface
	cities     services.CityServiceInterface
	pois       services.POIServiceInterface
	users      services.UserServiceInterface
	ratings    services.RatingServiceInterface
	enforcer   *authz.Enforcer
	log        *zap.Logger
}

func NewResolver(
	categories services.CategoryServiceInterface,
	cities services.CityServiceInterface,
	pois services.POIServiceInterface,
	users services.UserServiceInterface,
	ratings services.RatingServiceInterface,
	enforcer *authz.Enforcer,
	log *zap.Logger,
) *Resolver {
	return &Resolver{
		categories: categories,
		cities:     cities,
		pois:       pois,
		users:      users,
		ratings:    ratings,
		enforcer:   enforcer,
		log:        log.Named("graphql"),
	}
}
