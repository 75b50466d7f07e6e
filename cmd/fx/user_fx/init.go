package user_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cityguide/internal/authz"
	"cityguide/internal/config"
	"cityguide/internal/repositories"
	"cityguide/internal/services"
	"cityguide/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideUserRepo, provideTokenIssuer, provideUserService),
	fx.Invoke(seedAdmin),
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideTokenIssuer(cfg config.AuthConfig) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
}

func provideUserService(
	userRepo repositories.UserRepository,
	cityRepo repositories.CityRepository,
	tokens *utils.TokenIssuer,
	enforcer *authz.Enforcer,
	cfg config.AuthConfig,
	log *zap.Logger,
) services.UserServiceInterface {
	return services.NewUserService(userRepo, cityRepo, tokens, enforcer, cfg.BcryptCost, log)
}

func seedAdmin(lc fx.Lifecycle, cfg config.AdminConfig, users services.UserServiceInterface, log *zap.Logger) {
	if cfg.Email == "" || cfg.Password == "" {
		if cfg.Email != "" || cfg.Password != "" {
			log.Warn("admin.email and admin.password must both be set to seed an admin")
		}
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return users.EnsureAdmin(ctx, cfg.Email, cfg.Password)
		},
	})
}
