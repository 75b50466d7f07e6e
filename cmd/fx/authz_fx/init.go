package authz_fx

import (
	"go.uber.org/fx"

	"cityguide/internal/authz"
)

var Module = fx.Provide(authz.NewEnforcer)
