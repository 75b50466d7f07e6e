// Package authz decides which roles may run the gated catalog mutations.
// The model and policy are embedded casbin files; reads are never gated.
package authz

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"

	"cityguide/pkg/utils"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// Objects and actions named in policy.csv.
const (
	ObjectCategory = "category"
	ObjectCity     = "city"
	ObjectPOI      = "poi"
	ObjectUser     = "user"

	ActionCreate     = "create"
	ActionUpdate     = "update"
	ActionDelete     = "delete"
	ActionUpdateRole = "update_role"
)

type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
	log      *zap.Logger
}

func NewEnforcer(log *zap.Logger) (*Enforcer, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	if err := loadPolicy(enforcer, embeddedPolicy); err != nil {
		return nil, err
	}
	return &Enforcer{enforcer: enforcer, log: log.Named("authz")}, nil
}

func loadPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if parts[0] != "p" || len(parts) != 4 {
			return fmt.Errorf("unsupported policy line %q", line)
		}
		if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
			return fmt.Errorf("failed to add policy %v: %w", parts[1:], err)
		}
	}
	return nil
}

// Allowed reports whether role may perform action on object.
func (e *Enforcer) Allowed(role, object, action string) bool {
	if role == "" {
		return false
	}
	ok, err := e.enforcer.Enforce(role, object, action)
	if err != nil {
		e.log.Error("enforce", zap.Error(err))
		return false
	}
	return ok
}

// Require fails with utils.ErrForbidden unless the actor carried by ctx may
// perform action on object. Anonymous actors match no policy.
func (e *Enforcer) Require(ctx context.Context, object, action string) error {
	actor := ActorFrom(ctx)
	if e.Allowed(string(actor.Role), object, action) {
		return nil
	}

	e.log.Debug("permission denied",
		zap.Uint("user_id", actor.UserID),
		zap.String("role", string(actor.Role)),
		zap.String("object", object),
		zap.String("action", action))
	return utils.ErrForbidden
}
