package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cityguide/internal/models/db_models"
	"cityguide/pkg/utils"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	e, err := NewEnforcer(zap.NewNop())
	require.NoError(t, err)
	return e
}

func TestEnforcer_Allowed(t *testing.T) {
	e := newTestEnforcer(t)

	tests := []struct {
		role   db_models.Role
		object string
		want   bool
	}{
		{db_models.RoleAdmin, ObjectCategory, true},
		{db_models.RoleAdmin, ObjectCity, true},
		{db_models.RoleAdmin, ObjectPOI, true},
		{db_models.RoleCityAdmin, ObjectPOI, true},
		{db_models.RoleCityAdmin, ObjectCategory, false},
		{db_models.RoleCityAdmin, ObjectCity, false},
		{db_models.RoleSuperUser, ObjectCategory, false},
		{db_models.RoleUser, ObjectPOI, false},
		{"", ObjectCategory, false},
	}

	for _, tt := range tests {
		for _, action := range []string{ActionCreate, ActionUpdate, ActionDelete} {
			got := e.Allowed(string(tt.role), tt.object, action)
			assert.Equal(t, tt.want, got, "role=%q object=%s action=%s", tt.role, tt.object, action)
		}
	}
}

func TestEnforcer_RequireUsesActorFromContext(t *testing.T) {
	e := newTestEnforcer(t)

	err := e.Require(context.Background(), ObjectCategory, ActionCreate)
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	ctx := WithActor(context.Background(), Actor{UserID: 2, Role: db_models.RoleUser})
	err = e.Require(ctx, ObjectCategory, ActionCreate)
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	ctx = WithActor(context.Background(), Actor{UserID: 1, Role: db_models.RoleAdmin})
	assert.NoError(t, e.Require(ctx, ObjectCategory, ActionCreate))
}

func TestActorFrom_DefaultsToAnonymous(t *testing.T) {
	actor := ActorFrom(context.Background())
	assert.False(t, actor.Authenticated())
	assert.Empty(t, actor.Role)
}
