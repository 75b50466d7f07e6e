package authz

import (
	"context"

	"cityguide/internal/models/db_models"
)

// Actor is the caller derived from the request token. The zero value is the
// anonymous actor.
type Actor struct {
	UserID uint
	Email  string
	Role   db_models.Role
}

func (a Actor) Authenticated() bool {
	return a.UserID != 0
}

type actorKey struct{}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFrom(ctx context.Context) Actor {
	actor, _ := ctx.Value(actorKey{}).(Actor)
	return actor
}
