package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"cityguide/internal/authz"
	"cityguide/internal/services"
	"cityguide/pkg/utils"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*utils.Claims, error)
}

// SessionChecker reports the stored state of the user behind a token.
type SessionChecker interface {
	CheckSession(ctx context.Context, userID uint) (services.Session, error)
}

type Authorizer interface {
	Require(ctx context.Context, object, action string) error
}

// JWTAuthMiddleware resolves the caller from an optional bearer token. A
// missing or invalid token leaves the request anonymous; gated routes reject
// it later with 403. The role comes from storage, not from the token claim,
// so a deleted or demoted user loses access before the token expires.
func JWTAuthMiddleware(tokens TokenValidator, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.Next()
			return
		}

		session, err := sessions.CheckSession(c.Request.Context(), claims.UserID)
		if err != nil || !session.IsLoggedIn {
			c.Next()
			return
		}

		actor := authz.Actor{
			UserID: claims.UserID,
			Email:  session.Email,
			Role:   session.Role,
		}
		c.Set("user_id", actor.UserID)
		c.Set("Role", string(actor.Role))
		c.Request = c.Request.WithContext(authz.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}

// RequirePermission guards a REST route with the same policy the GraphQL
// mutations use.
func RequirePermission(authorizer Authorizer, object, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authorizer.Require(c.Request.Context(), object, action); err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
