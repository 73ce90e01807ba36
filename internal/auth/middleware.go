package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Verifier resolves a bearer token to a user. *Client satisfies it;
// tests supply fakes.
type Verifier interface {
	Me(ctx context.Context, token string) (*User, error)
}

const userContextKey = "auth.user"

// RequireRole authenticates the request's bearer token through the
// verifier and rejects users whose role is not in the allowed set. An
// empty set means any authenticated user.
func RequireRole(v Verifier, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := v.Me(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if user.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
				return
			}
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireRole, or
// nil on unauthenticated routes.
func CurrentUser(c *gin.Context) *User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*User); ok {
			return user
		}
	}
	return nil
}
