package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medsbuddy/medsbuddy/internal/apperr"
)

const identityKey = "auth_identity"

// RequireAuth is a middleware that verifies the bearer credential and stores
// the decoded identity in the request context for downstream handlers.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}

		ident, err := ParseToken(token, secret)
		if err != nil {
			apperr.Respond(c, apperr.ErrUnauthorized)
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// IdentityFromContext returns the identity set by RequireAuth.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	return ident, ok
}
