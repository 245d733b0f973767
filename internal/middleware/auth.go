package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"comments-api/internal/auth"
	"comments-api/internal/metrics"
)

// IdentityKey is the context key for the authenticated caller.
const IdentityKey = "identity"

// TokenVerifier turns a raw token into a caller identity.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Auth rejects requests without a valid token with 401 before any later
// handler runs. On success the identity is stored under IdentityKey.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := verifier.Verify(auth.ExtractToken(c.Request))
		if err != nil {
			reason, msg := "invalid", auth.ErrInvalidToken.Error()
			if errors.Is(err, auth.ErrMissingToken) {
				reason, msg = "missing", auth.ErrMissingToken.Error()
			}
			metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
			Logger(c).Warn("Authentication failed",
				slog.String("reason", reason),
				slog.String("error", err.Error()))

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// GetIdentity retrieves the authenticated caller from the gin context.
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	if v, exists := c.Get(IdentityKey); exists {
		if id, ok := v.(auth.Identity); ok {
			return id, true
		}
	}
	return auth.Identity{}, false
}
