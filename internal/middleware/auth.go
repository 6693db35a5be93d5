package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avaluo/landval/internal/models"
)

// IdentityKey is the gin context key holding the authenticated *models.Identity.
const IdentityKey = "identity"

// TokenResolver maps a bearer token to the identity that owns it.
// It returns nil, nil when the token is unknown.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*models.Identity, error)
}

// Auth requires a valid "Authorization: Bearer <token>" header. On success the
// identity is stored in the context and the request logger is tagged with it.
func Auth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
			return
		}

		identity, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			if log := GetLogger(c); log != nil {
				log.Error("Failed to resolve session token", err, map[string]interface{}{
					"path": c.Request.URL.Path,
				})
			}
			abortWithError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Failed to verify session")
			return
		}
		if identity == nil {
			abortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid session")
			return
		}
		if !identity.ExpiresAt.IsZero() && identity.ExpiresAt.Before(time.Now()) {
			abortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Session expired")
			return
		}

		c.Set(IdentityKey, identity)
		if log := GetLogger(c); log != nil {
			c.Set("logger", log.WithUser(identity.UserID, identity.Role))
		}

		c.Next()
	}
}

// GetIdentity returns the authenticated identity, or nil outside Auth.
func GetIdentity(c *gin.Context) *models.Identity {
	if value, exists := c.Get(IdentityKey); exists {
		if identity, ok := value.(*models.Identity); ok {
			return identity
		}
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
