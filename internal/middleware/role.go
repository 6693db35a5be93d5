package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole admits callers whose identity satisfies role. Must run after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			abortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		if !identity.HasRole(role) {
			abortWithError(c, http.StatusForbidden, "FORBIDDEN", "Role "+identity.Role+" may not perform this action")
			return
		}
		c.Next()
	}
}
