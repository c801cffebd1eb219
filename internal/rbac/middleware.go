package rbac

import (
	"net/http"

	"unified-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// RequireAnyRole allows the request through if the bound principal
// holds at least one of the given roles. It assumes the auth filter
// and access policy already ran; a request that reaches here without
// a principal is rejected outright.
func RequireAnyRole(allowed ...auth.Role) gin.HandlerFunc {
	allowedSet := make(map[auth.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		p, ok := auth.PrincipalFrom(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthenticated"})
			return
		}
		for _, r := range p.Roles {
			if _, ok := allowedSet[r]; ok {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
	}
}
