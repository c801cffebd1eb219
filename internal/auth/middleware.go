package auth

import (
	"strings"
	"time"

	"unified-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

// Authenticate extracts and validates a bearer token, binding the
// resulting principal to the request context. It never aborts: a
// missing or invalid token simply leaves the request without a
// principal, and Policy.Enforce decides whether the route needs one.
// This split is what lets public and protected routes share one chain.
func Authenticate(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(authorizationHeader))
		if raw == "" || !strings.HasPrefix(raw, bearerPrefix) {
			c.Next()
			return
		}
		tok := strings.TrimPrefix(raw, bearerPrefix)

		p, err := m.Validate(tok, time.Now())
		if err != nil {
			logger.FromGin(c).Debug("token rejected", "err", err)
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}
