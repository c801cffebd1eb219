package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Policy decides which paths may be served without a bound principal.
// The public set is a static, configured allow-list; nothing is
// inferred from route registration.
type Policy struct {
	publicPrefixes []string
}

func NewPolicy(publicPrefixes []string) *Policy {
	return &Policy{publicPrefixes: append([]string(nil), publicPrefixes...)}
}

// IsPublic reports whether the path matches a configured public prefix.
func (p *Policy) IsPublic(path string) bool {
	for _, prefix := range p.publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Enforce gates every non-public route on a bound principal.
// Runs after Authenticate in the chain; it is the only place that
// turns a missing/failed authentication into a 401.
func (p *Policy) Enforce() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p.IsPublic(c.Request.URL.Path) {
			c.Next()
			return
		}
		if _, ok := PrincipalFrom(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthenticated"})
			return
		}
		c.Next()
	}
}
