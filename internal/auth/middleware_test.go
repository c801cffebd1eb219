package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"unified-backend/internal/config"

	"github.com/gin-gonic/gin"
)

func testRouter(t *testing.T, m *Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	policy := NewPolicy([]string{"/healthz", "/api/auth"})

	r := gin.New()
	r.Use(Authenticate(m))
	r.Use(policy.Enforce())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/api/users/me", func(c *gin.Context) {
		p, ok := PrincipalFrom(c.Request.Context())
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no principal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": p.Username, "roles": RoleStrings(p.Roles)})
	})
	return r
}

func TestFilter_ProtectedRouteWithoutToken(t *testing.T) {
	m := testManager(t)
	r := testRouter(t, m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestFilter_ProtectedRouteWithValidToken(t *testing.T) {
	m := testManager(t)
	r := testRouter(t, m)

	tok, err := m.Issue(time.Now(), Principal{UserID: "u-1", Username: "alice", Roles: []Role{RoleUser}})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "alice") || !strings.Contains(body, "user") {
		t.Fatalf("handler did not observe principal: %s", body)
	}
}

func TestFilter_ProtectedRouteWithExpiredToken(t *testing.T) {
	m, err := NewManager(config.AuthConfig{JWTSecret: "secret", TokenTTL: time.Second})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	r := testRouter(t, m)

	tok, err := m.Issue(time.Now().Add(-time.Hour), Principal{Username: "alice", Roles: []Role{RoleUser}})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestFilter_PublicRouteWithoutToken(t *testing.T) {
	m := testManager(t)
	r := testRouter(t, m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on public route, got %d", w.Code)
	}
}

func TestFilter_PublicRouteWithGarbageToken(t *testing.T) {
	// Invalid tokens on public routes must not fail the request.
	m := testManager(t)
	r := testRouter(t, m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
