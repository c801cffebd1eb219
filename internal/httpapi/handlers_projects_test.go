package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"unified-backend/internal/auth"
	"unified-backend/internal/projects"

	"github.com/gin-gonic/gin"
)

// brokenProjectRepo fails every write, simulating a storage outage.
type brokenProjectRepo struct {
	*projects.MemoryRepo
}

var errStoreDown = errors.New("connection refused")

func (r brokenProjectRepo) Create(ctx context.Context, p projects.Project) error {
	return errStoreDown
}

func (r brokenProjectRepo) Update(ctx context.Context, p projects.Project) error {
	return errStoreDown
}

func projectRouter(t *testing.T, repo projects.Repository, p auth.Principal) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := Handlers{Projects: projects.NewService(repo)}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), p))
		c.Next()
	})
	r.POST("/api/projects", h.CreateProject)
	r.PUT("/api/projects/:id", h.UpdateProject)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProject_StoreFailureIsServerError(t *testing.T) {
	owner := auth.Principal{UserID: "u1", Username: "alice", Roles: []auth.Role{auth.RoleUser}}
	r := projectRouter(t, brokenProjectRepo{projects.NewMemoryRepo()}, owner)

	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{"name": "P"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for repo failure, got %d (%s)", w.Code, w.Body.String())
	}
	if msg := message(t, w); msg != "an unexpected error occurred" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestUpdateProject_StoreFailureIsServerError(t *testing.T) {
	owner := auth.Principal{UserID: "u1", Username: "alice", Roles: []auth.Role{auth.RoleUser}}

	mem := projects.NewMemoryRepo()
	base := projects.NewService(mem)
	seeded, err := base.Create(context.Background(), owner, projects.ProjectInput{Name: "P"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := projectRouter(t, brokenProjectRepo{mem}, owner)
	w := doJSON(t, r, http.MethodPut, "/api/projects/"+seeded.ID, gin.H{"name": "P2"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for repo failure, got %d (%s)", w.Code, w.Body.String())
	}
	if msg := message(t, w); msg != "an unexpected error occurred" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestCreateProject_BadStatusStaysClientError(t *testing.T) {
	owner := auth.Principal{UserID: "u1", Username: "alice", Roles: []auth.Role{auth.RoleUser}}
	r := projectRouter(t, projects.NewMemoryRepo(), owner)

	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{"name": "P", "status": "paused"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad status, got %d (%s)", w.Code, w.Body.String())
	}
	if msg := message(t, w); msg != "invalid project payload" {
		t.Fatalf("unexpected message %q", msg)
	}
}
