package httpapi

import (
	"errors"
	"net/http"

	"unified-backend/internal/auth"
	"unified-backend/internal/projects"
	"unified-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	Tags         []string `json:"tags"`
	Technologies []string `json:"technologies"`
	TechStack    []string `json:"techStack"`
	Languages    []string `json:"languages"`
	GroupMembers []string `json:"groupMembers"`
	Duration     string   `json:"duration"`
	Type         string   `json:"type"`
	Category     string   `json:"category"`
	DocumentURL  string   `json:"documentUrl"`
	DocumentName string   `json:"documentName"`
}

func (r projectRequest) toInput() projects.ProjectInput {
	return projects.ProjectInput{
		Name:         r.Name,
		Description:  r.Description,
		Status:       r.Status,
		Tags:         r.Tags,
		Technologies: r.Technologies,
		TechStack:    r.TechStack,
		Languages:    r.Languages,
		GroupMembers: r.GroupMembers,
		Duration:     r.Duration,
		Type:         r.Type,
		Category:     r.Category,
		DocumentURL:  r.DocumentURL,
		DocumentName: r.DocumentName,
	}
}

// ListProjects returns all projects, or the caller's own with ?owner=me.
func (h Handlers) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		out []projects.Project
		err error
	)
	if c.Query("owner") == "me" {
		p, ok := auth.PrincipalFrom(ctx)
		if !ok {
			Fail(http.StatusUnauthorized, "unauthenticated").Write(c)
			return
		}
		out, err = h.Projects.ListByOwner(ctx, p.UserID)
	} else {
		out, err = h.Projects.List(ctx)
	}
	if err != nil {
		logger.FromGin(c).Error("project list failed", "err", err)
		Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		return
	}
	OK(out).Write(c)
}

func (h Handlers) GetProject(c *gin.Context) {
	p, err := h.Projects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, projects.ErrNotFound) {
			Fail(http.StatusNotFound, "project not found").Write(c)
			return
		}
		logger.FromGin(c).Error("project lookup failed", "err", err)
		Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		return
	}
	OK(p).Write(c)
}

func (h Handlers) CreateProject(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		Fail(http.StatusUnauthorized, "unauthenticated").Write(c)
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(http.StatusBadRequest, "project name is required").Write(c)
		return
	}

	p, err := h.Projects.Create(c.Request.Context(), principal, req.toInput())
	if err != nil {
		if errors.Is(err, projects.ErrInvalidInput) {
			Fail(http.StatusBadRequest, "invalid project payload").Write(c)
			return
		}
		logger.FromGin(c).Error("project create failed", "err", err)
		Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		return
	}
	OK(p).Write(c)
}

func (h Handlers) UpdateProject(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		Fail(http.StatusUnauthorized, "unauthenticated").Write(c)
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(http.StatusBadRequest, "project name is required").Write(c)
		return
	}

	p, err := h.Projects.Update(c.Request.Context(), principal, c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, projects.ErrNotFound):
			Fail(http.StatusNotFound, "project not found").Write(c)
		case errors.Is(err, projects.ErrForbidden):
			Fail(http.StatusForbidden, "not the project owner").Write(c)
		case errors.Is(err, projects.ErrInvalidInput):
			Fail(http.StatusBadRequest, "invalid project payload").Write(c)
		default:
			logger.FromGin(c).Error("project update failed", "err", err)
			Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		}
		return
	}
	OK(p).Write(c)
}

func (h Handlers) DeleteProject(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		Fail(http.StatusUnauthorized, "unauthenticated").Write(c)
		return
	}

	err := h.Projects.Delete(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, projects.ErrNotFound):
			Fail(http.StatusNotFound, "project not found").Write(c)
		case errors.Is(err, projects.ErrForbidden):
			Fail(http.StatusForbidden, "not the project owner").Write(c)
		default:
			logger.FromGin(c).Error("project delete failed", "err", err)
			Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		}
		return
	}
	Message("project deleted").Write(c)
}
