package httpapi

import (
	"errors"
	"net/http"

	"unified-backend/internal/auth"
	"unified-backend/internal/users"
	"unified-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ListUsers returns the public directory. Password hashes are excluded
// by serialization, not by handler discipline.
func (h Handlers) ListUsers(c *gin.Context) {
	all, err := h.Users.List(c.Request.Context())
	if err != nil {
		logger.FromGin(c).Error("user list failed", "err", err)
		Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		return
	}
	OK(all).Write(c)
}

func (h Handlers) GetUser(c *gin.Context) {
	u, err := h.Users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			Fail(http.StatusNotFound, "user not found").Write(c)
			return
		}
		logger.FromGin(c).Error("user lookup failed", "err", err)
		Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		return
	}
	OK(u).Write(c)
}

// Me returns the caller's own record.
func (h Handlers) Me(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		Fail(http.StatusUnauthorized, "unauthenticated").Write(c)
		return
	}
	u, err := h.Users.GetByID(c.Request.Context(), p.UserID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			Fail(http.StatusNotFound, "user not found").Write(c)
			return
		}
		logger.FromGin(c).Error("profile lookup failed", "err", err)
		Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		return
	}
	OK(u).Write(c)
}

type profileUpdateRequest struct {
	Name                 string   `json:"name"`
	Title                string   `json:"title"`
	Course               string   `json:"course"`
	Specialization       string   `json:"specialization"`
	GraduationYear       string   `json:"graduationYear"`
	FrontendTechnologies string   `json:"frontendTechnologies"`
	BackendTechnologies  string   `json:"backendTechnologies"`
	DatabaseTechnologies string   `json:"databaseTechnologies"`
	DevopsTools          string   `json:"devopsTools"`
	ProgrammingLanguages []string `json:"programmingLanguages"`
	Skills               []string `json:"skills"`
}

// UpdateMe replaces the caller's profile fields.
func (h Handlers) UpdateMe(c *gin.Context) {
	p, ok := auth.PrincipalFrom(c.Request.Context())
	if !ok {
		Fail(http.StatusUnauthorized, "unauthenticated").Write(c)
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(http.StatusBadRequest, "invalid profile payload").Write(c)
		return
	}

	u, err := h.Users.UpdateProfile(c.Request.Context(), p.UserID, users.ProfileUpdate{
		Name:                 req.Name,
		Title:                req.Title,
		Course:               req.Course,
		Specialization:       req.Specialization,
		GraduationYear:       req.GraduationYear,
		FrontendTechnologies: req.FrontendTechnologies,
		BackendTechnologies:  req.BackendTechnologies,
		DatabaseTechnologies: req.DatabaseTechnologies,
		DevopsTools:          req.DevopsTools,
		ProgrammingLanguages: req.ProgrammingLanguages,
		Skills:               req.Skills,
	})
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			Fail(http.StatusNotFound, "user not found").Write(c)
			return
		}
		logger.FromGin(c).Error("profile update failed", "err", err)
		Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		return
	}
	OK(u).Write(c)
}

// DeleteUser removes an account. Admin-only; enforced at the route.
func (h Handlers) DeleteUser(c *gin.Context) {
	err := h.Users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			Fail(http.StatusNotFound, "user not found").Write(c)
			return
		}
		logger.FromGin(c).Error("user delete failed", "err", err)
		Fail(http.StatusInternalServerError, "an unexpected error occurred").Write(c)
		return
	}
	Message("user deleted").Write(c)
}
