package main

import (
	"database/sql"
	"net/http"
	"time"

	"unified-backend/internal/auth"
	"unified-backend/internal/files"
	"unified-backend/internal/httpapi"
	"unified-backend/internal/plagiarism"
	"unified-backend/internal/rbac"
	"unified-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, db *sql.DB, h httpapi.Handlers, fileH files.Handler, plagH plagiarism.Handler) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		if err := utils.HealthCheck(c.Request.Context(), db, 2*time.Second); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Smoke endpoint for reverse-proxy and CORS checks (public).
	api.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "server is running"})
	})

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signin", h.Signin)
		authGroup.POST("/signup", h.Signup)
	}

	filesGroup := api.Group("/files")
	{
		filesGroup.POST("/upload", fileH.Upload)
		filesGroup.GET("/download/:filename", fileH.Download)
	}

	api.POST("/plagiarism/check", plagH.Check)

	usersGroup := api.Group("/users")
	{
		usersGroup.GET("", h.ListUsers)
		usersGroup.GET("/me", h.Me)
		usersGroup.PUT("/me", h.UpdateMe)
		usersGroup.GET("/:id", h.GetUser)
		usersGroup.DELETE("/:id", rbac.RequireAnyRole(auth.RoleAdmin), h.DeleteUser)
	}

	projectsGroup := api.Group("/projects")
	{
		projectsGroup.GET("", h.ListProjects)
		projectsGroup.POST("", h.CreateProject)
		projectsGroup.GET("/:id", h.GetProject)
		projectsGroup.PUT("/:id", h.UpdateProject)
		projectsGroup.DELETE("/:id", h.DeleteProject)
	}
}
