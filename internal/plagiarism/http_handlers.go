package plagiarism

import (
	"errors"
	"io"
	"net/http"

	"unified-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler exposes the plagiarism-check endpoint over a Service.
type Handler struct {
	Service *Service
}

// Check accepts a multipart form with a single "file" part and returns
// the plagiarism report.
func (h Handler) Check(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "file is required"})
		return
	}

	src, err := fh.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "file is unreadable"})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "file is unreadable"})
		return
	}

	report, err := h.Service.Check(c.Request.Context(), content)
	if err != nil {
		if errors.Is(err, ErrEmptyFile) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "file is empty"})
			return
		}
		logger.FromGin(c).Error("plagiarism check failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "plagiarism check failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}
