package files

import (
	"net/http"

	"unified-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler exposes upload/download endpoints over a Storage.
type Handler struct {
	Store *Storage
}

// Upload accepts a multipart form with a single "file" part.
func (h Handler) Upload(c *gin.Context) {
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

	stored, err := h.Store.Save(fh.Filename, fh.Header.Get("Content-Type"), src)
	if err != nil {
		logger.FromGin(c).Error("file save failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to store file"})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// Download streams a stored file back as an attachment.
func (h Handler) Download(c *gin.Context) {
	path, err := h.Store.Path(c.Param("filename"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "file not found"})
		return
	}
	c.FileAttachment(path, c.Param("filename"))
}
