package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/sportbook-backend/internal/auth"
	"github.com/courtside/sportbook-backend/internal/media"
	"github.com/courtside/sportbook-backend/internal/pkg/response"
	"github.com/courtside/sportbook-backend/internal/user"
)

type Handler struct {
	service     media.Service
	userService user.Service
}

func NewHandler(service media.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

func (h *Handler) currentUser(c *gin.Context) *user.User {
	userID := auth.GetUserID(c)
	if userID == "" {
		return nil
	}
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return nil
	}
	return u
}

type UploadResponse struct {
	Path          string `json:"path"`
	ThumbnailPath string `json:"thumbnail_path"`
}

// UploadVenuePhoto accepts a multipart photo upload for a venue.
// POST /venues/:id/photo
func (h *Handler) UploadVenuePhoto(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	u := h.currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	if fileHeader.Size > media.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds size limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	photo, err := h.service.UploadVenuePhoto(
		c.Request.Context(), venueID, u.ID, u.IsAdmin(), fileHeader.Filename, file,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{
		Path:          photo.Path,
		ThumbnailPath: photo.ThumbnailPath,
	})
}

// ServePhoto streams a stored photo by its path.
// GET /media/*path
func (h *Handler) ServePhoto(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		return
	}

	rc, err := h.service.OpenPhoto(c.Request.Context(), path)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		c.Header("Content-Type", "image/png")
	default:
		c.Header("Content-Type", "image/jpeg")
	}

	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
