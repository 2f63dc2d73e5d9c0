package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/sportbook-backend/internal/auth"
	"github.com/courtside/sportbook-backend/internal/pkg/response"
	"github.com/courtside/sportbook-backend/internal/user"
	"github.com/courtside/sportbook-backend/internal/venue"
)

type Handler struct {
	service     venue.Service
	userService user.Service
}

func NewHandler(service venue.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// currentUser loads the authenticated user, or nil if not resolvable.
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

func (h *Handler) Create(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	u := h.currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	// Only facility owners and admins may create venues.
	if u.Role != user.RoleOwner && !u.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "facility owner role required"})
		return
	}

	v, err := h.service.Create(c.Request.Context(), venue.CreateRequest{
		OwnerID:     u.ID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		Amenities:   req.Amenities,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrNameRequired),
			errors.Is(err, venue.ErrInvalidOpeningHours),
			errors.Is(err, venue.ErrInvalidGeo):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create venue"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewVenueResponse(v))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get venue"})
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

func (h *Handler) List(c *gin.Context) {
	var req ListVenuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := venue.Filter{
		OwnerID:  req.OwnerID,
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	venues, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list venues"})
		return
	}

	items := make([]VenueResponse, len(venues))
	for i, v := range venues {
		items[i] = NewVenueResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u := h.currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, venue.UpdateRequest{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		Amenities:   req.Amenities,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
		IsActive:    req.IsActive,
	}, u.ID, u.IsAdmin())
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		case errors.Is(err, venue.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		case errors.Is(err, venue.ErrNameRequired),
			errors.Is(err, venue.ErrInvalidOpeningHours),
			errors.Is(err, venue.ErrInvalidGeo):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update venue"})
		}
		return
	}

	c.JSON(http.StatusOK, NewVenueResponse(v))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	u := h.currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	err := h.service.Delete(c.Request.Context(), id, u.ID, u.IsAdmin())
	if err != nil {
		switch {
		case errors.Is(err, venue.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
		case errors.Is(err, venue.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete venue"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
