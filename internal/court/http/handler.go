package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/sportbook-backend/internal/auth"
	"github.com/courtside/sportbook-backend/internal/court"
	"github.com/courtside/sportbook-backend/internal/pkg/response"
	"github.com/courtside/sportbook-backend/internal/user"
	"github.com/courtside/sportbook-backend/internal/venue"
)

type Handler struct {
	service     court.Service
	userService user.Service
}

func NewHandler(service court.Service, userService user.Service) *Handler {
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

func writeCourtError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, court.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
	case errors.Is(err, venue.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "venue not found"})
	case errors.Is(err, court.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, court.ErrNameRequired),
		errors.Is(err, court.ErrInvalidSport),
		errors.Is(err, court.ErrInvalidCourtType),
		errors.Is(err, court.ErrInvalidPrice),
		errors.Is(err, court.ErrInvalidSchedule):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "court operation failed"})
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	u := h.currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), court.CreateRequest{
		VenueID:      req.VenueID,
		Name:         req.Name,
		Sport:        req.Sport,
		CourtType:    req.CourtType,
		PricePerHour: req.PricePerHour,
		Peak:         toPeakHours(req.Peak),
		Schedule:     toWeekSchedule(req.Schedule),
	}, u.ID, u.IsAdmin())
	if err != nil {
		writeCourtError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCourtResponse(created))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	ct, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeCourtError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(ct))
}

func (h *Handler) List(c *gin.Context) {
	var req ListCourtsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := court.Filter{
		VenueID:   req.VenueID,
		Sport:     req.Sport,
		CourtType: req.CourtType,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}

	courts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list courts"})
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, ct := range courts {
		items[i] = NewCourtResponse(ct)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u := h.currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, court.UpdateRequest{
		Name:         req.Name,
		Sport:        req.Sport,
		CourtType:    req.CourtType,
		PricePerHour: req.PricePerHour,
		Peak:         toPeakHours(req.Peak),
		Schedule:     toWeekSchedule(req.Schedule),
		IsActive:     req.IsActive,
	}, u.ID, u.IsAdmin())
	if err != nil {
		writeCourtError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCourtResponse(updated))
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

	if err := h.service.Delete(c.Request.Context(), id, u.ID, u.IsAdmin()); err != nil {
		writeCourtError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
