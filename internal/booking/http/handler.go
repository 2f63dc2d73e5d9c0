package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/sportbook-backend/internal/auth"
	"github.com/courtside/sportbook-backend/internal/booking"
	"github.com/courtside/sportbook-backend/internal/pkg/response"
	"github.com/courtside/sportbook-backend/internal/user"
)

type Handler struct {
	service            booking.Service
	userService        user.Service
	defaultSlotMinutes int
}

func NewHandler(service booking.Service, userService user.Service, defaultSlotMinutes int) *Handler {
	return &Handler{
		service:            service,
		userService:        userService,
		defaultSlotMinutes: defaultSlotMinutes,
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

// Slots lists the bookable slots of a court on a date.
// GET /courts/:id/slots?date=YYYY-MM-DD&slot_duration=60
func (h *Handler) Slots(c *gin.Context) {
	courtID := c.Param("id")
	if _, err := uuid.Parse(courtID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req SlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	duration := req.SlotDuration
	if duration == 0 {
		duration = h.defaultSlotMinutes
	}

	slots, err := h.service.ComputeSlots(c.Request.Context(), courtID, req.Date, duration)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSlotsResponse(courtID, req.Date, slots))
}

// Availability checks a single interval against the ledger.
// GET /courts/:id/availability?date=YYYY-MM-DD&start_time=HH:MM&end_time=HH:MM
func (h *Handler) Availability(c *gin.Context) {
	courtID := c.Param("id")
	if _, err := uuid.Parse(courtID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	available, err := h.service.IsAvailable(c.Request.Context(), courtID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		CourtID:   courtID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Available: available,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:          userID,
		CourtID:         req.CourtID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(created))
}

func (h *Handler) Get(c *gin.Context) {
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

	b, err := h.service.GetByID(c.Request.Context(), id, u.ID, u.IsAdmin())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	d, err := time.Parse(booking.DateLayout, s)
	if err != nil {
		return nil
	}
	return &d
}

func toFilter(req ListBookingsRequest) booking.Filter {
	return booking.Filter{
		CourtID:   req.CourtID,
		Status:    req.Status,
		DateFrom:  parseDatePtr(req.DateFrom),
		DateTo:    parseDatePtr(req.DateTo),
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}
}

// ListMine lists the authenticated user's bookings.
func (h *Handler) ListMine(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookings, total, err := h.service.ListForUser(c.Request.Context(), userID, toFilter(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// ListForVenue lists a venue's bookings for its owner or an admin.
// GET /venues/:id/bookings
func (h *Handler) ListForVenue(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	u := h.currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookings, total, err := h.service.ListForVenue(c.Request.Context(), venueID, u.ID, u.IsAdmin(), toFilter(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u := h.currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	cancelled, err := h.service.Cancel(c.Request.Context(), id, booking.CancelRequest{
		RequesterID: u.ID,
		IsAdmin:     u.IsAdmin(),
		Reason:      req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(cancelled))
}

// Complete marks a confirmed booking as completed. Admin only; the route is
// guarded by the admin middleware.
func (h *Handler) Complete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	completed, err := h.service.Complete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(completed))
}
