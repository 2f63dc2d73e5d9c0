package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/sportbook-backend/internal/auth"
	"github.com/courtside/sportbook-backend/internal/payment"
	"github.com/courtside/sportbook-backend/internal/pkg/response"
)

type Handler struct {
	service payment.Service
}

func NewHandler(service payment.Service) *Handler {
	return &Handler{service: service}
}

// Pay charges a pending booking.
// POST /bookings/:id/pay
func (h *Handler) Pay(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req PayBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, err := h.service.PayBooking(c.Request.Context(), id, userID, req.CardToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPaymentResponse(result))
}

// Webhook receives provider callbacks. The event is verified against the
// provider before anything is applied, so the endpoint stays unauthenticated.
// POST /payments/webhook
func (h *Handler) Webhook(c *gin.Context) {
	var body WebhookBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.service.HandleWebhookEvent(c.Request.Context(), body.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusOK)
}
