package http

import (
	"github.com/courtside/sportbook-backend/internal/payment"
)

type PayBookingRequest struct {
	CardToken string `json:"card_token" binding:"required"`
}

type PaymentResponse struct {
	BookingID     string `json:"booking_id"`
	ChargeID      string `json:"charge_id"`
	ChargeStatus  string `json:"charge_status"`
	BookingStatus string `json:"booking_status"`
	PaymentStatus string `json:"payment_status"`
}

func NewPaymentResponse(r *payment.Result) PaymentResponse {
	return PaymentResponse{
		BookingID:     r.Booking.ID,
		ChargeID:      r.ChargeID,
		ChargeStatus:  r.Status,
		BookingStatus: string(r.Booking.Status),
		PaymentStatus: string(r.Booking.PaymentStatus),
	}
}

// WebhookBody is the minimal envelope of an Omise webhook delivery. Only the
// event ID is read; the event itself is re-fetched from the provider.
type WebhookBody struct {
	ID string `json:"id" binding:"required"`
}
