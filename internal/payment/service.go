package payment

import (
	"context"
	"log"
	"math"
	"net/http"

	"github.com/courtside/sportbook-backend/internal/booking"
	"github.com/courtside/sportbook-backend/internal/pkg/apperror"
)

var (
	ErrAlreadyPaid   = apperror.New(http.StatusUnprocessableEntity, "booking is already paid")
	ErrNotPayable    = apperror.New(http.StatusUnprocessableEntity, "booking cannot be paid in its current state")
	ErrChargeFailed  = apperror.New(http.StatusPaymentRequired, "payment was declined")
	ErrGatewayFailed = apperror.New(http.StatusBadGateway, "payment gateway unavailable")
)

// Amounts are charged in THB; the gateway expects satang.
const currency = "thb"

type Result struct {
	Booking  *booking.Booking
	ChargeID string
	Status   string
}

type Service interface {
	// PayBooking charges the booking's total to the given card token. A
	// synchronous successful or failed outcome is applied immediately; a
	// pending outcome is left for the webhook to settle.
	PayBooking(ctx context.Context, bookingID, userID string, cardToken string) (*Result, error)

	// HandleWebhookEvent verifies the event with the provider and applies a
	// confirmed charge outcome to its booking.
	HandleWebhookEvent(ctx context.Context, eventID string) error
}

type service struct {
	gateway        Gateway
	bookingService booking.Service
}

func NewService(gateway Gateway, bookingService booking.Service) Service {
	return &service{
		gateway:        gateway,
		bookingService: bookingService,
	}
}

func (s *service) PayBooking(ctx context.Context, bookingID, userID string, cardToken string) (*Result, error) {
	b, err := s.bookingService.GetByID(ctx, bookingID, userID, false)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, booking.ErrPermissionDenied
	}
	if b.PaymentStatus == booking.PaymentPaid {
		return nil, ErrAlreadyPaid
	}
	if b.Status != booking.StatusPending {
		return nil, ErrNotPayable
	}

	charge, err := s.gateway.Charge(ctx, ChargeInput{
		BookingID: b.ID,
		Amount:    int64(math.Round(b.TotalAmount * 100)),
		Currency:  currency,
		CardToken: cardToken,
	})
	if err != nil {
		log.Printf("warning: charge for booking %s failed: %v", b.ID, err)
		return nil, ErrGatewayFailed
	}

	switch charge.Status {
	case "successful":
		b, err = s.bookingService.HandlePaymentResult(ctx, b.ID, true)
		if err != nil {
			return nil, err
		}
	case "failed":
		if _, err := s.bookingService.HandlePaymentResult(ctx, b.ID, false); err != nil {
			return nil, err
		}
		return nil, ErrChargeFailed
		// pending and awaiting_authorize settle later via webhook
	}

	return &Result{Booking: b, ChargeID: charge.ChargeID, Status: charge.Status}, nil
}

func (s *service) HandleWebhookEvent(ctx context.Context, eventID string) error {
	ev, err := s.gateway.VerifyEvent(ctx, eventID)
	if err != nil {
		return ErrGatewayFailed
	}

	if ev.Key != "charge.complete" || ev.BookingID == "" {
		// Not a charge settlement; acknowledge and move on.
		return nil
	}

	paid := ev.Status == "successful"
	if _, err := s.bookingService.HandlePaymentResult(ctx, ev.BookingID, paid); err != nil {
		return err
	}
	return nil
}
