package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/sportbook-backend/internal/booking"
)

type stubGateway struct {
	chargeResult *ChargeResult
	chargeErr    error
	event        *VerifiedEvent
	lastCharge   *ChargeInput
}

func (g *stubGateway) Charge(_ context.Context, in ChargeInput) (*ChargeResult, error) {
	g.lastCharge = &in
	return g.chargeResult, g.chargeErr
}

func (g *stubGateway) VerifyEvent(context.Context, string) (*VerifiedEvent, error) {
	return g.event, nil
}

// stubBookingService implements only the methods the payment flow touches.
type stubBookingService struct {
	booking.Service
	bookings map[string]*booking.Booking
	results  []struct {
		BookingID string
		Paid      bool
	}
}

func (s *stubBookingService) GetByID(_ context.Context, id, _ string, _ bool) (*booking.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return b, nil
}

func (s *stubBookingService) HandlePaymentResult(_ context.Context, id string, paid bool) (*booking.Booking, error) {
	s.results = append(s.results, struct {
		BookingID string
		Paid      bool
	}{id, paid})

	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	if paid {
		b.PaymentStatus = booking.PaymentPaid
		if b.Status == booking.StatusPending {
			b.Status = booking.StatusConfirmed
		}
	} else {
		b.PaymentStatus = booking.PaymentFailed
	}
	return b, nil
}

func pendingBooking() *booking.Booking {
	return &booking.Booking{
		ID:            "booking-1",
		UserID:        "user-1",
		TotalAmount:   1000,
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentPending,
	}
}

func TestPayBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("successful charge confirms booking", func(t *testing.T) {
		gw := &stubGateway{chargeResult: &ChargeResult{ChargeID: "chrg_1", Status: "successful"}}
		bs := &stubBookingService{bookings: map[string]*booking.Booking{"booking-1": pendingBooking()}}
		svc := NewService(gw, bs)

		result, err := svc.PayBooking(ctx, "booking-1", "user-1", "tok_visa")
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, result.Booking.Status)
		assert.Equal(t, booking.PaymentPaid, result.Booking.PaymentStatus)
		assert.Equal(t, "chrg_1", result.ChargeID)

		// 1000 THB charged as 100000 satang.
		require.NotNil(t, gw.lastCharge)
		assert.Equal(t, int64(100000), gw.lastCharge.Amount)
		assert.Equal(t, "thb", gw.lastCharge.Currency)
	})

	t.Run("declined charge marks payment failed", func(t *testing.T) {
		gw := &stubGateway{chargeResult: &ChargeResult{ChargeID: "chrg_2", Status: "failed", FailureCode: "insufficient_fund"}}
		bs := &stubBookingService{bookings: map[string]*booking.Booking{"booking-1": pendingBooking()}}
		svc := NewService(gw, bs)

		_, err := svc.PayBooking(ctx, "booking-1", "user-1", "tok_visa")
		assert.ErrorIs(t, err, ErrChargeFailed)
		assert.Equal(t, booking.PaymentFailed, bs.bookings["booking-1"].PaymentStatus)
		assert.Equal(t, booking.StatusPending, bs.bookings["booking-1"].Status)
	})

	t.Run("pending charge defers to webhook", func(t *testing.T) {
		gw := &stubGateway{chargeResult: &ChargeResult{ChargeID: "chrg_3", Status: "pending"}}
		bs := &stubBookingService{bookings: map[string]*booking.Booking{"booking-1": pendingBooking()}}
		svc := NewService(gw, bs)

		result, err := svc.PayBooking(ctx, "booking-1", "user-1", "tok_visa")
		require.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
		assert.Empty(t, bs.results)
	})

	t.Run("already paid booking rejected", func(t *testing.T) {
		b := pendingBooking()
		b.PaymentStatus = booking.PaymentPaid
		b.Status = booking.StatusConfirmed
		bs := &stubBookingService{bookings: map[string]*booking.Booking{"booking-1": b}}
		svc := NewService(&stubGateway{}, bs)

		_, err := svc.PayBooking(ctx, "booking-1", "user-1", "tok_visa")
		assert.ErrorIs(t, err, ErrAlreadyPaid)
	})

	t.Run("cancelled booking not payable", func(t *testing.T) {
		b := pendingBooking()
		b.Status = booking.StatusCancelled
		bs := &stubBookingService{bookings: map[string]*booking.Booking{"booking-1": b}}
		svc := NewService(&stubGateway{}, bs)

		_, err := svc.PayBooking(ctx, "booking-1", "user-1", "tok_visa")
		assert.ErrorIs(t, err, ErrNotPayable)
	})

	t.Run("other users cannot pay", func(t *testing.T) {
		bs := &stubBookingService{bookings: map[string]*booking.Booking{"booking-1": pendingBooking()}}
		svc := NewService(&stubGateway{}, bs)

		_, err := svc.PayBooking(ctx, "booking-1", "user-2", "tok_visa")
		assert.ErrorIs(t, err, booking.ErrPermissionDenied)
	})
}

func TestHandleWebhookEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("successful charge event confirms booking", func(t *testing.T) {
		gw := &stubGateway{event: &VerifiedEvent{
			Key: "charge.complete", ChargeID: "chrg_1", Status: "successful", BookingID: "booking-1",
		}}
		bs := &stubBookingService{bookings: map[string]*booking.Booking{"booking-1": pendingBooking()}}
		svc := NewService(gw, bs)

		require.NoError(t, svc.HandleWebhookEvent(ctx, "evnt_1"))
		assert.Equal(t, booking.StatusConfirmed, bs.bookings["booking-1"].Status)
	})

	t.Run("failed charge event marks payment failed", func(t *testing.T) {
		gw := &stubGateway{event: &VerifiedEvent{
			Key: "charge.complete", ChargeID: "chrg_1", Status: "failed", BookingID: "booking-1",
		}}
		bs := &stubBookingService{bookings: map[string]*booking.Booking{"booking-1": pendingBooking()}}
		svc := NewService(gw, bs)

		require.NoError(t, svc.HandleWebhookEvent(ctx, "evnt_1"))
		assert.Equal(t, booking.PaymentFailed, bs.bookings["booking-1"].PaymentStatus)
	})

	t.Run("unrelated event acknowledged without changes", func(t *testing.T) {
		gw := &stubGateway{event: &VerifiedEvent{Key: "customer.create"}}
		bs := &stubBookingService{bookings: map[string]*booking.Booking{"booking-1": pendingBooking()}}
		svc := NewService(gw, bs)

		require.NoError(t, svc.HandleWebhookEvent(ctx, "evnt_2"))
		assert.Empty(t, bs.results)
	})
}
