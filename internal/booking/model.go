package booking

import (
	"net/http"
	"time"

	"github.com/courtside/sportbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrCourtNotFound     = apperror.New(http.StatusNotFound, "court not found")
	ErrVenueNotFound     = apperror.New(http.StatusNotFound, "venue not found")
	ErrSlotTaken         = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidDate       = apperror.New(http.StatusBadRequest, "invalid date")
	ErrInvalidDuration   = apperror.New(http.StatusBadRequest, "duration must be a positive number of minutes")
	ErrDurationMismatch  = apperror.New(http.StatusBadRequest, "duration does not match start and end times")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
	ErrAlreadyCancelled  = apperror.New(http.StatusUnprocessableEntity, "booking is already cancelled")
	ErrNotCancellable    = apperror.New(http.StatusUnprocessableEntity, "booking can no longer be cancelled")
	ErrInvalidTransition = apperror.New(http.StatusUnprocessableEntity, "invalid booking status transition")
)

// Status is the booking lifecycle state.
// pending -> confirmed -> completed; pending|confirmed -> cancelled.
// completed and cancelled are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// PaymentStatus tracks the payment side of a booking.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is a reservation of one court for one contiguous interval on one
// calendar date. Start and end times are fixed-width zero-padded "HH:MM",
// which makes lexicographic comparison equivalent to chronological order.
// Cancelled bookings are kept for history but never considered in conflict
// checks.
type Booking struct {
	ID              string
	CourtID         string
	CourtName       string
	VenueID         string
	VenueName       string
	UserID          string
	UserName        string
	Date            time.Time // calendar day, time-of-day stripped
	StartTime       string    // "HH:MM"
	EndTime         string    // "HH:MM"
	DurationMinutes int
	TotalAmount     float64
	Status          Status
	PaymentStatus   PaymentStatus
	CancelReason    *string
	CancelledBy     *string
	CancelledAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StartsAt combines the booking date with its start time, in UTC.
func (b *Booking) StartsAt() time.Time {
	m, err := minuteOfDay(b.StartTime)
	if err != nil {
		return b.Date
	}
	return b.Date.Add(time.Duration(m) * time.Minute)
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID    string
	CourtID   string
	VenueID   string
	Status    string
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
