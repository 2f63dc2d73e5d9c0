package booking

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/courtside/sportbook-backend/internal/court"
	"github.com/courtside/sportbook-backend/internal/venue"
)

// CreateRequest carries data to create a booking.
type CreateRequest struct {
	UserID          string
	CourtID         string
	Date            string // DateLayout
	StartTime       string // "HH:MM"
	EndTime         string // "HH:MM"
	DurationMinutes int
}

// CancelRequest carries data to cancel a booking.
type CancelRequest struct {
	RequesterID string
	IsAdmin     bool
	Reason      string
}

type Service interface {
	// ComputeSlots lists the candidate slots of the given duration for a
	// court on a date, each flagged available or not. A closed day yields an
	// empty list, which is distinct from a court lookup failure.
	ComputeSlots(ctx context.Context, courtID, date string, durationMinutes int) ([]Slot, error)

	// IsAvailable checks a single interval against the ledger. Advisory when
	// used for display; Create re-runs it right before writing.
	IsAvailable(ctx context.Context, courtID, date, startTime, endTime string) (bool, error)

	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string, requesterID string, isAdmin bool) (*Booking, error)
	Cancel(ctx context.Context, id string, req CancelRequest) (*Booking, error)

	// ListForUser returns the requester's own bookings.
	ListForUser(ctx context.Context, userID string, filter Filter) ([]*Booking, int, error)
	// ListForVenue returns a venue's bookings; restricted to its owner and admins.
	ListForVenue(ctx context.Context, venueID, requesterID string, isAdmin bool, filter Filter) ([]*Booking, int, error)

	// HandlePaymentResult applies a payment outcome reported by the gateway:
	// a paid pending booking becomes confirmed.
	HandlePaymentResult(ctx context.Context, bookingID string, paid bool) (*Booking, error)

	// Complete marks a confirmed booking as completed (admin override).
	Complete(ctx context.Context, id string) (*Booking, error)
}

type service struct {
	repo         Repository
	courtService court.Service
	venService   venue.Service
	publisher    EventPublisher
}

func NewService(repo Repository, courtService court.Service, venService venue.Service, publisher EventPublisher) Service {
	return &service{
		repo:         repo,
		courtService: courtService,
		venService:   venService,
		publisher:    publisher,
	}
}

func (s *service) publish(ctx context.Context, key string, b *Booking) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, eventOf(b)); err != nil {
		log.Printf("warning: failed to publish %s for booking %s: %v", key, b.ID, err)
	}
}

// resolveCourt loads the court and its venue, mapping lookup failures to the
// booking error vocabulary.
func (s *service) resolveCourt(ctx context.Context, courtID string) (*court.Court, *venue.Venue, error) {
	ct, err := s.courtService.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, nil, ErrCourtNotFound
		}
		return nil, nil, err
	}
	v, err := s.venService.GetByID(ctx, ct.VenueID)
	if err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return nil, nil, ErrVenueNotFound
		}
		return nil, nil, err
	}
	return ct, v, nil
}

func parseDate(date string) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func (s *service) ComputeSlots(ctx context.Context, courtID, date string, durationMinutes int) ([]Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	ct, v, err := s.resolveCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	window, open := ResolveWindow(ct, v, day)
	if !open {
		// Closed that day: a valid, empty result.
		return []Slot{}, nil
	}

	slots := BuildSlots(window, durationMinutes)
	if len(slots) == 0 {
		return []Slot{}, nil
	}

	// One ledger read covers every candidate.
	booked, err := s.repo.ListForCourtDate(ctx, ct.ID, day)
	if err != nil {
		return nil, err
	}
	MarkAvailability(slots, booked)

	for i := range slots {
		slots[i].PricePerHour = ct.PricePerHour
	}
	return slots, nil
}

func (s *service) IsAvailable(ctx context.Context, courtID, date, startTime, endTime string) (bool, error) {
	day, err := parseDate(date)
	if err != nil {
		return false, err
	}
	if err := validateInterval(startTime, endTime); err != nil {
		return false, err
	}
	hasOverlap, err := s.repo.HasOverlap(ctx, courtID, day, startTime, endTime)
	if err != nil {
		return false, err
	}
	return !hasOverlap, nil
}

// validateInterval checks both bounds parse and end is after start.
func validateInterval(startTime, endTime string) error {
	start, err := minuteOfDay(startTime)
	if err != nil {
		return ErrInvalidTimeRange
	}
	end, err := minuteOfDay(endTime)
	if err != nil {
		return ErrInvalidTimeRange
	}
	if end <= start {
		return ErrInvalidTimeRange
	}
	return nil
}

// rateFor picks the peak price when the whole interval falls inside the peak
// window, the base price otherwise.
func rateFor(ct *court.Court, startTime, endTime string) float64 {
	if ct.Peak != nil && ct.Peak.Start <= startTime && endTime <= ct.Peak.End {
		return ct.Peak.PricePerHour
	}
	return ct.PricePerHour
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := validateInterval(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if req.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	start, _ := minuteOfDay(req.StartTime)
	end, _ := minuteOfDay(req.EndTime)
	if end-start != req.DurationMinutes {
		return nil, ErrDurationMismatch
	}

	ct, _, err := s.resolveCourt(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	// Authoritative re-check right before the write. A race against a writer
	// of the exact same interval is still caught by the unique index in
	// repo.Create; partially overlapping concurrent writes are not fully
	// serialized (see DESIGN.md).
	hasOverlap, err := s.repo.HasOverlap(ctx, ct.ID, day, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrSlotTaken
	}

	// Whole-unit rounding of the amount is longstanding billing behavior.
	rate := rateFor(ct, req.StartTime, req.EndTime)
	total := math.Round(rate * float64(req.DurationMinutes) / 60)

	b := &Booking{
		CourtID:         ct.ID,
		VenueID:         ct.VenueID,
		UserID:          req.UserID,
		Date:            day,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		TotalAmount:     total,
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.publish(ctx, EventCreated, b)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string, requesterID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if isAdmin || b.UserID == requesterID {
		return b, nil
	}

	// Venue owners may inspect bookings on their own venues.
	isOwner, err := s.venService.IsOwner(ctx, b.VenueID, requesterID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string, req CancelRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !req.IsAdmin && b.UserID != req.RequesterID {
		return nil, ErrPermissionDenied
	}

	switch b.Status {
	case StatusCancelled:
		return nil, ErrAlreadyCancelled
	case StatusCompleted:
		return nil, ErrNotCancellable
	}

	// Only future bookings can be cancelled; a booking that has started is
	// kept as-is.
	if !b.StartsAt().After(time.Now().UTC()) {
		return nil, ErrNotCancellable
	}

	now := time.Now().UTC()
	b.Status = StatusCancelled
	b.CancelledAt = &now
	b.CancelledBy = &req.RequesterID
	if req.Reason != "" {
		reason := req.Reason
		b.CancelReason = &reason
	}
	if b.PaymentStatus == PaymentPaid {
		b.PaymentStatus = PaymentRefunded
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publish(ctx, EventCancelled, b)
	return b, nil
}

func (s *service) ListForUser(ctx context.Context, userID string, filter Filter) ([]*Booking, int, error) {
	filter.UserID = userID
	return s.repo.List(ctx, filter)
}

func (s *service) ListForVenue(ctx context.Context, venueID, requesterID string, isAdmin bool, filter Filter) ([]*Booking, int, error) {
	if !isAdmin {
		isOwner, err := s.venService.IsOwner(ctx, venueID, requesterID)
		if err != nil {
			if errors.Is(err, venue.ErrNotFound) {
				return nil, 0, ErrVenueNotFound
			}
			return nil, 0, err
		}
		if !isOwner {
			return nil, 0, ErrPermissionDenied
		}
	}

	filter.VenueID = venueID
	return s.repo.List(ctx, filter)
}

func (s *service) HandlePaymentResult(ctx context.Context, bookingID string, paid bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !paid {
		b.PaymentStatus = PaymentFailed
		if err := s.repo.Update(ctx, b); err != nil {
			return nil, err
		}
		return b, nil
	}

	b.PaymentStatus = PaymentPaid
	if b.Status == StatusPending {
		b.Status = StatusConfirmed
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publish(ctx, EventConfirmed, b)
	return b, nil
}

func (s *service) Complete(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusConfirmed {
		return nil, ErrInvalidTransition
	}
	b.Status = StatusCompleted
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
