package booking

import "context"

// Event routing keys published on the booking lifecycle.
const (
	EventCreated   = "booking.created"
	EventCancelled = "booking.cancelled"
	EventConfirmed = "booking.confirmed"
)

// Event is the payload published to the message broker for downstream
// consumers (notifications, analytics). Email sending itself lives outside
// this service.
type Event struct {
	BookingID   string  `json:"booking_id"`
	CourtID     string  `json:"court_id"`
	VenueID     string  `json:"venue_id"`
	UserID      string  `json:"user_id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}

// EventPublisher publishes booking lifecycle events. Implementations must be
// safe for concurrent use. Publishing is best-effort: failures are logged by
// the caller, never surfaced to the user.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event Event) error
}

func eventOf(b *Booking) Event {
	return Event{
		BookingID:   b.ID,
		CourtID:     b.CourtID,
		VenueID:     b.VenueID,
		UserID:      b.UserID,
		Date:        b.Date.Format(DateLayout),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
	}
}
