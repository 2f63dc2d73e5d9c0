package booking

import (
	"fmt"
	"time"

	"github.com/courtside/sportbook-backend/internal/court"
	"github.com/courtside/sportbook-backend/internal/venue"
)

const (
	// TimeLayout is the fixed-width wire format for times of day.
	TimeLayout = "15:04"
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
)

// Slot is a candidate bookable interval of fixed duration within a court's
// operating hours on a given date.
type Slot struct {
	StartTime       string
	EndTime         string
	Available       bool
	PricePerHour    float64
	DurationMinutes int
}

// Window is the open-to-close range applicable to a court on a specific day.
type Window struct {
	Open  string
	Close string
}

// minuteOfDay parses a zero-padded "HH:MM" string into minutes since midnight.
// Only the canonical fixed-width form is accepted; time.Parse alone would let
// "9:00" through, and a non-padded value stored in the ledger breaks the
// lexicographic comparisons the overlap checks rely on.
func minuteOfDay(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	m := t.Hour()*60 + t.Minute()
	if formatMinutes(m) != s {
		return 0, fmt.Errorf("invalid time %q: must be zero-padded HH:MM", s)
	}
	return m, nil
}

// formatMinutes renders minutes since midnight back to "HH:MM".
func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Both bounds strict: a booking ending exactly when another starts does not
// conflict. Lexicographic comparison is valid because the format is
// fixed-width zero-padded HH:MM.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// ResolveWindow determines the operating window for a court on a date.
// The court's weekday entry wins; if it is open but lists no intervals, the
// venue-wide default hours apply. A closed or missing entry means no window.
// Only the first configured interval is consulted even when several exist;
// this mirrors how schedules have always been interpreted here.
func ResolveWindow(c *court.Court, v *venue.Venue, date time.Time) (Window, bool) {
	ds, ok := c.Schedule.ForDate(date)
	if !ok || !ds.IsOpen {
		return Window{}, false
	}
	if len(ds.Intervals) > 0 {
		iv := ds.Intervals[0]
		return Window{Open: iv.Start, Close: iv.End}, true
	}
	if v == nil || v.OpenTime == "" || v.CloseTime == "" {
		return Window{}, false
	}
	return Window{Open: v.OpenTime, Close: v.CloseTime}, true
}

// BuildSlots generates the consecutive candidate intervals of exactly
// durationMinutes that fit inside the window, starting at its open time.
// A candidate whose end would pass the close time is dropped; there is no
// partial trailing slot. A malformed window (unparseable bounds, or
// open >= close) yields an empty sequence rather than an error.
func BuildSlots(w Window, durationMinutes int) []Slot {
	open, err := minuteOfDay(w.Open)
	if err != nil {
		return nil
	}
	closeAt, err := minuteOfDay(w.Close)
	if err != nil {
		return nil
	}
	if open >= closeAt || durationMinutes <= 0 {
		return nil
	}

	var slots []Slot
	for start := open; start+durationMinutes <= closeAt; start += durationMinutes {
		slots = append(slots, Slot{
			StartTime:       formatMinutes(start),
			EndTime:         formatMinutes(start + durationMinutes),
			DurationMinutes: durationMinutes,
		})
	}
	return slots
}

// MarkAvailability flags each slot as available unless it overlaps a
// non-cancelled booking. The day's bookings are fetched once and checked in
// memory instead of issuing one ledger query per candidate.
func MarkAvailability(slots []Slot, bookings []*Booking) {
	for i := range slots {
		slots[i].Available = true
		for _, b := range bookings {
			if b.Status == StatusCancelled {
				continue
			}
			if Overlaps(slots[i].StartTime, slots[i].EndTime, b.StartTime, b.EndTime) {
				slots[i].Available = false
				break
			}
		}
	}
}
