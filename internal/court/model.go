package court

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound         = errors.New("court not found")
	ErrNameRequired     = errors.New("court name is required")
	ErrInvalidSport     = errors.New("invalid sport type")
	ErrInvalidCourtType = errors.New("invalid court type")
	ErrInvalidPrice     = errors.New("price per hour must be positive")
	ErrInvalidSchedule  = errors.New("invalid weekly schedule")
	ErrPermissionDenied = errors.New("permission denied")
)

// SportType is a closed set of supported sports.
type SportType string

const (
	SportBadminton   SportType = "badminton"
	SportTennis      SportType = "tennis"
	SportBasketball  SportType = "basketball"
	SportFutsal      SportType = "futsal"
	SportSquash      SportType = "squash"
	SportVolleyball  SportType = "volleyball"
	SportTableTennis SportType = "table_tennis"
)

// Valid reports whether the sport type is one of the known values.
func (s SportType) Valid() bool {
	switch s {
	case SportBadminton, SportTennis, SportBasketball, SportFutsal,
		SportSquash, SportVolleyball, SportTableTennis:
		return true
	}
	return false
}

// CourtType distinguishes indoor and outdoor courts.
type CourtType string

const (
	CourtIndoor  CourtType = "indoor"
	CourtOutdoor CourtType = "outdoor"
)

// Valid reports whether the court type is one of the known values.
func (t CourtType) Valid() bool {
	return t == CourtIndoor || t == CourtOutdoor
}

// Interval is an open period within a day, HH:MM inclusive start, exclusive end.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaySchedule is the opening configuration of a court for one weekday.
// When IsOpen is false the court takes no bookings that day, regardless
// of any configured intervals.
type DaySchedule struct {
	IsOpen    bool       `json:"is_open"`
	Intervals []Interval `json:"intervals"`
}

// WeekSchedule maps lowercase weekday names ("monday"..."sunday") to their
// day schedules. Stored as a JSONB document alongside the court row.
type WeekSchedule map[string]DaySchedule

// WeekdayKey returns the schedule map key for a weekday.
func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// ForDate returns the day schedule applying to the given date,
// and whether an entry exists at all.
func (w WeekSchedule) ForDate(date time.Time) (DaySchedule, bool) {
	if w == nil {
		return DaySchedule{}, false
	}
	ds, ok := w[WeekdayKey(date.Weekday())]
	return ds, ok
}

// PeakHours is an optional price override applied when a booking's interval
// falls entirely within the [Start, End) window.
type PeakHours struct {
	Start        string  `json:"start"`
	End          string  `json:"end"`
	PricePerHour float64 `json:"price_per_hour"`
}

// Court represents a bookable physical resource belonging to a venue.
type Court struct {
	ID           string
	VenueID      string
	Name         string
	Sport        SportType
	CourtType    CourtType
	PricePerHour float64
	Peak         *PeakHours
	Schedule     WeekSchedule
	IsActive     bool
	CreatedAt    time.Time
}

// Filter defines parameters for listing courts.
type Filter struct {
	VenueID   string
	Sport     string
	CourtType string
	Page      int
	PageSize  int
}
