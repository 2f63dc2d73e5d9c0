package venue

import (
	"errors"
	"time"
)

var (
	ErrNotFound            = errors.New("venue not found")
	ErrNameRequired        = errors.New("venue name is required")
	ErrInvalidOpeningHours = errors.New("invalid opening hours")
	ErrInvalidGeo          = errors.New("invalid coordinates")
	ErrPermissionDenied    = errors.New("permission denied")
)

// Venue represents a sports facility owned by a facility owner.
// OpenTime/CloseTime are the venue-wide fallback operating hours (HH:MM),
// used when a court's weekday entry has no explicit intervals.
type Venue struct {
	ID          string
	OwnerID     string
	Name        string
	Address     string
	Description string
	OpenTime    string // "HH:MM"
	CloseTime   string // "HH:MM"
	Amenities   []string
	PhotoPath   *string
	Longitude   float64
	Latitude    float64
	IsActive    bool
	CreatedAt   time.Time
}

// Filter defines parameters for listing venues.
type Filter struct {
	OwnerID  string
	Keyword  string // Search in Name or Address
	Page     int
	PageSize int
}
