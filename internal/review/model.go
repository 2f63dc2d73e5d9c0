package review

import (
	"net/http"
	"time"

	"github.com/courtside/sportbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "review not found")
	ErrVenueNotFound    = apperror.New(http.StatusNotFound, "venue not found")
	ErrInvalidRating    = apperror.New(http.StatusBadRequest, "rating must be between 1 and 5")
	ErrAlreadyReviewed  = apperror.New(http.StatusConflict, "venue already reviewed by this user")
	ErrNotEligible      = apperror.New(http.StatusForbidden, "a completed booking at this venue is required to review it")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid moderation status")
)

// ModerationStatus is the moderation state of a review. New reviews start
// pending and only approved reviews are publicly visible.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

func (m ModerationStatus) Valid() bool {
	switch m {
	case ModerationPending, ModerationApproved, ModerationRejected:
		return true
	}
	return false
}

type Review struct {
	ID        string
	VenueID   string
	UserID    string
	UserName  string
	Rating    int // 1..5
	Comment   string
	Status    ModerationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing reviews.
type Filter struct {
	VenueID  string
	UserID   string
	Status   string
	Page     int
	PageSize int
}
