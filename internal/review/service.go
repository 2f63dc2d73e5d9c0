package review

import (
	"context"
	"errors"
	"strings"

	"github.com/courtside/sportbook-backend/internal/booking"
	"github.com/courtside/sportbook-backend/internal/venue"
)

// CreateRequest carries data to create a review.
type CreateRequest struct {
	VenueID string
	UserID  string
	Rating  int
	Comment string
}

// Rating summarizes a venue's approved reviews.
type Rating struct {
	Average float64
	Count   int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Review, error)
	GetByID(ctx context.Context, id string) (*Review, error)

	// ListApproved lists the publicly visible reviews of a venue.
	ListApproved(ctx context.Context, venueID string, page, pageSize int) ([]*Review, int, error)
	// ListForModeration lists reviews by status for admins.
	ListForModeration(ctx context.Context, filter Filter) ([]*Review, int, error)

	Moderate(ctx context.Context, id string, status ModerationStatus) (*Review, error)
	Delete(ctx context.Context, id string, requesterID string, isAdmin bool) error
	VenueRating(ctx context.Context, venueID string) (Rating, error)
}

type service struct {
	repo           Repository
	venService     venue.Service
	bookingService booking.Service
}

func NewService(repo Repository, venService venue.Service, bookingService booking.Service) Service {
	return &service{
		repo:           repo,
		venService:     venService,
		bookingService: bookingService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	// Venue must exist and be visible.
	if _, err := s.venService.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venue.ErrNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	// Only customers who actually played at the venue may review it.
	_, total, err := s.bookingService.ListForUser(ctx, req.UserID, booking.Filter{
		VenueID:  req.VenueID,
		Status:   string(booking.StatusCompleted),
		Page:     1,
		PageSize: 1,
	})
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNotEligible
	}

	rv := &Review{
		VenueID: req.VenueID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
		Status:  ModerationPending,
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Review, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListApproved(ctx context.Context, venueID string, page, pageSize int) ([]*Review, int, error) {
	return s.repo.List(ctx, Filter{
		VenueID:  venueID,
		Status:   string(ModerationApproved),
		Page:     page,
		PageSize: pageSize,
	})
}

func (s *service) ListForModeration(ctx context.Context, filter Filter) ([]*Review, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Moderate(ctx context.Context, id string, status ModerationStatus) (*Review, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string, requesterID string, isAdmin bool) error {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && rv.UserID != requesterID {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) VenueRating(ctx context.Context, venueID string) (Rating, error) {
	avg, count, err := s.repo.AverageRating(ctx, venueID)
	if err != nil {
		return Rating{}, err
	}
	return Rating{Average: avg, Count: count}, nil
}
