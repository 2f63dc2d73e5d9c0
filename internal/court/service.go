package court

import (
	"context"
	"strings"
	"time"

	"github.com/courtside/sportbook-backend/internal/venue"
)

// CreateRequest carries data to create a court.
type CreateRequest struct {
	VenueID      string
	Name         string
	Sport        string
	CourtType    string
	PricePerHour float64
	Peak         *PeakHours
	Schedule     WeekSchedule
}

// UpdateRequest carries data for partial updates.
type UpdateRequest struct {
	Name         *string
	Sport        *string
	CourtType    *string
	PricePerHour *float64
	Peak         *PeakHours
	Schedule     WeekSchedule
	IsActive     *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, creatorUserID string, isAdmin bool) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Court, error)
	Delete(ctx context.Context, id string, deleterUserID string, isAdmin bool) error
}

type service struct {
	repo       Repository
	venService venue.Service
}

func NewService(repo Repository, venService venue.Service) Service {
	return &service{
		repo:       repo,
		venService: venService,
	}
}

// validWallClock reports whether s is a canonical zero-padded HH:MM value.
// time.Parse alone accepts "9:00"; non-padded times stored in a schedule
// break the lexicographic comparisons the availability checks rely on.
func validWallClock(s string) bool {
	t, err := time.Parse("15:04", s)
	return err == nil && t.Format("15:04") == s
}

// validateSchedule checks that every configured interval parses as HH:MM.
// Logical emptiness (start >= end) is allowed here; the availability
// calculator treats such windows as closed rather than erroring.
func validateSchedule(w WeekSchedule) error {
	for day, ds := range w {
		if _, ok := dayNames[day]; !ok {
			return ErrInvalidSchedule
		}
		for _, iv := range ds.Intervals {
			if !validWallClock(iv.Start) || !validWallClock(iv.End) {
				return ErrInvalidSchedule
			}
		}
	}
	return nil
}

var dayNames = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

func validatePeak(p *PeakHours) error {
	if p == nil {
		return nil
	}
	if !validWallClock(p.Start) || !validWallClock(p.End) {
		return ErrInvalidSchedule
	}
	if p.PricePerHour <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest, creatorUserID string, isAdmin bool) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	sport := SportType(req.Sport)
	if !sport.Valid() {
		return nil, ErrInvalidSport
	}
	courtType := CourtType(req.CourtType)
	if !courtType.Valid() {
		return nil, ErrInvalidCourtType
	}
	if req.PricePerHour <= 0 {
		return nil, ErrInvalidPrice
	}
	if err := validateSchedule(req.Schedule); err != nil {
		return nil, err
	}
	if err := validatePeak(req.Peak); err != nil {
		return nil, err
	}

	// Only the venue owner (or an admin) may add courts to it.
	v, err := s.venService.GetByID(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && v.OwnerID != creatorUserID {
		return nil, ErrPermissionDenied
	}

	c := &Court{
		VenueID:      req.VenueID,
		Name:         strings.TrimSpace(req.Name),
		Sport:        sport,
		CourtType:    courtType,
		PricePerHour: req.PricePerHour,
		Peak:         req.Peak,
		Schedule:     req.Schedule,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin {
		isOwner, err := s.venService.IsOwner(ctx, c.VenueID, updaterUserID)
		if err != nil {
			return nil, err
		}
		if !isOwner {
			return nil, ErrPermissionDenied
		}
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Sport != nil {
		sport := SportType(*req.Sport)
		if !sport.Valid() {
			return nil, ErrInvalidSport
		}
		c.Sport = sport
	}
	if req.CourtType != nil {
		courtType := CourtType(*req.CourtType)
		if !courtType.Valid() {
			return nil, ErrInvalidCourtType
		}
		c.CourtType = courtType
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, ErrInvalidPrice
		}
		c.PricePerHour = *req.PricePerHour
	}
	if req.Peak != nil {
		if err := validatePeak(req.Peak); err != nil {
			return nil, err
		}
		c.Peak = req.Peak
	}
	if req.Schedule != nil {
		if err := validateSchedule(req.Schedule); err != nil {
			return nil, err
		}
		c.Schedule = req.Schedule
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterUserID string, isAdmin bool) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin {
		isOwner, err := s.venService.IsOwner(ctx, c.VenueID, deleterUserID)
		if err != nil {
			return err
		}
		if !isOwner {
			return ErrPermissionDenied
		}
	}

	return s.repo.Delete(ctx, id)
}
