package venue

import (
	"context"
	"strings"
	"time"
)

// CreateRequest carries data to create a venue.
type CreateRequest struct {
	OwnerID     string
	Name        string
	Address     string
	Description string
	OpenTime    string
	CloseTime   string
	Amenities   []string
	Longitude   float64
	Latitude    float64
}

// UpdateRequest carries data for partial updates.
type UpdateRequest struct {
	Name        *string
	Address     *string
	Description *string
	OpenTime    *string
	CloseTime   *string
	Amenities   *[]string
	Longitude   *float64
	Latitude    *float64
	IsActive    *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Venue, error)
	Delete(ctx context.Context, id string, deleterUserID string, isAdmin bool) error

	// IsOwner reports whether userID owns the venue.
	IsOwner(ctx context.Context, venueID, userID string) (bool, error)

	// SetPhotoPath stores the uploaded photo path for a venue.
	SetPhotoPath(ctx context.Context, venueID, path string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validateHours checks that both times are canonical zero-padded HH:MM and
// open < close. time.Parse alone accepts "9:00"; non-padded hours stored on
// the venue break the lexicographic comparisons availability checks rely on.
func validateHours(open, close string) error {
	t1, err1 := time.Parse("15:04", open)
	t2, err2 := time.Parse("15:04", close)
	if err1 != nil || err2 != nil {
		return ErrInvalidOpeningHours
	}
	if t1.Format("15:04") != open || t2.Format("15:04") != close {
		return ErrInvalidOpeningHours
	}
	if !t1.Before(t2) {
		return ErrInvalidOpeningHours
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Venue, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if err := validateHours(req.OpenTime, req.CloseTime); err != nil {
		return nil, err
	}
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, ErrInvalidGeo
	}

	v := &Venue{
		OwnerID:     req.OwnerID,
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		Description: req.Description,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		Amenities:   req.Amenities,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && v.OwnerID != updaterUserID {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.Description != nil {
		v.Description = *req.Description
	}

	newOpen := v.OpenTime
	newClose := v.CloseTime
	if req.OpenTime != nil {
		newOpen = *req.OpenTime
	}
	if req.CloseTime != nil {
		newClose = *req.CloseTime
	}
	if req.OpenTime != nil || req.CloseTime != nil {
		if err := validateHours(newOpen, newClose); err != nil {
			return nil, err
		}
		v.OpenTime = newOpen
		v.CloseTime = newClose
	}

	if req.Amenities != nil {
		v.Amenities = *req.Amenities
	}
	if req.Longitude != nil {
		v.Longitude = *req.Longitude
	}
	if req.Latitude != nil {
		v.Latitude = *req.Latitude
	}
	if v.Latitude < -90 || v.Latitude > 90 || v.Longitude < -180 || v.Longitude > 180 {
		return nil, ErrInvalidGeo
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterUserID string, isAdmin bool) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && v.OwnerID != deleterUserID {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) IsOwner(ctx context.Context, venueID, userID string) (bool, error) {
	v, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		return false, err
	}
	return v.OwnerID == userID, nil
}

func (s *service) SetPhotoPath(ctx context.Context, venueID, path string) error {
	v, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		return err
	}
	v.PhotoPath = &path
	return s.repo.Update(ctx, v)
}
