package http

import (
	"time"

	"github.com/courtside/sportbook-backend/internal/pkg/request"
	"github.com/courtside/sportbook-backend/internal/venue"
)

type CreateVenueRequest struct {
	Name        string   `json:"name" binding:"required,max=120"`
	Address     string   `json:"address" binding:"required,max=255"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
	OpenTime    string   `json:"open_time" binding:"required"`
	CloseTime   string   `json:"close_time" binding:"required"`
	Amenities   []string `json:"amenities"`
	Longitude   float64  `json:"longitude"`
	Latitude    float64  `json:"latitude"`
}

type UpdateVenueRequest struct {
	Name        *string   `json:"name"`
	Address     *string   `json:"address"`
	Description *string   `json:"description"`
	OpenTime    *string   `json:"open_time"`
	CloseTime   *string   `json:"close_time"`
	Amenities   *[]string `json:"amenities"`
	Longitude   *float64  `json:"longitude"`
	Latitude    *float64  `json:"latitude"`
	IsActive    *bool     `json:"is_active"`
}

type ListVenuesRequest struct {
	request.ListParams
	OwnerID string `form:"owner_id" binding:"omitempty,uuid"`
	Keyword string `form:"keyword"`
}

type VenueResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	OpenTime    string    `json:"open_time"`
	CloseTime   string    `json:"close_time"`
	Amenities   []string  `json:"amenities"`
	PhotoPath   *string   `json:"photo_path"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewVenueResponse(v *venue.Venue) VenueResponse {
	return VenueResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Name:        v.Name,
		Address:     v.Address,
		Description: v.Description,
		OpenTime:    v.OpenTime,
		CloseTime:   v.CloseTime,
		Amenities:   v.Amenities,
		PhotoPath:   v.PhotoPath,
		Longitude:   v.Longitude,
		Latitude:    v.Latitude,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
	}
}

// VenueTag is the minimal venue reference embedded in other responses.
type VenueTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
