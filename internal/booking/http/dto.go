package http

import (
	"time"

	"github.com/courtside/sportbook-backend/internal/booking"
	"github.com/courtside/sportbook-backend/internal/pkg/request"
)

type CreateBookingRequest struct {
	CourtID         string `json:"court_id" binding:"required,uuid"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime         string `json:"end_time" binding:"required,datetime=15:04"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ListBookingsRequest struct {
	request.ListParams
	Status    string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	CourtID   string `form:"court_id" binding:"omitempty,uuid"`
	DateFrom  string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=booking_date created_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=ASC DESC"`
}

type AvailabilityRequest struct {
	Date      string `form:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `form:"start_time" binding:"required,datetime=15:04"`
	EndTime   string `form:"end_time" binding:"required,datetime=15:04"`
}

type AvailabilityResponse struct {
	CourtID   string `json:"court_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type SlotsRequest struct {
	Date         string `form:"date" binding:"required,datetime=2006-01-02"`
	SlotDuration int    `form:"slot_duration" binding:"omitempty,gt=0"`
}

type SlotResponse struct {
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Available       bool    `json:"available"`
	PricePerHour    float64 `json:"price_per_hour"`
	DurationMinutes int     `json:"duration_minutes"`
}

type SlotsResponse struct {
	CourtID string         `json:"court_id"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

func NewSlotsResponse(courtID, date string, slots []booking.Slot) SlotsResponse {
	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = SlotResponse{
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			Available:       s.Available,
			PricePerHour:    s.PricePerHour,
			DurationMinutes: s.DurationMinutes,
		}
	}
	return SlotsResponse{CourtID: courtID, Date: date, Slots: items}
}

type BookingResponse struct {
	ID              string     `json:"id"`
	CourtID         string     `json:"court_id"`
	CourtName       string     `json:"court_name"`
	VenueID         string     `json:"venue_id"`
	VenueName       string     `json:"venue_name"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	DurationMinutes int        `json:"duration_minutes"`
	TotalAmount     float64    `json:"total_amount"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"payment_status"`
	CancelReason    *string    `json:"cancel_reason,omitempty"`
	CancelledBy     *string    `json:"cancelled_by,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		CourtID:         b.CourtID,
		CourtName:       b.CourtName,
		VenueID:         b.VenueID,
		VenueName:       b.VenueName,
		UserID:          b.UserID,
		UserName:        b.UserName,
		Date:            b.Date.Format(booking.DateLayout),
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationMinutes: b.DurationMinutes,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		CancelReason:    b.CancelReason,
		CancelledBy:     b.CancelledBy,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
