package http

import (
	"time"

	"github.com/courtside/sportbook-backend/internal/court"
	"github.com/courtside/sportbook-backend/internal/pkg/request"
)

type IntervalBody struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type DayScheduleBody struct {
	IsOpen    bool           `json:"is_open"`
	Intervals []IntervalBody `json:"intervals"`
}

type PeakHoursBody struct {
	Start        string  `json:"start" binding:"required"`
	End          string  `json:"end" binding:"required"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gt=0"`
}

type CreateCourtRequest struct {
	VenueID      string                     `json:"venue_id" binding:"required,uuid"`
	Name         string                     `json:"name" binding:"required,max=120"`
	Sport        string                     `json:"sport" binding:"required"`
	CourtType    string                     `json:"court_type" binding:"required,oneof=indoor outdoor"`
	PricePerHour float64                    `json:"price_per_hour" binding:"required,gt=0"`
	Peak         *PeakHoursBody             `json:"peak_hours"`
	Schedule     map[string]DayScheduleBody `json:"schedule"`
}

type UpdateCourtRequest struct {
	Name         *string                    `json:"name"`
	Sport        *string                    `json:"sport"`
	CourtType    *string                    `json:"court_type" binding:"omitempty,oneof=indoor outdoor"`
	PricePerHour *float64                   `json:"price_per_hour" binding:"omitempty,gt=0"`
	Peak         *PeakHoursBody             `json:"peak_hours"`
	Schedule     map[string]DayScheduleBody `json:"schedule"`
	IsActive     *bool                      `json:"is_active"`
}

type ListCourtsRequest struct {
	request.ListParams
	VenueID   string `form:"venue_id" binding:"omitempty,uuid"`
	Sport     string `form:"sport"`
	CourtType string `form:"court_type" binding:"omitempty,oneof=indoor outdoor"`
}

type CourtResponse struct {
	ID           string                       `json:"id"`
	VenueID      string                       `json:"venue_id"`
	Name         string                       `json:"name"`
	Sport        string                       `json:"sport"`
	CourtType    string                       `json:"court_type"`
	PricePerHour float64                      `json:"price_per_hour"`
	Peak         *court.PeakHours             `json:"peak_hours,omitempty"`
	Schedule     map[string]court.DaySchedule `json:"schedule"`
	IsActive     bool                         `json:"is_active"`
	CreatedAt    time.Time                    `json:"created_at"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:           c.ID,
		VenueID:      c.VenueID,
		Name:         c.Name,
		Sport:        string(c.Sport),
		CourtType:    string(c.CourtType),
		PricePerHour: c.PricePerHour,
		Peak:         c.Peak,
		Schedule:     c.Schedule,
		IsActive:     c.IsActive,
		CreatedAt:    c.CreatedAt,
	}
}

// CourtTag is the minimal court reference embedded in other responses.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toWeekSchedule(body map[string]DayScheduleBody) court.WeekSchedule {
	if body == nil {
		return nil
	}
	w := make(court.WeekSchedule, len(body))
	for day, ds := range body {
		intervals := make([]court.Interval, len(ds.Intervals))
		for i, iv := range ds.Intervals {
			intervals[i] = court.Interval{Start: iv.Start, End: iv.End}
		}
		w[day] = court.DaySchedule{IsOpen: ds.IsOpen, Intervals: intervals}
	}
	return w
}

func toPeakHours(body *PeakHoursBody) *court.PeakHours {
	if body == nil {
		return nil
	}
	return &court.PeakHours{
		Start:        body.Start,
		End:          body.End,
		PricePerHour: body.PricePerHour,
	}
}
