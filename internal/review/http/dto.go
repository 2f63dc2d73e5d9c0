package http

import (
	"time"

	"github.com/courtside/sportbook-backend/internal/pkg/request"
	"github.com/courtside/sportbook-backend/internal/review"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

type ModerateReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

type ListReviewsRequest struct {
	request.ListParams
}

type ModerationListRequest struct {
	request.ListParams
	VenueID string `form:"venue_id" binding:"omitempty,uuid"`
	Status  string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func NewReviewResponse(rv *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:        rv.ID,
		VenueID:   rv.VenueID,
		UserID:    rv.UserID,
		UserName:  rv.UserName,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		Status:    string(rv.Status),
		CreatedAt: rv.CreatedAt,
	}
}

type RatingResponse struct {
	VenueID string  `json:"venue_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
