package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/courtside/sportbook-backend/internal/auth"
	"github.com/courtside/sportbook-backend/internal/pkg/response"
	"github.com/courtside/sportbook-backend/internal/review"
	"github.com/courtside/sportbook-backend/internal/user"
)

type Handler struct {
	service     review.Service
	userService user.Service
}

func NewHandler(service review.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

func (h *Handler) currentUser(c *gin.Context) *user.User {
	userID := auth.GetUserID(c)
	if userID == "" {
		return nil
	}
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return nil
	}
	return u
}

// Create posts a review for a venue.
// POST /venues/:id/reviews
func (h *Handler) Create(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), review.CreateRequest{
		VenueID: venueID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewReviewResponse(created))
}

// List lists a venue's approved reviews.
// GET /venues/:id/reviews
func (h *Handler) List(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	reviews, total, err := h.service.ListApproved(c.Request.Context(), venueID, req.Page, req.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}

	items := make([]ReviewResponse, len(reviews))
	for i, rv := range reviews {
		items[i] = NewReviewResponse(rv)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// Rating returns a venue's approved rating summary.
// GET /venues/:id/rating
func (h *Handler) Rating(c *gin.Context) {
	venueID := c.Param("id")
	if _, err := uuid.Parse(venueID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rating, err := h.service.VenueRating(c.Request.Context(), venueID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute rating"})
		return
	}

	c.JSON(http.StatusOK, RatingResponse{
		VenueID: venueID,
		Average: rating.Average,
		Count:   rating.Count,
	})
}

// ListForModeration lists reviews by status. Admin only.
// GET /reviews
func (h *Handler) ListForModeration(c *gin.Context) {
	var req ModerationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	reviews, total, err := h.service.ListForModeration(c.Request.Context(), review.Filter{
		VenueID:  req.VenueID,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}

	items := make([]ReviewResponse, len(reviews))
	for i, rv := range reviews {
		items[i] = NewReviewResponse(rv)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// Moderate sets a review's moderation status. Admin only.
// PATCH /reviews/:id
func (h *Handler) Moderate(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	moderated, err := h.service.Moderate(c.Request.Context(), id, review.ModerationStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewReviewResponse(moderated))
}

// Delete removes a review. The author or an admin may delete.
// DELETE /reviews/:id
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	u := h.currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, u.ID, u.IsAdmin()); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
