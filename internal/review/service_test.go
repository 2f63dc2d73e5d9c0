package review

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/sportbook-backend/internal/booking"
	"github.com/courtside/sportbook-backend/internal/venue"
)

// memRepository is an in-memory Repository for service tests. It enforces the
// one-review-per-user-per-venue rule the unique index provides.
type memRepository struct {
	reviews []*Review
	nextID  int
}

func (r *memRepository) Create(_ context.Context, rv *Review) error {
	for _, existing := range r.reviews {
		if existing.VenueID == rv.VenueID && existing.UserID == rv.UserID {
			return ErrAlreadyReviewed
		}
	}
	r.nextID++
	rv.ID = fmt.Sprintf("review-%d", r.nextID)
	rv.CreatedAt = time.Now().UTC()
	rv.UpdatedAt = rv.CreatedAt
	copied := *rv
	r.reviews = append(r.reviews, &copied)
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id string) (*Review, error) {
	for _, rv := range r.reviews {
		if rv.ID == id {
			copied := *rv
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepository) List(_ context.Context, filter Filter) ([]*Review, int, error) {
	var out []*Review
	for _, rv := range r.reviews {
		if filter.VenueID != "" && rv.VenueID != filter.VenueID {
			continue
		}
		if filter.UserID != "" && rv.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && string(rv.Status) != filter.Status {
			continue
		}
		copied := *rv
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *memRepository) UpdateStatus(_ context.Context, id string, status ModerationStatus) error {
	for _, rv := range r.reviews {
		if rv.ID == id {
			rv.Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (r *memRepository) Delete(_ context.Context, id string) error {
	for i, rv := range r.reviews {
		if rv.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memRepository) AverageRating(_ context.Context, venueID string) (float64, int, error) {
	var sum, count int
	for _, rv := range r.reviews {
		if rv.VenueID == venueID && rv.Status == ModerationApproved {
			sum += rv.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type stubVenueService struct {
	venues map[string]*venue.Venue
}

func (s *stubVenueService) GetByID(_ context.Context, id string) (*venue.Venue, error) {
	v, ok := s.venues[id]
	if !ok {
		return nil, venue.ErrNotFound
	}
	return v, nil
}

func (s *stubVenueService) Create(context.Context, venue.CreateRequest) (*venue.Venue, error) {
	panic("not used")
}
func (s *stubVenueService) List(context.Context, venue.Filter) ([]*venue.Venue, int, error) {
	panic("not used")
}
func (s *stubVenueService) Update(context.Context, string, venue.UpdateRequest, string, bool) (*venue.Venue, error) {
	panic("not used")
}
func (s *stubVenueService) Delete(context.Context, string, string, bool) error {
	panic("not used")
}
func (s *stubVenueService) IsOwner(context.Context, string, string) (bool, error) {
	panic("not used")
}
func (s *stubVenueService) SetPhotoPath(context.Context, string, string) error {
	panic("not used")
}

// stubBookingService reports which users completed a booking at which venue.
type stubBookingService struct {
	booking.Service
	completed map[string]string // userID -> venueID
}

func (s *stubBookingService) ListForUser(_ context.Context, userID string, filter booking.Filter) ([]*booking.Booking, int, error) {
	if venueID, ok := s.completed[userID]; ok && venueID == filter.VenueID &&
		filter.Status == string(booking.StatusCompleted) {
		return []*booking.Booking{{}}, 1, nil
	}
	return nil, 0, nil
}

const (
	reviewVenueID = "6f9a2f6e-6a1e-4c57-9a52-0a1f5a4d9f10"
	reviewUserID  = "6c1f0a36-0d24-4d6a-9a3e-2f1b7c8d9e00"
	otherUserID   = "9b8a7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"
)

func newTestService() (Service, *memRepository) {
	repo := &memRepository{}
	venues := &stubVenueService{venues: map[string]*venue.Venue{
		reviewVenueID: {ID: reviewVenueID, Name: "Riverside Sports Center"},
	}}
	bookings := &stubBookingService{completed: map[string]string{
		reviewUserID: reviewVenueID,
	}}
	return NewService(repo, venues, bookings), repo
}

func TestCreateReview(t *testing.T) {
	t.Run("eligible user creates a pending review", func(t *testing.T) {
		svc, _ := newTestService()

		rv, err := svc.Create(context.Background(), CreateRequest{
			VenueID: reviewVenueID,
			UserID:  reviewUserID,
			Rating:  4,
			Comment: "  Great courts, friendly staff.  ",
		})
		require.NoError(t, err)
		assert.Equal(t, ModerationPending, rv.Status)
		assert.Equal(t, 4, rv.Rating)
		assert.Equal(t, "Great courts, friendly staff.", rv.Comment)
		assert.NotEmpty(t, rv.ID)
	})

	t.Run("rating outside 1..5 is rejected", func(t *testing.T) {
		svc, _ := newTestService()

		for _, rating := range []int{0, 6, -1} {
			_, err := svc.Create(context.Background(), CreateRequest{
				VenueID: reviewVenueID,
				UserID:  reviewUserID,
				Rating:  rating,
			})
			assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
		}
	})

	t.Run("unknown venue", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(context.Background(), CreateRequest{
			VenueID: "0e0e0e0e-0e0e-4e0e-8e0e-0e0e0e0e0e0e",
			UserID:  reviewUserID,
			Rating:  5,
		})
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("requires a completed booking at the venue", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(context.Background(), CreateRequest{
			VenueID: reviewVenueID,
			UserID:  otherUserID,
			Rating:  5,
		})
		assert.ErrorIs(t, err, ErrNotEligible)
	})

	t.Run("one review per user per venue", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(context.Background(), CreateRequest{
			VenueID: reviewVenueID,
			UserID:  reviewUserID,
			Rating:  4,
		})
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), CreateRequest{
			VenueID: reviewVenueID,
			UserID:  reviewUserID,
			Rating:  5,
		})
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
	})
}

func TestModerateReview(t *testing.T) {
	svc, _ := newTestService()

	rv, err := svc.Create(context.Background(), CreateRequest{
		VenueID: reviewVenueID,
		UserID:  reviewUserID,
		Rating:  5,
		Comment: "Spotless facilities.",
	})
	require.NoError(t, err)

	t.Run("approve makes the review public", func(t *testing.T) {
		approved, err := svc.Moderate(context.Background(), rv.ID, ModerationApproved)
		require.NoError(t, err)
		assert.Equal(t, ModerationApproved, approved.Status)

		public, total, err := svc.ListApproved(context.Background(), reviewVenueID, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, public, 1)
		assert.Equal(t, rv.ID, public[0].ID)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, err := svc.Moderate(context.Background(), rv.ID, ModerationStatus("flagged"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown review", func(t *testing.T) {
		_, err := svc.Moderate(context.Background(), "review-999", ModerationRejected)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteReview(t *testing.T) {
	create := func(t *testing.T, svc Service) *Review {
		t.Helper()
		rv, err := svc.Create(context.Background(), CreateRequest{
			VenueID: reviewVenueID,
			UserID:  reviewUserID,
			Rating:  3,
		})
		require.NoError(t, err)
		return rv
	}

	t.Run("author deletes own review", func(t *testing.T) {
		svc, _ := newTestService()
		rv := create(t, svc)

		require.NoError(t, svc.Delete(context.Background(), rv.ID, reviewUserID, false))
		_, err := svc.GetByID(context.Background(), rv.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		svc, _ := newTestService()
		rv := create(t, svc)

		err := svc.Delete(context.Background(), rv.ID, otherUserID, false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("admin deletes any review", func(t *testing.T) {
		svc, _ := newTestService()
		rv := create(t, svc)

		require.NoError(t, svc.Delete(context.Background(), rv.ID, otherUserID, true))
	})
}

func TestVenueRating(t *testing.T) {
	svc, repo := newTestService()

	rv, err := svc.Create(context.Background(), CreateRequest{
		VenueID: reviewVenueID,
		UserID:  reviewUserID,
		Rating:  5,
	})
	require.NoError(t, err)

	t.Run("pending reviews do not count", func(t *testing.T) {
		rating, err := svc.VenueRating(context.Background(), reviewVenueID)
		require.NoError(t, err)
		assert.Zero(t, rating.Count)
		assert.Zero(t, rating.Average)
	})

	t.Run("approved reviews feed the average", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(context.Background(), rv.ID, ModerationApproved))
		repo.reviews = append(repo.reviews, &Review{
			ID: "review-extra", VenueID: reviewVenueID, UserID: otherUserID,
			Rating: 3, Status: ModerationApproved,
		})

		rating, err := svc.VenueRating(context.Background(), reviewVenueID)
		require.NoError(t, err)
		assert.Equal(t, 2, rating.Count)
		assert.InDelta(t, 4.0, rating.Average, 0.001)
	})
}
