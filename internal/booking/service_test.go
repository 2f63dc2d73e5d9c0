package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/sportbook-backend/internal/court"
	"github.com/courtside/sportbook-backend/internal/venue"
)

// memRepository is an in-memory Repository for service tests. It reproduces
// the ledger semantics the SQL layer provides, including the non-cancelled
// overlap rule.
type memRepository struct {
	bookings []*Booking
	nextID   int
}

func (r *memRepository) Create(_ context.Context, b *Booking) error {
	for _, existing := range r.bookings {
		if existing.Status == StatusCancelled {
			continue
		}
		if existing.CourtID == b.CourtID && existing.Date.Equal(b.Date) &&
			existing.StartTime == b.StartTime && existing.EndTime == b.EndTime {
			return ErrSlotTaken
		}
	}
	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	copied := *b
	r.bookings = append(r.bookings, &copied)
	return nil
}

func (r *memRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepository) List(_ context.Context, filter Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.VenueID != "" && b.VenueID != filter.VenueID {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *memRepository) Update(_ context.Context, b *Booking) error {
	for i, existing := range r.bookings {
		if existing.ID == b.ID {
			copied := *b
			r.bookings[i] = &copied
			return nil
		}
	}
	return ErrNotFound
}

func (r *memRepository) ListForCourtDate(_ context.Context, courtID string, date time.Time) ([]*Booking, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if b.CourtID == courtID && b.Date.Equal(date) && b.Status != StatusCancelled {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memRepository) HasOverlap(_ context.Context, courtID string, date time.Time, start, end string) (bool, error) {
	for _, b := range r.bookings {
		if b.CourtID != courtID || !b.Date.Equal(date) || b.Status == StatusCancelled {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

type stubCourtService struct {
	courts map[string]*court.Court
}

func (s *stubCourtService) GetByID(_ context.Context, id string) (*court.Court, error) {
	c, ok := s.courts[id]
	if !ok {
		return nil, court.ErrNotFound
	}
	return c, nil
}

func (s *stubCourtService) Create(context.Context, court.CreateRequest, string, bool) (*court.Court, error) {
	panic("not used")
}
func (s *stubCourtService) List(context.Context, court.Filter) ([]*court.Court, int, error) {
	panic("not used")
}
func (s *stubCourtService) Update(context.Context, string, court.UpdateRequest, string, bool) (*court.Court, error) {
	panic("not used")
}
func (s *stubCourtService) Delete(context.Context, string, string, bool) error {
	panic("not used")
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

func (s *stubVenueService) IsOwner(ctx context.Context, venueID, userID string) (bool, error) {
	v, err := s.GetByID(ctx, venueID)
	if err != nil {
		return false, err
	}
	return v.OwnerID == userID, nil
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
func (s *stubVenueService) SetPhotoPath(context.Context, string, string) error {
	panic("not used")
}

type capturingPublisher struct {
	events []struct {
		Key   string
		Event Event
	}
}

func (p *capturingPublisher) Publish(_ context.Context, key string, event Event) error {
	p.events = append(p.events, struct {
		Key   string
		Event Event
	}{key, event})
	return nil
}

const (
	testVenueID = "11111111-1111-1111-1111-111111111111"
	testCourtID = "22222222-2222-2222-2222-222222222222"
	testOwnerID = "owner-1"
	testUserID  = "user-1"
)

// allWeekOpen builds a schedule where every day uses the same interval.
func allWeekOpen(start, end string) court.WeekSchedule {
	w := court.WeekSchedule{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		w[day] = court.DaySchedule{IsOpen: true, Intervals: []court.Interval{{Start: start, End: end}}}
	}
	return w
}

func newTestService(schedule court.WeekSchedule, peak *court.PeakHours) (Service, *memRepository, *capturingPublisher) {
	repo := &memRepository{}
	pub := &capturingPublisher{}
	courts := &stubCourtService{courts: map[string]*court.Court{
		testCourtID: {
			ID:           testCourtID,
			VenueID:      testVenueID,
			Name:         "Court 1",
			PricePerHour: 500,
			Peak:         peak,
			Schedule:     schedule,
		},
	}}
	venues := &stubVenueService{venues: map[string]*venue.Venue{
		testVenueID: {
			ID:        testVenueID,
			OwnerID:   testOwnerID,
			OpenTime:  "08:00",
			CloseTime: "20:00",
		},
	}}
	return NewService(repo, courts, venues, pub), repo, pub
}

// futureDate returns a date far enough ahead that cancellation windows never
// interfere with slot tests.
func futureDate(t *testing.T) string {
	t.Helper()
	return time.Now().UTC().AddDate(0, 1, 0).Format(DateLayout)
}

func TestComputeSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("open day yields hourly slots", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		slots, err := svc.ComputeSlots(ctx, testCourtID, futureDate(t), 60)
		require.NoError(t, err)
		require.Len(t, slots, 16)
		for _, s := range slots {
			assert.True(t, s.Available)
			assert.Equal(t, 500.0, s.PricePerHour)
		}
	})

	t.Run("booking blocks overlapping slots", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		date := futureDate(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: date,
			StartTime: "14:00", EndTime: "16:00", DurationMinutes: 120,
		})
		require.NoError(t, err)

		slots, err := svc.ComputeSlots(ctx, testCourtID, date, 60)
		require.NoError(t, err)

		blocked := 0
		for _, s := range slots {
			if !s.Available {
				blocked++
				assert.Contains(t, []string{"14:00", "15:00"}, s.StartTime)
			}
		}
		assert.Equal(t, 2, blocked)
	})

	t.Run("closed day yields empty list", func(t *testing.T) {
		schedule := allWeekOpen("06:00", "22:00")
		schedule["sunday"] = court.DaySchedule{IsOpen: false}
		svc, _, _ := newTestService(schedule, nil)

		// Next Sunday from a fixed future anchor.
		day := time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC) // a Sunday
		slots, err := svc.ComputeSlots(ctx, testCourtID, day.Format(DateLayout), 60)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("repeated reads do not mutate state", func(t *testing.T) {
		svc, repo, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		date := futureDate(t)

		first, err := svc.ComputeSlots(ctx, testCourtID, date, 60)
		require.NoError(t, err)
		second, err := svc.ComputeSlots(ctx, testCourtID, date, 60)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Empty(t, repo.bookings)
	})

	t.Run("unknown court", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		_, err := svc.ComputeSlots(ctx, "33333333-3333-3333-3333-333333333333", futureDate(t), 60)
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)

		_, err := svc.ComputeSlots(ctx, testCourtID, "03/02/2026", 60)
		assert.ErrorIs(t, err, ErrInvalidDate)

		_, err = svc.ComputeSlots(ctx, testCourtID, futureDate(t), 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)

		_, err = svc.ComputeSlots(ctx, testCourtID, futureDate(t), -30)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending booking with computed amount", func(t *testing.T) {
		svc, _, pub := newTestService(allWeekOpen("06:00", "22:00"), nil)

		b, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: futureDate(t),
			StartTime: "14:00", EndTime: "16:00", DurationMinutes: 120,
		})
		require.NoError(t, err)

		assert.Equal(t, StatusPending, b.Status)
		assert.Equal(t, PaymentPending, b.PaymentStatus)
		assert.Equal(t, 1000.0, b.TotalAmount) // 500/h * 2h
		assert.NotEmpty(t, b.ID)

		require.Len(t, pub.events, 1)
		assert.Equal(t, EventCreated, pub.events[0].Key)
	})

	t.Run("amount rounds to whole units", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)

		b, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: futureDate(t),
			StartTime: "14:00", EndTime: "14:50", DurationMinutes: 50,
		})
		require.NoError(t, err)
		// 500 * 50/60 = 416.66..., rounded to 417.
		assert.Equal(t, 417.0, b.TotalAmount)
	})

	t.Run("peak rate applies when fully inside peak window", func(t *testing.T) {
		peak := &court.PeakHours{Start: "17:00", End: "21:00", PricePerHour: 800}
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), peak)
		date := futureDate(t)

		inPeak, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: date,
			StartTime: "18:00", EndTime: "20:00", DurationMinutes: 120,
		})
		require.NoError(t, err)
		assert.Equal(t, 1600.0, inPeak.TotalAmount)

		straddling, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: date,
			StartTime: "16:00", EndTime: "18:00", DurationMinutes: 120,
		})
		require.NoError(t, err)
		assert.Equal(t, 1000.0, straddling.TotalAmount)
	})

	t.Run("overlapping booking rejected", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		date := futureDate(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: date,
			StartTime: "14:00", EndTime: "16:00", DurationMinutes: 120,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateRequest{
			UserID: "user-2", CourtID: testCourtID, Date: date,
			StartTime: "15:00", EndTime: "17:00", DurationMinutes: 120,
		})
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("adjacent booking allowed", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		date := futureDate(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: date,
			StartTime: "14:00", EndTime: "16:00", DurationMinutes: 120,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateRequest{
			UserID: "user-2", CourtID: testCourtID, Date: date,
			StartTime: "16:00", EndTime: "17:00", DurationMinutes: 60,
		})
		assert.NoError(t, err)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		date := futureDate(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: date,
			StartTime: "16:00", EndTime: "14:00", DurationMinutes: 120,
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		_, err = svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: date,
			StartTime: "14:00", EndTime: "14:00", DurationMinutes: 0,
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		_, err = svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: date,
			StartTime: "14:00", EndTime: "16:00", DurationMinutes: 90,
		})
		assert.ErrorIs(t, err, ErrDurationMismatch)

		_, err = svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: "not-a-date",
			StartTime: "14:00", EndTime: "16:00", DurationMinutes: 120,
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("non-padded times are rejected", func(t *testing.T) {
		// "9:00" must never reach the ledger: a non-padded value stored there
		// would defeat the lexicographic overlap comparisons and let a real
		// conflict through.
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		date := futureDate(t)

		_, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: date,
			StartTime: "9:00", EndTime: "11:00", DurationMinutes: 120,
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		_, err = svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: date,
			StartTime: "09:00", EndTime: "9:30", DurationMinutes: 30,
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		_, err = svc.IsAvailable(ctx, testCourtID, date, "9:00", "11:00")
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc Service) *Booking {
		t.Helper()
		b, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: futureDate(t),
			StartTime: "14:00", EndTime: "16:00", DurationMinutes: 120,
		})
		require.NoError(t, err)
		return b
	}

	t.Run("owner cancels future booking", func(t *testing.T) {
		svc, _, pub := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		cancelled, err := svc.Cancel(ctx, b.ID, CancelRequest{
			RequesterID: testUserID, Reason: "schedule change",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, cancelled.Status)
		require.NotNil(t, cancelled.CancelReason)
		assert.Equal(t, "schedule change", *cancelled.CancelReason)
		assert.NotNil(t, cancelled.CancelledAt)

		assert.Equal(t, EventCancelled, pub.events[len(pub.events)-1].Key)
	})

	t.Run("cancelled slots become available again", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		_, err := svc.Cancel(ctx, b.ID, CancelRequest{RequesterID: testUserID})
		require.NoError(t, err)

		slots, err := svc.ComputeSlots(ctx, testCourtID, b.Date.Format(DateLayout), 60)
		require.NoError(t, err)
		for _, s := range slots {
			assert.True(t, s.Available)
		}

		// The freed slot can be rebooked.
		_, err = svc.Create(ctx, CreateRequest{
			UserID: "user-2", CourtID: testCourtID, Date: b.Date.Format(DateLayout),
			StartTime: "14:00", EndTime: "16:00", DurationMinutes: 120,
		})
		assert.NoError(t, err)
	})

	t.Run("double cancel rejected", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		_, err := svc.Cancel(ctx, b.ID, CancelRequest{RequesterID: testUserID})
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, b.ID, CancelRequest{RequesterID: testUserID})
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("other users cannot cancel", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		_, err := svc.Cancel(ctx, b.ID, CancelRequest{RequesterID: "someone-else"})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("admin can cancel any booking", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		cancelled, err := svc.Cancel(ctx, b.ID, CancelRequest{
			RequesterID: "admin-1", IsAdmin: true,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, cancelled.Status)
	})

	t.Run("past booking cannot be cancelled", func(t *testing.T) {
		svc, repo, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		past := &Booking{
			CourtID: testCourtID, VenueID: testVenueID, UserID: testUserID,
			Date:      time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour),
			StartTime: "14:00", EndTime: "16:00", DurationMinutes: 120,
			Status: StatusConfirmed, PaymentStatus: PaymentPaid,
		}
		require.NoError(t, repo.Create(ctx, past))

		_, err := svc.Cancel(ctx, past.ID, CancelRequest{RequesterID: testUserID})
		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		svc, repo, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		stored, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		stored.Status = StatusCompleted
		require.NoError(t, repo.Update(ctx, stored))

		_, err = svc.Cancel(ctx, b.ID, CancelRequest{RequesterID: testUserID})
		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("paid booking is marked refunded", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		_, err := svc.HandlePaymentResult(ctx, b.ID, true)
		require.NoError(t, err)

		cancelled, err := svc.Cancel(ctx, b.ID, CancelRequest{RequesterID: testUserID})
		require.NoError(t, err)
		assert.Equal(t, PaymentRefunded, cancelled.PaymentStatus)
	})
}

func TestPaymentAndCompletion(t *testing.T) {
	ctx := context.Background()

	create := func(t *testing.T, svc Service) *Booking {
		t.Helper()
		b, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: futureDate(t),
			StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60,
		})
		require.NoError(t, err)
		return b
	}

	t.Run("successful payment confirms booking", func(t *testing.T) {
		svc, _, pub := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		confirmed, err := svc.HandlePaymentResult(ctx, b.ID, true)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, confirmed.Status)
		assert.Equal(t, PaymentPaid, confirmed.PaymentStatus)
		assert.Equal(t, EventConfirmed, pub.events[len(pub.events)-1].Key)
	})

	t.Run("failed payment keeps booking pending", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		failed, err := svc.HandlePaymentResult(ctx, b.ID, false)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, failed.Status)
		assert.Equal(t, PaymentFailed, failed.PaymentStatus)
	})

	t.Run("confirmed booking can be completed", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		_, err := svc.HandlePaymentResult(ctx, b.ID, true)
		require.NoError(t, err)

		completed, err := svc.Complete(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, completed.Status)
	})

	t.Run("pending booking cannot be completed", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)
		b := create(t, svc)

		_, err := svc.Complete(ctx, b.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestVisibility(t *testing.T) {
	ctx := context.Background()

	t.Run("venue owner sees venue bookings", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)

		_, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: futureDate(t),
			StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60,
		})
		require.NoError(t, err)

		bookings, total, err := svc.ListForVenue(ctx, testVenueID, testOwnerID, false, Filter{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, bookings, 1)
	})

	t.Run("non-owner denied venue bookings", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)

		_, _, err := svc.ListForVenue(ctx, testVenueID, "stranger", false, Filter{})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("booking visible to its user, owner and admin", func(t *testing.T) {
		svc, _, _ := newTestService(allWeekOpen("06:00", "22:00"), nil)

		b, err := svc.Create(ctx, CreateRequest{
			UserID: testUserID, CourtID: testCourtID, Date: futureDate(t),
			StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60,
		})
		require.NoError(t, err)

		_, err = svc.GetByID(ctx, b.ID, testUserID, false)
		assert.NoError(t, err)

		_, err = svc.GetByID(ctx, b.ID, testOwnerID, false)
		assert.NoError(t, err)

		_, err = svc.GetByID(ctx, b.ID, "admin-1", true)
		assert.NoError(t, err)

		_, err = svc.GetByID(ctx, b.ID, "stranger", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}
