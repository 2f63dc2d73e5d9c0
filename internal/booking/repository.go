package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create persists a new booking. The bookings table carries a partial
	// unique index over (court_id, booking_date, start_time, end_time)
	// scoped to non-cancelled rows; when a concurrent writer wins the race
	// for the exact same interval, Create returns ErrSlotTaken.
	Create(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, b *Booking) error

	// ListForCourtDate returns the non-cancelled bookings of a court on a
	// date, ordered by start time. One query serves all candidate slots of
	// an availability computation.
	ListForCourtDate(ctx context.Context, courtID string, date time.Time) ([]*Booking, error)

	// HasOverlap checks if any non-cancelled booking for the court on the
	// date overlaps [start, end). Strict bounds on both sides.
	HasOverlap(ctx context.Context, courtID string, date time.Time, start, end string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"court_id", "venue_id", "user_id", "booking_date",
			"start_time", "end_time", "duration_minutes", "total_amount",
			"status", "payment_status",
		).
		Values(
			b.CourtID, b.VenueID, b.UserID, b.Date,
			b.StartTime, b.EndTime, b.DurationMinutes, b.TotalAmount,
			b.Status, b.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

const bookingJoinedColumns = `
	b.id, b.court_id, c.name, b.venue_id, v.name, b.user_id, COALESCE(u.display_name, u.email),
	b.booking_date, b.start_time, b.end_time, b.duration_minutes, b.total_amount,
	b.status, b.payment_status, b.cancel_reason, b.cancelled_by, b.cancelled_at,
	b.created_at, b.updated_at`

func scanJoinedBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	dest := []any{
		&b.ID, &b.CourtID, &b.CourtName, &b.VenueID, &b.VenueName, &b.UserID, &b.UserName,
		&b.Date, &b.StartTime, &b.EndTime, &b.DurationMinutes, &b.TotalAmount,
		&b.Status, &b.PaymentStatus, &b.CancelReason, &b.CancelledBy, &b.CancelledAt,
		&b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT ` + bookingJoinedColumns + `
		FROM public.bookings b
		JOIN public.courts c ON b.court_id = c.id
		JOIN public.venues v ON b.venue_id = v.id
		JOIN public.users u ON b.user_id = u.id
		WHERE b.id = $1
	`
	b, err := scanJoinedBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.court_id", "c.name", "b.venue_id", "v.name", "b.user_id", "COALESCE(u.display_name, u.email)",
		"b.booking_date", "b.start_time", "b.end_time", "b.duration_minutes", "b.total_amount",
		"b.status", "b.payment_status", "b.cancel_reason", "b.cancelled_by", "b.cancelled_at",
		"b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.courts c ON b.court_id = c.id").
		Join("public.venues v ON b.venue_id = v.id").
		Join("public.users u ON b.user_id = u.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.CourtID != "" {
		query = query.Where(squirrel.Eq{"b.court_id": filter.CourtID})
	}
	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"b.venue_id": filter.VenueID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"b.booking_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.booking_date": *filter.DateTo})
	}

	// Sorting
	orderBy := "b.booking_date"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}

	query = query.OrderBy(orderBy+" "+orderDir, "b.start_time ASC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanJoinedBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", b.Status).
		Set("payment_status", b.PaymentStatus).
		Set("cancel_reason", b.CancelReason).
		Set("cancelled_by", b.CancelledBy).
		Set("cancelled_at", b.CancelledAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListForCourtDate(ctx context.Context, courtID string, date time.Time) ([]*Booking, error) {
	const query = `
		SELECT id, court_id, venue_id, user_id, booking_date, start_time, end_time,
			duration_minutes, total_amount, status, payment_status
		FROM public.bookings
		WHERE court_id = $1 AND booking_date = $2 AND status <> 'cancelled'
		ORDER BY start_time
	`
	rows, err := r.pool.Query(ctx, query, courtID, date)
	if err != nil {
		return nil, fmt.Errorf("list court-date bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.CourtID, &b.VenueID, &b.UserID, &b.Date, &b.StartTime, &b.EndTime,
			&b.DurationMinutes, &b.TotalAmount, &b.Status, &b.PaymentStatus,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, courtID string, date time.Time, start, end string) (bool, error) {
	// Overlap: (NewStart < ExistingEnd) AND (NewEnd > ExistingStart).
	// Cancelled rows never count.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}
