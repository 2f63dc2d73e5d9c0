package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create persists a review. The table enforces one review per user per
	// venue; a duplicate returns ErrAlreadyReviewed.
	Create(ctx context.Context, rv *Review) error

	GetByID(ctx context.Context, id string) (*Review, error)
	List(ctx context.Context, filter Filter) ([]*Review, int, error)
	UpdateStatus(ctx context.Context, id string, status ModerationStatus) error
	Delete(ctx context.Context, id string) error

	// AverageRating returns the mean approved rating of a venue and the
	// number of approved reviews. Zero count means no rating yet.
	AverageRating(ctx context.Context, venueID string) (float64, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rv *Review) error {
	const query = `
		INSERT INTO public.reviews (venue_id, user_id, rating, comment, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		rv.VenueID, rv.UserID, rv.Rating, rv.Comment, rv.Status,
	).Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyReviewed
		}
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	const query = `
		SELECT r.id, r.venue_id, r.user_id, COALESCE(u.display_name, u.email),
			r.rating, r.comment, r.status, r.created_at, r.updated_at
		FROM public.reviews r
		JOIN public.users u ON r.user_id = u.id
		WHERE r.id = $1
	`
	var rv Review
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.VenueID, &rv.UserID, &rv.UserName,
		&rv.Rating, &rv.Comment, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review failed: %w", err)
	}
	return &rv, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Review, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.venue_id", "r.user_id", "COALESCE(u.display_name, u.email)",
		"r.rating", "r.comment", "r.status", "r.created_at", "r.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.reviews r").
		Join("public.users u ON r.user_id = u.id").
		OrderBy("r.created_at DESC")

	if filter.VenueID != "" {
		query = query.Where(squirrel.Eq{"r.venue_id": filter.VenueID})
	}
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"r.user_id": filter.UserID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": filter.Status})
	}

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
		return nil, 0, fmt.Errorf("build list reviews query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	var total int

	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.VenueID, &rv.UserID, &rv.UserName,
			&rv.Rating, &rv.Comment, &rv.Status, &rv.CreatedAt, &rv.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, &rv)
	}

	return reviews, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status ModerationStatus) error {
	const query = `
		UPDATE public.reviews
		SET status = $2, updated_at = now()
		WHERE id = $1
	`
	ct, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update review status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM public.reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) AverageRating(ctx context.Context, venueID string) (float64, int, error) {
	const query = `
		SELECT COALESCE(avg(rating), 0), count(*)
		FROM public.reviews
		WHERE venue_id = $1 AND status = 'approved'
	`
	var avg float64
	var count int
	if err := r.pool.QueryRow(ctx, query, venueID).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("average rating failed: %w", err)
	}
	return avg, count, nil
}
