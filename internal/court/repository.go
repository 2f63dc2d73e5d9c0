package court

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	Update(ctx context.Context, c *Court) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Court) error {
	scheduleJSON, peakJSON, err := marshalCourtDocs(c)
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO public.courts (venue_id, name, sport, court_type, price_per_hour, peak_hours, schedule, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err = r.pool.QueryRow(ctx, query,
		c.VenueID, c.Name, c.Sport, c.CourtType, c.PricePerHour, peakJSON, scheduleJSON, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create court failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	const query = `
		SELECT id, venue_id, name, sport, court_type, price_per_hour, peak_hours, schedule, is_active, created_at
		FROM public.courts
		WHERE id = $1
	`
	return scanCourt(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	var args []any
	queryBase := `
		SELECT id, venue_id, name, sport, court_type, price_per_hour, peak_hours, schedule, is_active, created_at,
			count(*) OVER() as total_count
		FROM public.courts
		WHERE is_active = true
	`
	paramIndex := 1

	if filter.VenueID != "" {
		queryBase += fmt.Sprintf(" AND venue_id = $%d", paramIndex)
		args = append(args, filter.VenueID)
		paramIndex++
	}
	if filter.Sport != "" {
		queryBase += fmt.Sprintf(" AND sport = $%d", paramIndex)
		args = append(args, filter.Sport)
		paramIndex++
	}
	if filter.CourtType != "" {
		queryBase += fmt.Sprintf(" AND court_type = $%d", paramIndex)
		args = append(args, filter.CourtType)
		paramIndex++
	}

	queryBase += " ORDER BY created_at DESC"

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBase += fmt.Sprintf(" LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, filter.PageSize, offset)

	rows, err := r.pool.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var result []*Court
	var total int

	for rows.Next() {
		var c Court
		var peakJSON, scheduleJSON []byte
		if err := rows.Scan(
			&c.ID, &c.VenueID, &c.Name, &c.Sport, &c.CourtType, &c.PricePerHour,
			&peakJSON, &scheduleJSON, &c.IsActive, &c.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan court failed: %w", err)
		}
		if err := unmarshalCourtDocs(&c, peakJSON, scheduleJSON); err != nil {
			return nil, 0, err
		}
		result = append(result, &c)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Court) error {
	scheduleJSON, peakJSON, err := marshalCourtDocs(c)
	if err != nil {
		return err
	}

	const query = `
		UPDATE public.courts
		SET name = $1, sport = $2, court_type = $3, price_per_hour = $4, peak_hours = $5, schedule = $6, is_active = $7
		WHERE id = $8
	`
	ct, err := r.pool.Exec(ctx, query,
		c.Name, c.Sport, c.CourtType, c.PricePerHour, peakJSON, scheduleJSON, c.IsActive, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	// Soft delete: bookings keep their court reference for history.
	const query = `UPDATE public.courts SET is_active = false WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCourt(row pgx.Row) (*Court, error) {
	var c Court
	var peakJSON, scheduleJSON []byte
	if err := row.Scan(
		&c.ID, &c.VenueID, &c.Name, &c.Sport, &c.CourtType, &c.PricePerHour,
		&peakJSON, &scheduleJSON, &c.IsActive, &c.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}
	if err := unmarshalCourtDocs(&c, peakJSON, scheduleJSON); err != nil {
		return nil, err
	}
	return &c, nil
}

func marshalCourtDocs(c *Court) (scheduleJSON, peakJSON []byte, err error) {
	scheduleJSON, err = json.Marshal(c.Schedule)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal schedule failed: %w", err)
	}
	if c.Peak != nil {
		peakJSON, err = json.Marshal(c.Peak)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal peak hours failed: %w", err)
		}
	}
	return scheduleJSON, peakJSON, nil
}

func unmarshalCourtDocs(c *Court, peakJSON, scheduleJSON []byte) error {
	if len(scheduleJSON) > 0 {
		if err := json.Unmarshal(scheduleJSON, &c.Schedule); err != nil {
			return fmt.Errorf("unmarshal schedule failed: %w", err)
		}
	}
	if len(peakJSON) > 0 {
		var peak PeakHours
		if err := json.Unmarshal(peakJSON, &peak); err != nil {
			return fmt.Errorf("unmarshal peak hours failed: %w", err)
		}
		c.Peak = &peak
	}
	return nil
}
