package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, v *Venue) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, v *Venue) error {
	const query = `
		INSERT INTO public.venues
			(owner_id, name, address, description, open_time, close_time, amenities, longitude, latitude, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		v.OwnerID, v.Name, v.Address, v.Description, v.OpenTime, v.CloseTime,
		v.Amenities, v.Longitude, v.Latitude, v.IsActive,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("create venue failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Venue, error) {
	const query = `
		SELECT id, owner_id, name, address, description, open_time, close_time,
			amenities, photo_path, longitude, latitude, is_active, created_at
		FROM public.venues
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var v Venue
	if err := row.Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Address, &v.Description, &v.OpenTime, &v.CloseTime,
		&v.Amenities, &v.PhotoPath, &v.Longitude, &v.Latitude, &v.IsActive, &v.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	var args []any
	queryBase := `
		SELECT id, owner_id, name, address, description, open_time, close_time,
			amenities, photo_path, longitude, latitude, is_active, created_at,
			count(*) OVER() as total_count
		FROM public.venues
		WHERE is_active = true
	`
	paramIndex := 1

	if filter.OwnerID != "" {
		queryBase += fmt.Sprintf(" AND owner_id = $%d", paramIndex)
		args = append(args, filter.OwnerID)
		paramIndex++
	}
	if filter.Keyword != "" {
		queryBase += fmt.Sprintf(" AND (name ILIKE $%d OR address ILIKE $%d)", paramIndex, paramIndex)
		args = append(args, "%"+filter.Keyword+"%")
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
		return nil, 0, fmt.Errorf("list venues failed: %w", err)
	}
	defer rows.Close()

	var result []*Venue
	var total int

	for rows.Next() {
		var v Venue
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Name, &v.Address, &v.Description, &v.OpenTime, &v.CloseTime,
			&v.Amenities, &v.PhotoPath, &v.Longitude, &v.Latitude, &v.IsActive, &v.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan venue failed: %w", err)
		}
		result = append(result, &v)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, v *Venue) error {
	const query = `
		UPDATE public.venues
		SET name = $1, address = $2, description = $3, open_time = $4, close_time = $5,
			amenities = $6, photo_path = $7, longitude = $8, latitude = $9, is_active = $10
		WHERE id = $11
	`
	ct, err := r.pool.Exec(ctx, query,
		v.Name, v.Address, v.Description, v.OpenTime, v.CloseTime,
		v.Amenities, v.PhotoPath, v.Longitude, v.Latitude, v.IsActive, v.ID,
	)
	if err != nil {
		return fmt.Errorf("update venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	// Soft delete: bookings keep their venue reference for history.
	const query = `UPDATE public.venues SET is_active = false WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
