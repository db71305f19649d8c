package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type OfferingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOfferingRepo(db *dbpg.DB) *OfferingRepository {
	return &OfferingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OfferingRepository) Create(ctx context.Context, o *domain.Offering) error {
	query := `INSERT INTO offerings
				  (id, title, description, kind, capacity, tiered_pricing, series_key, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		o.ID, o.Title, o.Description, o.Kind, o.Capacity, o.TieredPricing, o.SeriesKey, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert offering: %w", err)
	}

	return nil
}

func (r *OfferingRepository) GetByID(ctx context.Context, id string) (*domain.Offering, error) {
	query := `SELECT id, title, description, kind, capacity, tiered_pricing, series_key, created_at, updated_at
			  FROM offerings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get offering: %w", err)
	}

	var o domain.Offering
	if err = row.Scan(&o.ID, &o.Title, &o.Description, &o.Kind, &o.Capacity, &o.TieredPricing, &o.SeriesKey, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("scan offering: %w", err)
	}

	return &o, nil
}

func (r *OfferingRepository) List(ctx context.Context) ([]*domain.Offering, error) {
	query := `SELECT id, title, description, kind, capacity, tiered_pricing, series_key, created_at, updated_at
			  FROM offerings
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list offerings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Offering
	for rows.Next() {
		var o domain.Offering
		if err = rows.Scan(&o.ID, &o.Title, &o.Description, &o.Kind, &o.Capacity, &o.TieredPricing, &o.SeriesKey, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan offering: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}

func (r *OfferingRepository) Update(ctx context.Context, o *domain.Offering) error {
	query := `UPDATE offerings
			  SET title = $2, description = $3, capacity = $4, tiered_pricing = $5, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		o.ID, o.Title, o.Description, o.Capacity, o.TieredPricing,
	)
	if err != nil {
		return fmt.Errorf("update offering: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrOfferingNotFound
	}
	return nil
}

// Delete removes the offering; sessions and tiers cascade via foreign keys.
func (r *OfferingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM offerings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offering: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrOfferingNotFound
	}
	return nil
}

func (r *OfferingRepository) HasRegistrations(ctx context.Context, offeringID string) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1
				  FROM registrations g
				  JOIN sessions s ON s.id = g.session_id
				  WHERE s.offering_id = $1
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, offeringID)
	if err != nil {
		return false, fmt.Errorf("check registrations: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}
	return exists, nil
}

func (r *OfferingRepository) SetSeriesKey(ctx context.Context, offeringID string, key *int64) error {
	query := `UPDATE offerings
			  SET series_key = $2, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, offeringID, key)
	if err != nil {
		return fmt.Errorf("set series key: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrOfferingNotFound
	}
	return nil
}
