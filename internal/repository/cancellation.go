package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CancellationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCancellationRepo(db *dbpg.DB) *CancellationRepository {
	return &CancellationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CancellationRepository) Create(ctx context.Context, rec *domain.CancellationRecord) error {
	query := `INSERT INTO cancellation_records
				  (id, user_id, offering_id, session_id, tier_id, series_key,
				   registered_at, cancelled_at, payment_ref, by_admin, resolved)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rec.ID, rec.UserID, rec.OfferingID, rec.SessionID, rec.TierID, rec.SeriesKey,
		rec.RegisteredAt, rec.CancelledAt, rec.PaymentRef, rec.ByAdmin, rec.Resolved,
	)
	if err != nil {
		return fmt.Errorf("insert cancellation record: %w", err)
	}

	return nil
}

// Exists matches on the cancellation-event identity the dedupe rule uses:
// user, offering, series key (null-safe) and who initiated it.
func (r *CancellationRepository) Exists(ctx context.Context, userID, offeringID string, seriesKey *int64, byAdmin bool) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM cancellation_records
				  WHERE user_id = $1
					AND offering_id = $2
					AND series_key IS NOT DISTINCT FROM $3
					AND by_admin = $4
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, offeringID, seriesKey, byAdmin)
	if err != nil {
		return false, fmt.Errorf("check cancellation record: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan exists: %w", err)
	}
	return exists, nil
}

func (r *CancellationRepository) List(ctx context.Context, resolved *bool) ([]*domain.CancellationRecord, error) {
	query := `SELECT id, user_id, offering_id, session_id, tier_id, series_key,
					 registered_at, cancelled_at, payment_ref, by_admin, resolved
			  FROM cancellation_records`
	var args []any
	if resolved != nil {
		query += ` WHERE resolved = $1`
		args = append(args, *resolved)
	}
	query += ` ORDER BY cancelled_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cancellation records: %w", err)
	}
	defer rows.Close()

	var res []*domain.CancellationRecord
	for rows.Next() {
		var c domain.CancellationRecord
		if err = rows.Scan(
			&c.ID, &c.UserID, &c.OfferingID, &c.SessionID, &c.TierID, &c.SeriesKey,
			&c.RegisteredAt, &c.CancelledAt, &c.PaymentRef, &c.ByAdmin, &c.Resolved,
		); err != nil {
			return nil, fmt.Errorf("scan cancellation record: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CancellationRepository) Resolve(ctx context.Context, id string) error {
	query := `UPDATE cancellation_records
			  SET resolved = TRUE
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("resolve cancellation record: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCancellationNotFound
	}
	return nil
}
