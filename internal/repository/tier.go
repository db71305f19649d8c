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

type TierRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTierRepo(db *dbpg.DB) *TierRepository {
	return &TierRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TierRepository) Create(ctx context.Context, t *domain.PriceTier) error {
	query := `INSERT INTO price_tiers (id, offering_id, name, price_cents, capacity, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.OfferingID, t.Name, t.PriceCents, t.Capacity, t.Status, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert price tier: %w", err)
	}

	return nil
}

func (r *TierRepository) GetByID(ctx context.Context, id string) (*domain.PriceTier, error) {
	query := `SELECT id, offering_id, name, price_cents, capacity, status, created_at
			  FROM price_tiers
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get price tier: %w", err)
	}

	var t domain.PriceTier
	if err = row.Scan(&t.ID, &t.OfferingID, &t.Name, &t.PriceCents, &t.Capacity, &t.Status, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTierNotFound
		}
		return nil, fmt.Errorf("scan price tier: %w", err)
	}

	return &t, nil
}

func (r *TierRepository) ListByOffering(ctx context.Context, offeringID string) ([]*domain.PriceTier, error) {
	query := `SELECT id, offering_id, name, price_cents, capacity, status, created_at
			  FROM price_tiers
			  WHERE offering_id = $1
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, offeringID)
	if err != nil {
		return nil, fmt.Errorf("list price tiers: %w", err)
	}
	defer rows.Close()

	var res []*domain.PriceTier
	for rows.Next() {
		var t domain.PriceTier
		if err = rows.Scan(&t.ID, &t.OfferingID, &t.Name, &t.PriceCents, &t.Capacity, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan price tier: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

func (r *TierRepository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE price_tiers
			  SET status = $2
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.TierStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel price tier: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrTierNotFound
	}
	return nil
}
