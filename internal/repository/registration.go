package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Register inserts or reactivates the registration inside one transaction.
// The capacity scope is locked first: the session row for a standalone
// session, the offering row for a series (so concurrent registrations on
// sibling sessions serialize), then counts are re-evaluated under the lock.
func (r *RegistrationRepository) Register(ctx context.Context, reg *domain.Registration, seriesKey *int64) (domain.RegistrationOutcome, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT o.id, o.capacity
				  FROM sessions s
				  JOIN offerings o ON o.id = s.offering_id
				  WHERE s.id = $1
				  FOR UPDATE OF s`
	if seriesKey != nil {
		lockQuery = `SELECT o.id, o.capacity
					 FROM sessions s
					 JOIN offerings o ON o.id = s.offering_id
					 WHERE s.id = $1
					 FOR UPDATE OF o`
	}

	var offeringID string
	var capacity int
	if err = tx.QueryRowContext(ctx, lockQuery, reg.SessionID).Scan(&offeringID, &capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("lock capacity scope: %w", err)
	}

	// One row per (session, user); an active one makes this a no-op,
	// a cancelled one is reactivated instead of duplicated.
	var existingID string
	var existingResult domain.RegistrationResult
	existsQuery := `SELECT id, result FROM registrations
					WHERE session_id = $1 AND user_id = $2`
	err = tx.QueryRowContext(ctx, existsQuery, reg.SessionID, reg.UserID).
		Scan(&existingID, &existingResult)
	switch {
	case err == nil:
		if existingResult != domain.ResultCancelled {
			reg.ID = existingID
			if err = tx.Commit(); err != nil {
				return "", fmt.Errorf("commit: %w", err)
			}
			return domain.OutcomeAlreadyRegistered, nil
		}
	case errors.Is(err, sql.ErrNoRows):
		existingID = ""
	default:
		return "", fmt.Errorf("check existing registration: %w", err)
	}

	total, err := r.countLocked(ctx, tx, reg, seriesKey, nil)
	if err != nil {
		return "", err
	}
	if total >= capacity {
		return "", &domain.CapacityError{
			Reason:             domain.ReasonSessionFull,
			Entity:             reg.SessionID,
			TotalRegistrations: total,
		}
	}

	if reg.TierID != nil {
		var tierCapacity int
		var tierStatus domain.TierStatus
		// The tier must belong to the session's offering; a tier id from
		// another offering is treated as unknown.
		tierQuery := `SELECT capacity, status FROM price_tiers
					  WHERE id = $1 AND offering_id = $2`
		if err = tx.QueryRowContext(ctx, tierQuery, *reg.TierID, offeringID).Scan(&tierCapacity, &tierStatus); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return "", domain.ErrTierNotFound
			}
			return "", fmt.Errorf("get tier: %w", err)
		}
		if tierStatus == domain.TierStatusCancelled {
			return "", fmt.Errorf("%w: price tier is cancelled", domain.ErrValidation)
		}

		tierCount, err := r.countLocked(ctx, tx, reg, seriesKey, reg.TierID)
		if err != nil {
			return "", err
		}
		if tierCount >= tierCapacity {
			return "", &domain.CapacityError{
				Reason:             domain.ReasonTierFull,
				Entity:             *reg.TierID,
				TotalRegistrations: total,
				TierRegistrations:  tierCount,
			}
		}
	}

	outcome := domain.OutcomeRegistered
	if existingID != "" {
		outcome = domain.OutcomeReRegistered
		reg.ID = existingID
		updateQuery := `UPDATE registrations
						SET result = $2, tier_id = $3, payment_ref = $4,
							registered_at = $5, updated_at = now()
						WHERE id = $1`
		_, err = tx.ExecContext(
			ctx, updateQuery, existingID,
			reg.Result, reg.TierID, reg.PaymentRef, reg.RegisteredAt,
		)
		if err != nil {
			return "", fmt.Errorf("reactivate registration: %w", err)
		}
	} else {
		insertQuery := `INSERT INTO registrations
							(id, session_id, user_id, tier_id, result, payment_ref, registered_at, updated_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err = tx.ExecContext(
			ctx, insertQuery, reg.ID, reg.SessionID, reg.UserID,
			reg.TierID, reg.Result, reg.PaymentRef, reg.RegisteredAt, reg.RegisteredAt,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domain.OutcomeAlreadyRegistered, nil
			}
			return "", fmt.Errorf("insert registration: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return outcome, nil
}

// countLocked counts active registrations against the capacity scope,
// excluding the registering user so a series loop does not count the user's
// own earlier sessions against them.
func (r *RegistrationRepository) countLocked(ctx context.Context, tx *sql.Tx, reg *domain.Registration, seriesKey *int64, tierID *string) (int, error) {
	var (
		count int
		err   error
	)
	if seriesKey != nil {
		query := `SELECT COUNT(DISTINCT g.user_id)
				  FROM registrations g
				  JOIN sessions s ON s.id = g.session_id
				  WHERE s.series_key = $1 AND g.result = ANY($2) AND g.user_id <> $3`
		args := []any{*seriesKey, pq.Array(domain.ActiveResults), reg.UserID}
		if tierID != nil {
			query += ` AND g.tier_id = $4`
			args = append(args, *tierID)
		}
		err = tx.QueryRowContext(ctx, query, args...).Scan(&count)
	} else {
		query := `SELECT COUNT(*)
				  FROM registrations
				  WHERE session_id = $1 AND result = ANY($2) AND user_id <> $3`
		args := []any{reg.SessionID, pq.Array(domain.ActiveResults), reg.UserID}
		if tierID != nil {
			query += ` AND tier_id = $4`
			args = append(args, *tierID)
		}
		err = tx.QueryRowContext(ctx, query, args...).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `SELECT id, session_id, user_id, tier_id, result, payment_ref, registered_at, updated_at
			  FROM registrations
			  WHERE user_id = $1
			  ORDER BY registered_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations by user: %w", err)
	}
	defer rows.Close()

	return scanRegistrations(rows)
}

func (r *RegistrationRepository) CancelActive(ctx context.Context, sessionID, userID string) (*domain.Registration, error) {
	query := `UPDATE registrations
			  SET result = $3, updated_at = now()
			  WHERE session_id = $1 AND user_id = $2 AND result = ANY($4)
			  RETURNING id, session_id, user_id, tier_id, result, payment_ref, registered_at, updated_at`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		sessionID, userID, domain.ResultCancelled, pq.Array(domain.ActiveResults),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel registration: %w", err)
	}

	var g domain.Registration
	if err = row.Scan(&g.ID, &g.SessionID, &g.UserID, &g.TierID, &g.Result, &g.PaymentRef, &g.RegisteredAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNothingToCancel
		}
		return nil, fmt.Errorf("scan cancelled registration: %w", err)
	}

	return &g, nil
}

func (r *RegistrationRepository) CancelAllForSession(ctx context.Context, sessionID string) ([]*domain.Registration, error) {
	query := `UPDATE registrations
			  SET result = $2, updated_at = now()
			  WHERE session_id = $1 AND result = ANY($3)
			  RETURNING id, session_id, user_id, tier_id, result, payment_ref, registered_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		sessionID, domain.ResultCancelled, pq.Array(domain.ActiveResults),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel registrations for session: %w", err)
	}
	defer rows.Close()

	return scanRegistrations(rows)
}

func (r *RegistrationRepository) CancelAllForTier(ctx context.Context, tierID string) ([]*domain.Registration, error) {
	query := `UPDATE registrations
			  SET result = $2, updated_at = now()
			  WHERE tier_id = $1 AND result = ANY($3)
			  RETURNING id, session_id, user_id, tier_id, result, payment_ref, registered_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		tierID, domain.ResultCancelled, pq.Array(domain.ActiveResults),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel registrations for tier: %w", err)
	}
	defer rows.Close()

	return scanRegistrations(rows)
}

func (r *RegistrationRepository) CountActiveBySession(ctx context.Context, sessionID string, tierID *string) (int, error) {
	query := `SELECT COUNT(*)
			  FROM registrations
			  WHERE session_id = $1 AND result = ANY($2)`
	args := []any{sessionID, pq.Array(domain.ActiveResults)}
	if tierID != nil {
		query += ` AND tier_id = $3`
		args = append(args, *tierID)
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}

func (r *RegistrationRepository) CountDistinctUsersBySeries(ctx context.Context, seriesKey int64, tierID *string) (int, error) {
	query := `SELECT COUNT(DISTINCT g.user_id)
			  FROM registrations g
			  JOIN sessions s ON s.id = g.session_id
			  WHERE s.series_key = $1 AND g.result = ANY($2)`
	args := []any{seriesKey, pq.Array(domain.ActiveResults)}
	if tierID != nil {
		query += ` AND g.tier_id = $3`
		args = append(args, *tierID)
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count series registrations: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}

func (r *RegistrationRepository) TierPeakCounts(ctx context.Context, offeringID string) ([]*domain.TierUsage, error) {
	// Each standalone session's worst case matters, not the sum across
	// sessions, so take the max of per-session counts.
	query := `SELECT t.id, t.name, t.capacity, COALESCE(MAX(per.cnt), 0)
			  FROM price_tiers t
			  LEFT JOIN (
				  SELECT g.tier_id, g.session_id, COUNT(*) AS cnt
				  FROM registrations g
				  JOIN sessions s ON s.id = g.session_id
				  WHERE s.offering_id = $1 AND g.result = ANY($2)
				  GROUP BY g.tier_id, g.session_id
			  ) per ON per.tier_id = t.id
			  WHERE t.offering_id = $1
			  GROUP BY t.id, t.name, t.capacity
			  ORDER BY t.name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, offeringID, pq.Array(domain.ActiveResults))
	if err != nil {
		return nil, fmt.Errorf("tier peak counts: %w", err)
	}
	defer rows.Close()

	var res []*domain.TierUsage
	for rows.Next() {
		var u domain.TierUsage
		if err = rows.Scan(&u.TierID, &u.Name, &u.Capacity, &u.PeakRegistrations); err != nil {
			return nil, fmt.Errorf("scan tier usage: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}

func scanRegistrations(rows *sql.Rows) ([]*domain.Registration, error) {
	var res []*domain.Registration
	for rows.Next() {
		var g domain.Registration
		if err := rows.Scan(&g.ID, &g.SessionID, &g.UserID, &g.TierID, &g.Result, &g.PaymentRef, &g.RegisteredAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, &g)
	}
	return res, rows.Err()
}
