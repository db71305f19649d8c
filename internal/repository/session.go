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

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const sessionColumns = `id, offering_id, start_at, end_at, display_start_at, display_end_at,
						status, series_key, offer_batch_key, calendar_event_id, created_at, updated_at`

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions
				  (id, offering_id, start_at, end_at, display_start_at, display_end_at,
				   status, series_key, offer_batch_key, calendar_event_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.OfferingID, s.StartAt, s.EndAt, s.DisplayStartAt, s.DisplayEndAt,
		s.Status, s.SeriesKey, s.OfferBatchKey, s.CalendarEventID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.Session
	if err = scanSession(row.Scan, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return &s, nil
}

func (r *SessionRepository) ListByOffering(ctx context.Context, offeringID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions
			  WHERE offering_id = $1
			  ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, offeringID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by offering: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

func (r *SessionRepository) ListBySeriesKey(ctx context.Context, key int64) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions
			  WHERE series_key = $1
			  ORDER BY start_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, key)
	if err != nil {
		return nil, fmt.Errorf("list sessions by series: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

func (r *SessionRepository) ApplySeriesKey(ctx context.Context, offeringID string, key *int64) error {
	query := `UPDATE sessions
			  SET series_key = $2, updated_at = now()
			  WHERE offering_id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, offeringID, key)
	if err != nil {
		return fmt.Errorf("apply series key: %w", err)
	}

	return nil
}

func (r *SessionRepository) NextSeriesKey(ctx context.Context) (int64, error) {
	return r.nextKey(ctx, `SELECT COALESCE(MAX(series_key), 0) + 1 FROM sessions`)
}

func (r *SessionRepository) NextOfferBatchKey(ctx context.Context) (int64, error) {
	return r.nextKey(ctx, `SELECT COALESCE(MAX(offer_batch_key), 0) + 1 FROM sessions`)
}

func (r *SessionRepository) nextKey(ctx context.Context, query string) (int64, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return 0, fmt.Errorf("next key: %w", err)
	}

	var key int64
	if err = row.Scan(&key); err != nil {
		return 0, fmt.Errorf("scan next key: %w", err)
	}
	return key, nil
}

// MarkPastDue only touches active sessions, so a cancelled session never
// transitions regardless of its start time.
func (r *SessionRepository) MarkPastDue(ctx context.Context) (int64, error) {
	query := `UPDATE sessions
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND start_at < now()`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		domain.SessionStatusActive, domain.SessionStatusPast,
	)
	if err != nil {
		return 0, fmt.Errorf("mark past due: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}

func (r *SessionRepository) Cancel(ctx context.Context, sessionID string) error {
	query := `UPDATE sessions
			  SET status = $2, calendar_event_id = NULL, updated_at = now()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, sessionID, domain.SessionStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel session: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) SetCalendarEventID(ctx context.Context, sessionID string, eventID *string) error {
	query := `UPDATE sessions
			  SET calendar_event_id = $2, updated_at = now()
			  WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, sessionID, eventID)
	if err != nil {
		return fmt.Errorf("set calendar event id: %w", err)
	}

	return nil
}

func scanSession(scan func(dest ...any) error, s *domain.Session) error {
	return scan(
		&s.ID, &s.OfferingID, &s.StartAt, &s.EndAt, &s.DisplayStartAt, &s.DisplayEndAt,
		&s.Status, &s.SeriesKey, &s.OfferBatchKey, &s.CalendarEventID, &s.CreatedAt, &s.UpdatedAt,
	)
}

func collectSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var res []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err := scanSession(rows.Scan, &s); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, &s)
	}
	return res, rows.Err()
}
