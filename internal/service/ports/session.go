package ports

import (
	"context"

	"github.com/stpnv0/SessionBooker/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListByOffering(ctx context.Context, offeringID string) ([]*domain.Session, error)
	// ListBySeriesKey returns the sessions of one series ordered by start time.
	ListBySeriesKey(ctx context.Context, key int64) ([]*domain.Session, error)
	// ApplySeriesKey stamps (or clears, when key is nil) the series key on all
	// of the offering's sessions.
	ApplySeriesKey(ctx context.Context, offeringID string, key *int64) error
	// NextSeriesKey mints a fresh series key (max existing + 1).
	NextSeriesKey(ctx context.Context) (int64, error)
	// NextOfferBatchKey mints a fresh offer-batch key (max existing + 1).
	NextOfferBatchKey(ctx context.Context) (int64, error)
	// MarkPastDue bulk-transitions active sessions whose start time has
	// elapsed to past and returns the number of sessions changed.
	MarkPastDue(ctx context.Context) (int64, error)
	// Cancel sets the session status to cancelled and clears its calendar
	// event reference. Cancelled status is terminal.
	Cancel(ctx context.Context, sessionID string) error
	SetCalendarEventID(ctx context.Context, sessionID string, eventID *string) error
}
