package ports

import (
	"context"

	"github.com/stpnv0/SessionBooker/internal/domain"
)

type RegistrationRepo interface {
	// Register creates the registration, or reactivates the user's cancelled
	// row for the same session, inside one transaction that re-checks session
	// and tier capacity under a row lock. seriesKey switches the capacity
	// count to distinct users across the series. Returns the outcome
	// (registered, re-registered or already-registered).
	Register(ctx context.Context, reg *domain.Registration, seriesKey *int64) (domain.RegistrationOutcome, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
	// CancelActive marks the user's active registration on the session as
	// cancelled and returns the updated row. Returns
	// domain.ErrNothingToCancel when no active registration exists.
	CancelActive(ctx context.Context, sessionID, userID string) (*domain.Registration, error)
	CancelAllForSession(ctx context.Context, sessionID string) ([]*domain.Registration, error)
	CancelAllForTier(ctx context.Context, tierID string) ([]*domain.Registration, error)
	CountActiveBySession(ctx context.Context, sessionID string, tierID *string) (int, error)
	CountDistinctUsersBySeries(ctx context.Context, seriesKey int64, tierID *string) (int, error)
	// TierPeakCounts reports per tier the maximum concurrent active
	// registration count across all of the offering's sessions.
	TierPeakCounts(ctx context.Context, offeringID string) ([]*domain.TierUsage, error)
}
