package ports

import (
	"context"

	"github.com/stpnv0/SessionBooker/internal/domain"
)

type CancellationRepo interface {
	Create(ctx context.Context, rec *domain.CancellationRecord) error
	// Exists reports whether an equivalent record is already present for the
	// (user, offering, series-key-if-any, admin-flag) combination.
	Exists(ctx context.Context, userID, offeringID string, seriesKey *int64, byAdmin bool) (bool, error)
	List(ctx context.Context, resolved *bool) ([]*domain.CancellationRecord, error)
	Resolve(ctx context.Context, id string) error
}
