package ports

import (
	"context"

	"github.com/stpnv0/SessionBooker/internal/domain"
)

// CancellationNotifier delivers cancellation notices. Implementations log
// delivery failures and never return them; one recipient's failure must not
// block others.
type CancellationNotifier interface {
	// NotifySessionCancelled covers a single cancelled session registration.
	NotifySessionCancelled(ctx context.Context, user *domain.User, offering *domain.Offering, session *domain.Session, tier *domain.PriceTier)
	// NotifySeriesCancelled covers a whole multi-day series in one message
	// enumerating every session date.
	NotifySeriesCancelled(ctx context.Context, user *domain.User, offering *domain.Offering, sessions []*domain.Session, tier *domain.PriceTier)
}
