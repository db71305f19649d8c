package ports

import (
	"context"

	"github.com/stpnv0/SessionBooker/internal/domain"
)

// CalendarPublisher syncs sessions to an external calendar. Callers log
// failures and proceed; calendar sync never gates a core operation.
type CalendarPublisher interface {
	CreateEvent(ctx context.Context, offering *domain.Offering, session *domain.Session) (string, error)
	UpdateEvent(ctx context.Context, offering *domain.Offering, session *domain.Session) error
	DeleteEvent(ctx context.Context, eventID string) error
}
