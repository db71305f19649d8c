package ports

import (
	"context"

	"github.com/stpnv0/SessionBooker/internal/domain"
)

type TierRepo interface {
	Create(ctx context.Context, t *domain.PriceTier) error
	GetByID(ctx context.Context, id string) (*domain.PriceTier, error)
	ListByOffering(ctx context.Context, offeringID string) ([]*domain.PriceTier, error)
	// Cancel marks the tier cancelled; tiers are never hard-deleted once a
	// registration references them.
	Cancel(ctx context.Context, id string) error
}
