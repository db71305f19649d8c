package ports

import (
	"context"

	"github.com/stpnv0/SessionBooker/internal/domain"
)

type OfferingRepo interface {
	Create(ctx context.Context, o *domain.Offering) error
	GetByID(ctx context.Context, id string) (*domain.Offering, error)
	List(ctx context.Context) ([]*domain.Offering, error)
	Update(ctx context.Context, o *domain.Offering) error
	Delete(ctx context.Context, id string) error
	HasRegistrations(ctx context.Context, offeringID string) (bool, error)
	SetSeriesKey(ctx context.Context, offeringID string, key *int64) error
}
