package domain

import "time"

type TierStatus string

const (
	TierStatusActive    TierStatus = "active"
	TierStatusCancelled TierStatus = "cancelled"
)

// PriceTier is an independent capacity sub-limit within an offering.
// A tier is cancelled rather than deleted once any registration references it.
type PriceTier struct {
	ID         string     `json:"id"`
	OfferingID string     `json:"offering_id"`
	Name       string     `json:"name"`
	PriceCents int64      `json:"price_cents"`
	Capacity   int        `json:"capacity"`
	Status     TierStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TierUsage reports, per tier, the highest concurrent active registration
// count across all of an offering's sessions.
type TierUsage struct {
	TierID            string `json:"tier_id"`
	Name              string `json:"name"`
	Capacity          int    `json:"capacity"`
	PeakRegistrations int    `json:"peak_registrations"`
}
