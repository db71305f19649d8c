package domain

import "time"

type OfferingKind string

const (
	// KindWorkshop registrations are complete once created.
	KindWorkshop OfferingKind = "workshop"
	// KindOrientation registrations start pending until an admin records the outcome.
	KindOrientation OfferingKind = "orientation"
)

func (k OfferingKind) Valid() bool {
	return k == KindWorkshop || k == KindOrientation
}

// InitialResult is the registration result a new registration starts with
// for this offering kind.
func (k OfferingKind) InitialResult() RegistrationResult {
	if k == KindOrientation {
		return ResultPending
	}
	return ResultPassed
}

type Offering struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Kind          OfferingKind `json:"kind"`
	Capacity      int          `json:"capacity"`
	TieredPricing bool         `json:"tiered_pricing"`
	SeriesKey     *int64       `json:"series_key,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// MultiDay reports whether the offering's sessions form one registration unit.
func (o *Offering) MultiDay() bool {
	return o.SeriesKey != nil
}

type OfferingDetails struct {
	Offering Offering     `json:"offering"`
	Sessions []Session    `json:"sessions"`
	Tiers    []PriceTier  `json:"tiers"`
	Usage    []*TierUsage `json:"tier_usage,omitempty"`
}

type CreateOfferingInput struct {
	Title         string
	Description   string
	Kind          OfferingKind
	Capacity      int
	TieredPricing bool
	MultiDay      bool
	Sessions      []SessionWindow
	Tiers         []TierInput
}

type UpdateOfferingInput struct {
	Title       string
	Description string
	Capacity    int
}

type TierInput struct {
	Name       string
	PriceCents int64
	Capacity   int
}
