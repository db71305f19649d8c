package domain

import "fmt"

type CapacityReason string

const (
	ReasonSessionFull CapacityReason = "session_full"
	ReasonTierFull    CapacityReason = "tier_full"
)

// Capacity is the result of a capacity evaluation for a session or series,
// optionally narrowed to one price tier. For a series the counts are
// distinct users across all sessions of the series.
type Capacity struct {
	HasCapacity        bool           `json:"has_capacity"`
	Reason             CapacityReason `json:"reason,omitempty"`
	TotalRegistrations int            `json:"total_registrations"`
	SessionCapacity    int            `json:"session_capacity"`
	TierRegistrations  int            `json:"tier_registrations,omitempty"`
	TierCapacity       int            `json:"tier_capacity,omitempty"`
}

// CapacityError is the structured rejection for an exhausted session or tier.
// It matches ErrSessionFull or ErrTierFull under errors.Is so callers can
// branch without losing the counts.
type CapacityError struct {
	Reason             CapacityReason
	Entity             string
	TotalRegistrations int
	TierRegistrations  int
}

func (e *CapacityError) Error() string {
	if e.Reason == ReasonTierFull {
		return fmt.Sprintf("price tier %q is full (%d registrations)", e.Entity, e.TierRegistrations)
	}
	return fmt.Sprintf("session %q is full (%d registrations)", e.Entity, e.TotalRegistrations)
}

func (e *CapacityError) Is(target error) bool {
	switch e.Reason {
	case ReasonSessionFull:
		return target == ErrSessionFull
	case ReasonTierFull:
		return target == ErrTierFull
	}
	return false
}
