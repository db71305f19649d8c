package domain

import "time"

type RegistrationResult string

const (
	ResultPending   RegistrationResult = "pending"
	ResultPassed    RegistrationResult = "passed"
	ResultCancelled RegistrationResult = "cancelled"
)

// ActiveResults are the registration results that consume a capacity slot.
var ActiveResults = []RegistrationResult{ResultPending, ResultPassed}

// Registration links a user to a session, optionally through a price tier.
// At most one row exists per (session, user) pair; cancelling and
// re-registering reactivates the same row.
type Registration struct {
	ID           string             `json:"id"`
	SessionID    string             `json:"session_id"`
	UserID       string             `json:"user_id"`
	TierID       *string            `json:"tier_id,omitempty"`
	Result       RegistrationResult `json:"result"`
	PaymentRef   *string            `json:"payment_ref,omitempty"`
	RegisteredAt time.Time          `json:"registered_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Active reports whether the registration consumes a capacity slot.
func (r *Registration) Active() bool {
	return r.Result != ResultCancelled
}

type RegistrationOutcome string

const (
	OutcomeRegistered        RegistrationOutcome = "registered"
	OutcomeReRegistered      RegistrationOutcome = "re-registered"
	OutcomeAlreadyRegistered RegistrationOutcome = "already-registered"
	OutcomeFailed            RegistrationOutcome = "failed"
)

// SessionOutcome is the per-session result of a series registration.
type SessionOutcome struct {
	SessionID string              `json:"session_id"`
	StartAt   time.Time           `json:"start_at"`
	Outcome   RegistrationOutcome `json:"outcome"`
	Error     string              `json:"error,omitempty"`
}
