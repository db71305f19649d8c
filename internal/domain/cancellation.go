package domain

import "time"

// CancellationRecord is the audit entry for one cancellation event.
// For a multi-day series one record covers all of a user's cancelled
// sessions; SessionID then references the earliest session of the series.
// Records are terminal: only Resolved is ever mutated afterwards.
type CancellationRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	OfferingID   string    `json:"offering_id"`
	SessionID    string    `json:"session_id"`
	TierID       *string   `json:"tier_id,omitempty"`
	SeriesKey    *int64    `json:"series_key,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
	CancelledAt  time.Time `json:"cancelled_at"`
	PaymentRef   *string   `json:"payment_ref,omitempty"`
	ByAdmin      bool      `json:"by_admin"`
	Resolved     bool      `json:"resolved"`
}
