package domain

import "time"

type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "active"
	SessionStatusPast      SessionStatus = "past"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// Session is one concrete time window of an Offering.
type Session struct {
	ID              string        `json:"id"`
	OfferingID      string        `json:"offering_id"`
	StartAt         time.Time     `json:"start_at"`
	EndAt           time.Time     `json:"end_at"`
	DisplayStartAt  time.Time     `json:"display_start_at"`
	DisplayEndAt    time.Time     `json:"display_end_at"`
	Status          SessionStatus `json:"status"`
	SeriesKey       *int64        `json:"series_key,omitempty"`
	OfferBatchKey   *int64        `json:"offer_batch_key,omitempty"`
	CalendarEventID *string       `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// Open reports whether the session still accepts registrations.
func (s *Session) Open() bool {
	return s.Status == SessionStatusActive
}

// SessionWindow is the time data needed to create one session.
type SessionWindow struct {
	StartAt        time.Time
	EndAt          time.Time
	DisplayStartAt time.Time
	DisplayEndAt   time.Time
}
