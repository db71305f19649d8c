package dto

import (
	"time"

	"github.com/stpnv0/SessionBooker/internal/domain"
)

type OfferingResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Kind          string `json:"kind"`
	Capacity      int    `json:"capacity"`
	TieredPricing bool   `json:"tiered_pricing"`
	SeriesKey     *int64 `json:"series_key,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type SessionResponse struct {
	ID             string `json:"id"`
	OfferingID     string `json:"offering_id"`
	StartAt        string `json:"start_at"`
	EndAt          string `json:"end_at"`
	DisplayStartAt string `json:"display_start_at"`
	DisplayEndAt   string `json:"display_end_at"`
	Status         string `json:"status"`
	SeriesKey      *int64 `json:"series_key,omitempty"`
	OfferBatchKey  *int64 `json:"offer_batch_key,omitempty"`
}

type TierResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Capacity   int    `json:"capacity"`
	Status     string `json:"status"`
}

type TierUsageResponse struct {
	TierID            string `json:"tier_id"`
	Name              string `json:"name"`
	Capacity          int    `json:"capacity"`
	PeakRegistrations int    `json:"peak_registrations"`
}

type OfferingDetailsResponse struct {
	Offering OfferingResponse    `json:"offering"`
	Sessions []SessionResponse   `json:"sessions"`
	Tiers    []TierResponse      `json:"tiers"`
	Usage    []TierUsageResponse `json:"tier_usage"`
}

type SessionOutcomeResponse struct {
	SessionID string `json:"session_id"`
	StartAt   string `json:"start_at"`
	Outcome   string `json:"outcome"`
	Error     string `json:"error,omitempty"`
}

type RegisterResponse struct {
	Status   string                   `json:"status"`
	Sessions []SessionOutcomeResponse `json:"session_outcomes"`
}

type RegistrationResponse struct {
	ID           string  `json:"id"`
	SessionID    string  `json:"session_id"`
	UserID       string  `json:"user_id"`
	TierID       *string `json:"tier_id,omitempty"`
	Result       string  `json:"result"`
	RegisteredAt string  `json:"registered_at"`
}

type CapacityResponse struct {
	HasCapacity        bool   `json:"has_capacity"`
	Reason             string `json:"reason,omitempty"`
	TotalRegistrations int    `json:"total_registrations"`
	SessionCapacity    int    `json:"session_capacity"`
	TierRegistrations  int    `json:"tier_registrations,omitempty"`
	TierCapacity       int    `json:"tier_capacity,omitempty"`
}

type CancellationRecordResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	OfferingID   string  `json:"offering_id"`
	SessionID    string  `json:"session_id"`
	TierID       *string `json:"tier_id,omitempty"`
	SeriesKey    *int64  `json:"series_key,omitempty"`
	RegisteredAt string  `json:"registered_at"`
	CancelledAt  string  `json:"cancelled_at"`
	ByAdmin      bool    `json:"by_admin"`
	Resolved     bool    `json:"resolved"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CapacityRejectionResponse struct {
	Error              string `json:"error"`
	Reason             string `json:"reason"`
	TotalRegistrations int    `json:"total_registrations"`
	TierRegistrations  int    `json:"tier_registrations,omitempty"`
}

func ToOfferingResponse(o *domain.Offering) OfferingResponse {
	return OfferingResponse{
		ID:            o.ID,
		Title:         o.Title,
		Description:   o.Description,
		Kind:          string(o.Kind),
		Capacity:      o.Capacity,
		TieredPricing: o.TieredPricing,
		SeriesKey:     o.SeriesKey,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:             s.ID,
		OfferingID:     s.OfferingID,
		StartAt:        s.StartAt.Format(time.RFC3339),
		EndAt:          s.EndAt.Format(time.RFC3339),
		DisplayStartAt: s.DisplayStartAt.Format(time.RFC3339),
		DisplayEndAt:   s.DisplayEndAt.Format(time.RFC3339),
		Status:         string(s.Status),
		SeriesKey:      s.SeriesKey,
		OfferBatchKey:  s.OfferBatchKey,
	}
}

func ToTierResponse(t *domain.PriceTier) TierResponse {
	return TierResponse{
		ID:         t.ID,
		Name:       t.Name,
		PriceCents: t.PriceCents,
		Capacity:   t.Capacity,
		Status:     string(t.Status),
	}
}

func ToOfferingDetailsResponse(d *domain.OfferingDetails) OfferingDetailsResponse {
	resp := OfferingDetailsResponse{
		Offering: ToOfferingResponse(&d.Offering),
		Sessions: make([]SessionResponse, 0, len(d.Sessions)),
		Tiers:    make([]TierResponse, 0, len(d.Tiers)),
		Usage:    make([]TierUsageResponse, 0, len(d.Usage)),
	}
	for i := range d.Sessions {
		resp.Sessions = append(resp.Sessions, ToSessionResponse(&d.Sessions[i]))
	}
	for i := range d.Tiers {
		resp.Tiers = append(resp.Tiers, ToTierResponse(&d.Tiers[i]))
	}
	for _, u := range d.Usage {
		resp.Usage = append(resp.Usage, TierUsageResponse(*u))
	}
	return resp
}

func ToSessionOutcomeResponse(o *domain.SessionOutcome) SessionOutcomeResponse {
	return SessionOutcomeResponse{
		SessionID: o.SessionID,
		StartAt:   o.StartAt.Format(time.RFC3339),
		Outcome:   string(o.Outcome),
		Error:     o.Error,
	}
}

func ToRegistrationResponse(g *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           g.ID,
		SessionID:    g.SessionID,
		UserID:       g.UserID,
		TierID:       g.TierID,
		Result:       string(g.Result),
		RegisteredAt: g.RegisteredAt.Format(time.RFC3339),
	}
}

func ToCapacityResponse(c *domain.Capacity) CapacityResponse {
	return CapacityResponse{
		HasCapacity:        c.HasCapacity,
		Reason:             string(c.Reason),
		TotalRegistrations: c.TotalRegistrations,
		SessionCapacity:    c.SessionCapacity,
		TierRegistrations:  c.TierRegistrations,
		TierCapacity:       c.TierCapacity,
	}
}

func ToCancellationRecordResponse(c *domain.CancellationRecord) CancellationRecordResponse {
	return CancellationRecordResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		OfferingID:   c.OfferingID,
		SessionID:    c.SessionID,
		TierID:       c.TierID,
		SeriesKey:    c.SeriesKey,
		RegisteredAt: c.RegisteredAt.Format(time.RFC3339),
		CancelledAt:  c.CancelledAt.Format(time.RFC3339),
		ByAdmin:      c.ByAdmin,
		Resolved:     c.Resolved,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
