package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/stpnv0/SessionBooker/internal/service/ports"
)

// CapacityService answers whether a session, series or price tier has room.
// It reads outside any transaction; the registration repository re-checks
// the same counts under a row lock before writing.
type CapacityService struct {
	sessionRepo  ports.SessionRepo
	offeringRepo ports.OfferingRepo
	tierRepo     ports.TierRepo
	regRepo      ports.RegistrationRepo
}

func NewCapacityService(
	sessionRepo ports.SessionRepo,
	offeringRepo ports.OfferingRepo,
	tierRepo ports.TierRepo,
	regRepo ports.RegistrationRepo,
) *CapacityService {
	return &CapacityService{
		sessionRepo:  sessionRepo,
		offeringRepo: offeringRepo,
		tierRepo:     tierRepo,
		regRepo:      regRepo,
	}
}

// EvaluateSession reports capacity for one session. A session that belongs
// to a series is evaluated at series level: the series consumes one slot per
// distinct user regardless of how many sessions it spans.
func (s *CapacityService) EvaluateSession(ctx context.Context, sessionID string, tierID *string) (*domain.Capacity, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.SeriesKey != nil {
		return s.EvaluateSeries(ctx, *session.SeriesKey, tierID)
	}

	offering, err := s.offeringRepo.GetByID(ctx, session.OfferingID)
	if err != nil {
		return nil, fmt.Errorf("get offering: %w", err)
	}

	total, err := s.regRepo.CountActiveBySession(ctx, sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}

	res := &domain.Capacity{
		TotalRegistrations: total,
		SessionCapacity:    offering.Capacity,
	}

	// Session-level failure takes precedence over tier-level failure.
	if total >= offering.Capacity {
		res.Reason = domain.ReasonSessionFull
		return res, nil
	}

	if tierID != nil {
		tierCount := func() (int, error) { return s.regRepo.CountActiveBySession(ctx, sessionID, tierID) }
		if err := s.applyTier(ctx, res, offering.ID, *tierID, tierCount); err != nil {
			return nil, err
		}
		return res, nil
	}

	res.HasCapacity = true
	return res, nil
}

// EvaluateSeries reports capacity for a whole multi-day series; counts are
// distinct users with an active registration on any session of the series.
func (s *CapacityService) EvaluateSeries(ctx context.Context, seriesKey int64, tierID *string) (*domain.Capacity, error) {
	sessions, err := s.sessionRepo.ListBySeriesKey(ctx, seriesKey)
	if err != nil {
		return nil, fmt.Errorf("list series sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, domain.ErrSeriesNotFound
	}

	offering, err := s.offeringRepo.GetByID(ctx, sessions[0].OfferingID)
	if err != nil {
		return nil, fmt.Errorf("get offering: %w", err)
	}

	total, err := s.regRepo.CountDistinctUsersBySeries(ctx, seriesKey, nil)
	if err != nil {
		return nil, fmt.Errorf("count series registrations: %w", err)
	}

	res := &domain.Capacity{
		TotalRegistrations: total,
		SessionCapacity:    offering.Capacity,
	}

	if total >= offering.Capacity {
		res.Reason = domain.ReasonSessionFull
		return res, nil
	}

	if tierID != nil {
		tierCount := func() (int, error) { return s.regRepo.CountDistinctUsersBySeries(ctx, seriesKey, tierID) }
		if err := s.applyTier(ctx, res, offering.ID, *tierID, tierCount); err != nil {
			return nil, err
		}
		return res, nil
	}

	res.HasCapacity = true
	return res, nil
}

func (s *CapacityService) applyTier(ctx context.Context, res *domain.Capacity, offeringID, tierID string, count func() (int, error)) error {
	tier, err := s.tierRepo.GetByID(ctx, tierID)
	if err != nil {
		return fmt.Errorf("get tier: %w", err)
	}
	if tier.OfferingID != offeringID || tier.Status != domain.TierStatusActive {
		return domain.ErrTierNotFound
	}

	tierCount, err := count()
	if err != nil {
		return fmt.Errorf("count tier registrations: %w", err)
	}

	res.TierRegistrations = tierCount
	res.TierCapacity = tier.Capacity
	if tierCount >= tier.Capacity {
		res.Reason = domain.ReasonTierFull
		return nil
	}

	res.HasCapacity = true
	return nil
}

// TierUsage reports the per-tier peak concurrent registration count across
// all of the offering's sessions.
func (s *CapacityService) TierUsage(ctx context.Context, offeringID string) ([]*domain.TierUsage, error) {
	if _, err := s.offeringRepo.GetByID(ctx, offeringID); err != nil {
		return nil, fmt.Errorf("get offering: %w", err)
	}
	return s.regRepo.TierPeakCounts(ctx, offeringID)
}
