package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/stpnv0/SessionBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type capacityEvaluator interface {
	EvaluateSession(ctx context.Context, sessionID string, tierID *string) (*domain.Capacity, error)
	EvaluateSeries(ctx context.Context, seriesKey int64, tierID *string) (*domain.Capacity, error)
}

type RegistrationService struct {
	regRepo      ports.RegistrationRepo
	sessionRepo  ports.SessionRepo
	offeringRepo ports.OfferingRepo
	userRepo     ports.UserRepo
	capacity     capacityEvaluator
	logger       logger.Logger
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	sessionRepo ports.SessionRepo,
	offeringRepo ports.OfferingRepo,
	userRepo ports.UserRepo,
	capacity capacityEvaluator,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:      regRepo,
		sessionRepo:  sessionRepo,
		offeringRepo: offeringRepo,
		userRepo:     userRepo,
		capacity:     capacity,
		logger:       logger,
	}
}

// RegisterForSession registers the user for one session. A cancelled prior
// registration for the same pair is reactivated in place; an active one
// makes this a no-op reporting already-registered.
func (s *RegistrationService) RegisterForSession(ctx context.Context, sessionID, userID string, tierID *string) (*domain.SessionOutcome, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !session.Open() {
		return nil, domain.ErrSessionClosed
	}

	offering, err := s.offeringRepo.GetByID(ctx, session.OfferingID)
	if err != nil {
		return nil, fmt.Errorf("get offering: %w", err)
	}

	if _, err = s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	res, err := s.capacity.EvaluateSession(ctx, sessionID, tierID)
	if err != nil {
		return nil, fmt.Errorf("evaluate capacity: %w", err)
	}
	if !res.HasCapacity {
		return nil, capacityError(res, offering.Title, tierID)
	}

	outcome, err := s.register(ctx, session, offering, userID, tierID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("registration processed",
		logger.String("session_id", sessionID),
		logger.String("user_id", userID),
		logger.String("outcome", string(outcome)),
	)

	return &domain.SessionOutcome{
		SessionID: sessionID,
		StartAt:   session.StartAt,
		Outcome:   outcome,
	}, nil
}

// RegisterForSeries registers the user for every session of a series.
// Series capacity is granted once up front; each session then registers
// independently and reports its own outcome. A mid-series failure does not
// roll back earlier sessions.
func (s *RegistrationService) RegisterForSeries(ctx context.Context, seriesKey int64, userID string, tierID *string) ([]domain.SessionOutcome, error) {
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

	if _, err = s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	res, err := s.capacity.EvaluateSeries(ctx, seriesKey, tierID)
	if err != nil {
		return nil, fmt.Errorf("evaluate capacity: %w", err)
	}
	if !res.HasCapacity {
		return nil, capacityError(res, offering.Title, tierID)
	}

	outcomes := make([]domain.SessionOutcome, 0, len(sessions))
	for _, session := range sessions {
		out := domain.SessionOutcome{
			SessionID: session.ID,
			StartAt:   session.StartAt,
		}

		switch {
		case !session.Open():
			out.Outcome = domain.OutcomeFailed
			out.Error = domain.ErrSessionClosed.Error()
		default:
			outcome, err := s.register(ctx, session, offering, userID, tierID)
			if err != nil {
				s.logger.Error("series registration failed for session",
					logger.String("session_id", session.ID),
					logger.String("user_id", userID),
					logger.String("error", err.Error()),
				)
				out.Outcome = domain.OutcomeFailed
				out.Error = err.Error()
			} else {
				out.Outcome = outcome
			}
		}

		outcomes = append(outcomes, out)
	}

	s.logger.Info("series registration processed",
		logger.Int64("series_key", seriesKey),
		logger.String("user_id", userID),
		logger.Int("sessions", len(outcomes)),
	)

	return outcomes, nil
}

func (s *RegistrationService) register(ctx context.Context, session *domain.Session, offering *domain.Offering, userID string, tierID *string) (domain.RegistrationOutcome, error) {
	reg := &domain.Registration{
		ID:           uuid.New().String(),
		SessionID:    session.ID,
		UserID:       userID,
		TierID:       tierID,
		Result:       offering.Kind.InitialResult(),
		RegisteredAt: time.Now().UTC(),
	}
	outcome, err := s.regRepo.Register(ctx, reg, session.SeriesKey)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return outcome, nil
}

func (s *RegistrationService) ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error) {
	return s.regRepo.ListByUser(ctx, userID)
}

func capacityError(res *domain.Capacity, offeringTitle string, tierID *string) error {
	e := &domain.CapacityError{
		Reason:             res.Reason,
		Entity:             offeringTitle,
		TotalRegistrations: res.TotalRegistrations,
		TierRegistrations:  res.TierRegistrations,
	}
	if res.Reason == domain.ReasonTierFull && tierID != nil {
		e.Entity = *tierID
	}
	return e
}
