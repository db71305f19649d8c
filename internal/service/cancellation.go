package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/stpnv0/SessionBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CancellationService struct {
	regRepo      ports.RegistrationRepo
	sessionRepo  ports.SessionRepo
	offeringRepo ports.OfferingRepo
	tierRepo     ports.TierRepo
	userRepo     ports.UserRepo
	cancRepo     ports.CancellationRepo
	notifier     ports.CancellationNotifier
	calendar     ports.CalendarPublisher
	logger       logger.Logger
}

func NewCancellationService(
	regRepo ports.RegistrationRepo,
	sessionRepo ports.SessionRepo,
	offeringRepo ports.OfferingRepo,
	tierRepo ports.TierRepo,
	userRepo ports.UserRepo,
	cancRepo ports.CancellationRepo,
	notifier ports.CancellationNotifier,
	calendar ports.CalendarPublisher,
	logger logger.Logger,
) *CancellationService {
	return &CancellationService{
		regRepo:      regRepo,
		sessionRepo:  sessionRepo,
		offeringRepo: offeringRepo,
		tierRepo:     tierRepo,
		userRepo:     userRepo,
		cancRepo:     cancRepo,
		notifier:     notifier,
		calendar:     calendar,
		logger:       logger,
	}
}

// CancelSession cancels every active registration on the session, writes the
// audit records, clears the session's calendar event and sets the session
// status to cancelled. For a session that belongs to a series the audit is
// deduplicated to one record per user across the whole series, and each user
// gets a single notice enumerating all session dates.
func (s *CancellationService) CancelSession(ctx context.Context, sessionID string, byAdmin bool) (int, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("get session: %w", err)
	}

	offering, err := s.offeringRepo.GetByID(ctx, session.OfferingID)
	if err != nil {
		return 0, fmt.Errorf("get offering: %w", err)
	}

	cancelled, err := s.regRepo.CancelAllForSession(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("cancel registrations: %w", err)
	}

	seriesSessions := []*domain.Session{session}
	representative := session.ID
	if session.SeriesKey != nil {
		seriesSessions, err = s.sessionRepo.ListBySeriesKey(ctx, *session.SeriesKey)
		if err != nil {
			return 0, fmt.Errorf("list series sessions: %w", err)
		}
		representative = seriesSessions[0].ID
	}

	for _, reg := range cancelled {
		if err := s.writeAudit(ctx, reg, offering.ID, representative, session.SeriesKey, byAdmin); err != nil {
			return 0, err
		}
	}

	s.dropCalendarEvent(ctx, session)
	if err := s.sessionRepo.Cancel(ctx, sessionID); err != nil {
		return 0, fmt.Errorf("cancel session: %w", err)
	}

	s.logger.Info("session cancelled",
		logger.String("session_id", sessionID),
		logger.Bool("by_admin", byAdmin),
		logger.Int("registrations", len(cancelled)),
	)

	go s.notifyAll(context.WithoutCancel(ctx), offering, seriesSessions, cancelled)

	return len(cancelled), nil
}

// CancelSeries cancels every session of the series and all registrations on
// them; the audit keeps one record per affected user for the whole series.
func (s *CancellationService) CancelSeries(ctx context.Context, seriesKey int64, byAdmin bool) (int, error) {
	sessions, err := s.sessionRepo.ListBySeriesKey(ctx, seriesKey)
	if err != nil {
		return 0, fmt.Errorf("list series sessions: %w", err)
	}
	if len(sessions) == 0 {
		return 0, domain.ErrSeriesNotFound
	}

	offering, err := s.offeringRepo.GetByID(ctx, sessions[0].OfferingID)
	if err != nil {
		return 0, fmt.Errorf("get offering: %w", err)
	}

	// First occurrence found wins as the representative registration for
	// each user's audit record.
	var firstPerUser []*domain.Registration
	seen := make(map[string]bool)

	for _, session := range sessions {
		cancelled, err := s.regRepo.CancelAllForSession(ctx, session.ID)
		if err != nil {
			return 0, fmt.Errorf("cancel registrations: %w", err)
		}
		for _, reg := range cancelled {
			if !seen[reg.UserID] {
				seen[reg.UserID] = true
				firstPerUser = append(firstPerUser, reg)
			}
		}

		s.dropCalendarEvent(ctx, session)
		if err := s.sessionRepo.Cancel(ctx, session.ID); err != nil {
			return 0, fmt.Errorf("cancel session: %w", err)
		}
	}

	for _, reg := range firstPerUser {
		if err := s.writeAudit(ctx, reg, offering.ID, sessions[0].ID, &seriesKey, byAdmin); err != nil {
			return 0, err
		}
	}

	s.logger.Info("series cancelled",
		logger.Int64("series_key", seriesKey),
		logger.Bool("by_admin", byAdmin),
		logger.Int("users", len(firstPerUser)),
	)

	go s.notifyAll(context.WithoutCancel(ctx), offering, sessions, firstPerUser)

	return len(firstPerUser), nil
}

// CancelRegistration is the user-initiated cancellation of one session
// registration.
func (s *CancellationService) CancelRegistration(ctx context.Context, sessionID, userID string) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	offering, err := s.offeringRepo.GetByID(ctx, session.OfferingID)
	if err != nil {
		return fmt.Errorf("get offering: %w", err)
	}

	reg, err := s.regRepo.CancelActive(ctx, sessionID, userID)
	if err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}

	representative := session.ID
	if session.SeriesKey != nil {
		seriesSessions, err := s.sessionRepo.ListBySeriesKey(ctx, *session.SeriesKey)
		if err != nil {
			return fmt.Errorf("list series sessions: %w", err)
		}
		representative = seriesSessions[0].ID
	}

	if err := s.writeAudit(ctx, reg, offering.ID, representative, session.SeriesKey, false); err != nil {
		return err
	}

	s.logger.Info("registration cancelled by user",
		logger.String("session_id", sessionID),
		logger.String("user_id", userID),
	)

	go s.notifyAll(context.WithoutCancel(ctx), offering, []*domain.Session{session}, []*domain.Registration{reg})

	return nil
}

// CancelSeriesRegistration is the user-initiated cancellation of a whole
// multi-day series: all the user's active registrations on the series flip
// to cancelled, with exactly one audit record.
func (s *CancellationService) CancelSeriesRegistration(ctx context.Context, seriesKey int64, userID string) error {
	sessions, err := s.sessionRepo.ListBySeriesKey(ctx, seriesKey)
	if err != nil {
		return fmt.Errorf("list series sessions: %w", err)
	}
	if len(sessions) == 0 {
		return domain.ErrSeriesNotFound
	}

	offering, err := s.offeringRepo.GetByID(ctx, sessions[0].OfferingID)
	if err != nil {
		return fmt.Errorf("get offering: %w", err)
	}

	var first *domain.Registration
	for _, session := range sessions {
		reg, err := s.regRepo.CancelActive(ctx, session.ID, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNothingToCancel) {
				continue
			}
			return fmt.Errorf("cancel registration: %w", err)
		}
		if first == nil {
			first = reg
		}
	}
	if first == nil {
		return domain.ErrNothingToCancel
	}

	if err := s.writeAudit(ctx, first, offering.ID, sessions[0].ID, &seriesKey, false); err != nil {
		return err
	}

	s.logger.Info("series registration cancelled by user",
		logger.Int64("series_key", seriesKey),
		logger.String("user_id", userID),
	)

	go s.notifyAll(context.WithoutCancel(ctx), offering, sessions, []*domain.Registration{first})

	return nil
}

// CancelPriceTier marks the tier cancelled and cancels every active
// registration referencing it across all of the owning offering's sessions.
func (s *CancellationService) CancelPriceTier(ctx context.Context, tierID string) (int, error) {
	tier, err := s.tierRepo.GetByID(ctx, tierID)
	if err != nil {
		return 0, fmt.Errorf("get tier: %w", err)
	}

	offering, err := s.offeringRepo.GetByID(ctx, tier.OfferingID)
	if err != nil {
		return 0, fmt.Errorf("get offering: %w", err)
	}

	cancelled, err := s.regRepo.CancelAllForTier(ctx, tierID)
	if err != nil {
		return 0, fmt.Errorf("cancel registrations: %w", err)
	}

	if err := s.tierRepo.Cancel(ctx, tierID); err != nil {
		return 0, fmt.Errorf("cancel tier: %w", err)
	}

	sessionCache := make(map[string]*domain.Session)
	for _, reg := range cancelled {
		session, err := s.cachedSession(ctx, sessionCache, reg.SessionID)
		if err != nil {
			return 0, err
		}

		representative := session.ID
		if session.SeriesKey != nil {
			seriesSessions, err := s.sessionRepo.ListBySeriesKey(ctx, *session.SeriesKey)
			if err != nil {
				return 0, fmt.Errorf("list series sessions: %w", err)
			}
			representative = seriesSessions[0].ID
		}

		if err := s.writeAudit(ctx, reg, offering.ID, representative, session.SeriesKey, true); err != nil {
			return 0, err
		}
	}

	s.logger.Info("price tier cancelled",
		logger.String("tier_id", tierID),
		logger.Int("registrations", len(cancelled)),
	)

	go s.notifyTierCancelled(context.WithoutCancel(ctx), offering, cancelled, sessionCache)

	return len(cancelled), nil
}

func (s *CancellationService) ListCancellations(ctx context.Context, resolved *bool) ([]*domain.CancellationRecord, error) {
	return s.cancRepo.List(ctx, resolved)
}

// ResolveCancellation flips the record's resolved flag for the downstream
// refund workflow; records are otherwise immutable.
func (s *CancellationService) ResolveCancellation(ctx context.Context, id string) error {
	if err := s.cancRepo.Resolve(ctx, id); err != nil {
		return fmt.Errorf("resolve cancellation: %w", err)
	}

	s.logger.Info("cancellation resolved", logger.String("record_id", id))
	return nil
}

// writeAudit creates one cancellation record unless an equivalent one
// already exists for the (user, offering, series key, admin flag)
// combination, so invoking cancellation twice for the same event never
// duplicates audit rows.
func (s *CancellationService) writeAudit(ctx context.Context, reg *domain.Registration, offeringID, sessionID string, seriesKey *int64, byAdmin bool) error {
	exists, err := s.cancRepo.Exists(ctx, reg.UserID, offeringID, seriesKey, byAdmin)
	if err != nil {
		return fmt.Errorf("check cancellation record: %w", err)
	}
	if exists {
		return nil
	}

	rec := &domain.CancellationRecord{
		ID:           uuid.New().String(),
		UserID:       reg.UserID,
		OfferingID:   offeringID,
		SessionID:    sessionID,
		TierID:       reg.TierID,
		SeriesKey:    seriesKey,
		RegisteredAt: reg.RegisteredAt,
		CancelledAt:  time.Now().UTC(),
		PaymentRef:   reg.PaymentRef,
		ByAdmin:      byAdmin,
	}
	if err := s.cancRepo.Create(ctx, rec); err != nil {
		return fmt.Errorf("create cancellation record: %w", err)
	}
	return nil
}

func (s *CancellationService) dropCalendarEvent(ctx context.Context, session *domain.Session) {
	if session.CalendarEventID == nil {
		return
	}
	if err := s.calendar.DeleteEvent(ctx, *session.CalendarEventID); err != nil {
		s.logger.Error("failed to delete calendar event",
			logger.String("session_id", session.ID),
			logger.String("error", err.Error()),
		)
	}
}

// notifyAll sends one notice per registration; the series shape is used when
// more than one session is affected. Lookup or delivery failures are logged
// per recipient and never block the others.
func (s *CancellationService) notifyAll(ctx context.Context, offering *domain.Offering, sessions []*domain.Session, regs []*domain.Registration) {
	for _, reg := range regs {
		user, err := s.userRepo.GetByID(ctx, reg.UserID)
		if err != nil {
			s.logger.Error("failed to get user for cancellation notice",
				logger.String("user_id", reg.UserID),
			)
			continue
		}

		tier := s.lookupTier(ctx, reg.TierID)

		if len(sessions) > 1 {
			s.notifier.NotifySeriesCancelled(ctx, user, offering, sessions, tier)
		} else if len(sessions) == 1 {
			s.notifier.NotifySessionCancelled(ctx, user, offering, sessions[0], tier)
		}
	}
}

func (s *CancellationService) notifyTierCancelled(ctx context.Context, offering *domain.Offering, regs []*domain.Registration, sessionCache map[string]*domain.Session) {
	for _, reg := range regs {
		user, err := s.userRepo.GetByID(ctx, reg.UserID)
		if err != nil {
			s.logger.Error("failed to get user for cancellation notice",
				logger.String("user_id", reg.UserID),
			)
			continue
		}

		session, err := s.cachedSession(ctx, sessionCache, reg.SessionID)
		if err != nil {
			s.logger.Error("failed to get session for cancellation notice",
				logger.String("session_id", reg.SessionID),
			)
			continue
		}

		tier := s.lookupTier(ctx, reg.TierID)

		if session.SeriesKey != nil {
			seriesSessions, err := s.sessionRepo.ListBySeriesKey(ctx, *session.SeriesKey)
			if err == nil && len(seriesSessions) > 1 {
				s.notifier.NotifySeriesCancelled(ctx, user, offering, seriesSessions, tier)
				continue
			}
		}
		s.notifier.NotifySessionCancelled(ctx, user, offering, session, tier)
	}
}

func (s *CancellationService) lookupTier(ctx context.Context, tierID *string) *domain.PriceTier {
	if tierID == nil {
		return nil
	}
	tier, err := s.tierRepo.GetByID(ctx, *tierID)
	if err != nil {
		s.logger.Error("failed to get tier for cancellation notice",
			logger.String("tier_id", *tierID),
		)
		return nil
	}
	return tier
}

func (s *CancellationService) cachedSession(ctx context.Context, cache map[string]*domain.Session, sessionID string) (*domain.Session, error) {
	if session, ok := cache[sessionID]; ok {
		return session, nil
	}
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	cache[sessionID] = session
	return session, nil
}
