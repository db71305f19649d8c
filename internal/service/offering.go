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

type OfferingService struct {
	offeringRepo ports.OfferingRepo
	sessionRepo  ports.SessionRepo
	tierRepo     ports.TierRepo
	regRepo      ports.RegistrationRepo
	calendar     ports.CalendarPublisher
	logger       logger.Logger
}

func NewOfferingService(
	offeringRepo ports.OfferingRepo,
	sessionRepo ports.SessionRepo,
	tierRepo ports.TierRepo,
	regRepo ports.RegistrationRepo,
	calendar ports.CalendarPublisher,
	logger logger.Logger,
) *OfferingService {
	return &OfferingService{
		offeringRepo: offeringRepo,
		sessionRepo:  sessionRepo,
		tierRepo:     tierRepo,
		regRepo:      regRepo,
		calendar:     calendar,
		logger:       logger,
	}
}

func (s *OfferingService) Create(ctx context.Context, input domain.CreateOfferingInput) (*domain.Offering, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	kind := input.Kind
	if kind == "" {
		kind = domain.KindWorkshop
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown offering kind %q", domain.ErrValidation, input.Kind)
	}
	for _, w := range input.Sessions {
		if !w.EndAt.After(w.StartAt) {
			return nil, fmt.Errorf("%w: session end must be after start", domain.ErrValidation)
		}
	}
	for _, t := range input.Tiers {
		if t.Name == "" || t.Capacity <= 0 {
			return nil, fmt.Errorf("%w: tier needs a name and positive capacity", domain.ErrValidation)
		}
	}

	offering := &domain.Offering{
		ID:            uuid.New().String(),
		Title:         input.Title,
		Description:   input.Description,
		Kind:          kind,
		Capacity:      input.Capacity,
		TieredPricing: input.TieredPricing,
	}

	if input.MultiDay {
		key, err := s.sessionRepo.NextSeriesKey(ctx)
		if err != nil {
			return nil, fmt.Errorf("mint series key: %w", err)
		}
		offering.SeriesKey = &key
	}

	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return nil, fmt.Errorf("create offering: %w", err)
	}

	if input.TieredPricing {
		for _, t := range input.Tiers {
			tier := &domain.PriceTier{
				ID:         uuid.New().String(),
				OfferingID: offering.ID,
				Name:       t.Name,
				PriceCents: t.PriceCents,
				Capacity:   t.Capacity,
				Status:     domain.TierStatusActive,
			}
			if err := s.tierRepo.Create(ctx, tier); err != nil {
				return nil, fmt.Errorf("create tier: %w", err)
			}
		}
	}

	if err := s.createSessions(ctx, offering, input.Sessions, nil); err != nil {
		return nil, err
	}

	s.logger.Info("offering created",
		logger.String("offering_id", offering.ID),
		logger.String("kind", string(kind)),
		logger.Int("sessions", len(input.Sessions)),
	)

	return offering, nil
}

func (s *OfferingService) GetDetails(ctx context.Context, id string) (*domain.OfferingDetails, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.ListByOffering(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	tiers, err := s.tierRepo.ListByOffering(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}

	usage, err := s.regRepo.TierPeakCounts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tier usage: %w", err)
	}

	details := &domain.OfferingDetails{
		Offering: *offering,
		Sessions: make([]domain.Session, len(sessions)),
		Tiers:    make([]domain.PriceTier, len(tiers)),
		Usage:    usage,
	}
	for i, session := range sessions {
		details.Sessions[i] = *session
	}
	for i, tier := range tiers {
		details.Tiers[i] = *tier
	}

	return details, nil
}

func (s *OfferingService) List(ctx context.Context) ([]*domain.Offering, error) {
	return s.offeringRepo.List(ctx)
}

func (s *OfferingService) Update(ctx context.Context, id string, input domain.UpdateOfferingInput) (*domain.Offering, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		offering.Title = input.Title
	}
	if input.Description != "" {
		offering.Description = input.Description
	}
	if input.Capacity > 0 {
		offering.Capacity = input.Capacity
	}

	if err := s.offeringRepo.Update(ctx, offering); err != nil {
		return nil, fmt.Errorf("update offering: %w", err)
	}

	sessions, err := s.sessionRepo.ListByOffering(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	for _, session := range sessions {
		if session.CalendarEventID == nil {
			continue
		}
		if err := s.calendar.UpdateEvent(ctx, offering, session); err != nil {
			s.logger.Error("failed to update calendar event",
				logger.String("session_id", session.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return offering, nil
}

// Delete removes an offering and its sessions and tiers. Refused once any
// registration references the offering; published offerings are cancelled,
// not deleted.
func (s *OfferingService) Delete(ctx context.Context, id string) error {
	has, err := s.offeringRepo.HasRegistrations(ctx, id)
	if err != nil {
		return fmt.Errorf("check registrations: %w", err)
	}
	if has {
		return domain.ErrOfferingInUse
	}

	sessions, err := s.sessionRepo.ListByOffering(ctx, id)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	for _, session := range sessions {
		if session.CalendarEventID == nil {
			continue
		}
		if err := s.calendar.DeleteEvent(ctx, *session.CalendarEventID); err != nil {
			s.logger.Error("failed to delete calendar event",
				logger.String("session_id", session.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	if err := s.offeringRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("offering deleted", logger.String("offering_id", id))
	return nil
}

// SetMultiDay turns series grouping on or off. Turning it on mints a fresh
// series key and stamps all current sessions; turning it off clears the key
// (cancellation history referencing those sessions keeps its key).
func (s *OfferingService) SetMultiDay(ctx context.Context, id string, multiDay bool) (*domain.Offering, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case multiDay && offering.SeriesKey == nil:
		key, err := s.sessionRepo.NextSeriesKey(ctx)
		if err != nil {
			return nil, fmt.Errorf("mint series key: %w", err)
		}
		if err := s.offeringRepo.SetSeriesKey(ctx, id, &key); err != nil {
			return nil, fmt.Errorf("set series key: %w", err)
		}
		if err := s.sessionRepo.ApplySeriesKey(ctx, id, &key); err != nil {
			return nil, fmt.Errorf("apply series key: %w", err)
		}
		offering.SeriesKey = &key
		s.logger.Info("offering marked multi-day",
			logger.String("offering_id", id),
			logger.Int64("series_key", key),
		)

	case !multiDay && offering.SeriesKey != nil:
		if err := s.offeringRepo.SetSeriesKey(ctx, id, nil); err != nil {
			return nil, fmt.Errorf("clear series key: %w", err)
		}
		if err := s.sessionRepo.ApplySeriesKey(ctx, id, nil); err != nil {
			return nil, fmt.Errorf("clear series key on sessions: %w", err)
		}
		offering.SeriesKey = nil
		s.logger.Info("offering unmarked multi-day", logger.String("offering_id", id))
	}

	return offering, nil
}

// AddSessions creates new sessions for the offering; they inherit the
// offering's series key immediately so registration and capacity treat them
// as part of the same unit from creation.
func (s *OfferingService) AddSessions(ctx context.Context, id string, windows []domain.SessionWindow) error {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if len(windows) == 0 {
		return fmt.Errorf("%w: at least one session is required", domain.ErrValidation)
	}

	return s.createSessions(ctx, offering, windows, nil)
}

// OfferAgain creates a new batch of sessions grouped under a freshly minted
// offer-batch key.
func (s *OfferingService) OfferAgain(ctx context.Context, id string, windows []domain.SessionWindow) (int64, error) {
	offering, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if len(windows) == 0 {
		return 0, fmt.Errorf("%w: at least one session is required", domain.ErrValidation)
	}

	batchKey, err := s.sessionRepo.NextOfferBatchKey(ctx)
	if err != nil {
		return 0, fmt.Errorf("mint offer batch key: %w", err)
	}

	if err := s.createSessions(ctx, offering, windows, &batchKey); err != nil {
		return 0, err
	}

	s.logger.Info("offering offered again",
		logger.String("offering_id", id),
		logger.Int64("offer_batch_key", batchKey),
		logger.Int("sessions", len(windows)),
	)

	return batchKey, nil
}

// Duplicate copies the offering with its tiers and future sessions. A
// multi-day source gets a new series key on the duplicate; a duplicate
// series never shares a key with its source.
func (s *OfferingService) Duplicate(ctx context.Context, id string) (*domain.Offering, error) {
	src, err := s.offeringRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := &domain.Offering{
		ID:            uuid.New().String(),
		Title:         src.Title,
		Description:   src.Description,
		Kind:          src.Kind,
		Capacity:      src.Capacity,
		TieredPricing: src.TieredPricing,
	}
	if src.MultiDay() {
		key, err := s.sessionRepo.NextSeriesKey(ctx)
		if err != nil {
			return nil, fmt.Errorf("mint series key: %w", err)
		}
		dup.SeriesKey = &key
	}

	if err := s.offeringRepo.Create(ctx, dup); err != nil {
		return nil, fmt.Errorf("create duplicate: %w", err)
	}

	tiers, err := s.tierRepo.ListByOffering(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	for _, t := range tiers {
		if t.Status != domain.TierStatusActive {
			continue
		}
		tier := &domain.PriceTier{
			ID:         uuid.New().String(),
			OfferingID: dup.ID,
			Name:       t.Name,
			PriceCents: t.PriceCents,
			Capacity:   t.Capacity,
			Status:     domain.TierStatusActive,
		}
		if err := s.tierRepo.Create(ctx, tier); err != nil {
			return nil, fmt.Errorf("create tier: %w", err)
		}
	}

	sessions, err := s.sessionRepo.ListByOffering(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	now := time.Now().UTC()
	var windows []domain.SessionWindow
	for _, session := range sessions {
		if session.StartAt.Before(now) || session.Status == domain.SessionStatusCancelled {
			continue
		}
		windows = append(windows, domain.SessionWindow{
			StartAt:        session.StartAt,
			EndAt:          session.EndAt,
			DisplayStartAt: session.DisplayStartAt,
			DisplayEndAt:   session.DisplayEndAt,
		})
	}
	if err := s.createSessions(ctx, dup, windows, nil); err != nil {
		return nil, err
	}

	s.logger.Info("offering duplicated",
		logger.String("source_id", id),
		logger.String("offering_id", dup.ID),
	)

	return dup, nil
}

func (s *OfferingService) createSessions(ctx context.Context, offering *domain.Offering, windows []domain.SessionWindow, batchKey *int64) error {
	for _, w := range windows {
		if !w.EndAt.After(w.StartAt) {
			return fmt.Errorf("%w: session end must be after start", domain.ErrValidation)
		}

		session := &domain.Session{
			ID:             uuid.New().String(),
			OfferingID:     offering.ID,
			StartAt:        w.StartAt,
			EndAt:          w.EndAt,
			DisplayStartAt: w.DisplayStartAt,
			DisplayEndAt:   w.DisplayEndAt,
			Status:         domain.SessionStatusActive,
			SeriesKey:      offering.SeriesKey,
			OfferBatchKey:  batchKey,
		}
		if session.DisplayStartAt.IsZero() {
			session.DisplayStartAt = w.StartAt
		}
		if session.DisplayEndAt.IsZero() {
			session.DisplayEndAt = w.EndAt
		}

		if err := s.sessionRepo.Create(ctx, session); err != nil {
			return fmt.Errorf("create session: %w", err)
		}

		// Publish after the insert so a failed insert never leaves an
		// orphaned calendar event behind.
		eventID, err := s.calendar.CreateEvent(ctx, offering, session)
		if err != nil {
			s.logger.Error("failed to publish calendar event",
				logger.String("session_id", session.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if eventID == "" {
			continue
		}
		session.CalendarEventID = &eventID
		if err := s.sessionRepo.SetCalendarEventID(ctx, session.ID, &eventID); err != nil {
			s.logger.Error("failed to store calendar event id",
				logger.String("session_id", session.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return nil
}
