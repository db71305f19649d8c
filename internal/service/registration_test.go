package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/stpnv0/SessionBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type registrationFixture struct {
	regRepo      *mocks.MockRegistrationRepo
	sessionRepo  *mocks.MockSessionRepo
	offeringRepo *mocks.MockOfferingRepo
	tierRepo     *mocks.MockTierRepo
	userRepo     *mocks.MockUserRepo
	svc          *RegistrationService
}

func newRegistrationService(t *testing.T) registrationFixture {
	t.Helper()
	f := registrationFixture{
		regRepo:      mocks.NewMockRegistrationRepo(t),
		sessionRepo:  mocks.NewMockSessionRepo(t),
		offeringRepo: mocks.NewMockOfferingRepo(t),
		tierRepo:     mocks.NewMockTierRepo(t),
		userRepo:     mocks.NewMockUserRepo(t),
	}
	capacity := NewCapacityService(f.sessionRepo, f.offeringRepo, f.tierRepo, f.regRepo)
	f.svc = NewRegistrationService(f.regRepo, f.sessionRepo, f.offeringRepo, f.userRepo, capacity, newTestLogger(t))
	return f
}

func TestRegistrationService_RegisterForSession_Workshop(t *testing.T) {
	f := newRegistrationService(t)

	start := time.Now().Add(24 * time.Hour)
	session := &domain.Session{ID: "s1", OfferingID: "o1", StartAt: start, Status: domain.SessionStatusActive}
	offering := &domain.Offering{ID: "o1", Title: "Welding Basics", Kind: domain.KindWorkshop, Capacity: 10}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Username: "alice"}, nil)
	f.regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", (*string)(nil)).Return(2, nil)

	var created *domain.Registration
	f.regRepo.EXPECT().Register(mock.Anything, mock.Anything, (*int64)(nil)).
		Run(func(ctx context.Context, reg *domain.Registration, seriesKey *int64) {
			created = reg
		}).
		Return(domain.OutcomeRegistered, nil)

	out, err := f.svc.RegisterForSession(context.Background(), "s1", "u1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRegistered, out.Outcome)
	assert.Equal(t, "s1", out.SessionID)

	require.NotNil(t, created)
	assert.Equal(t, domain.ResultPassed, created.Result)
	assert.Equal(t, "u1", created.UserID)
	assert.NotEmpty(t, created.ID)
}

func TestRegistrationService_RegisterForSession_OrientationStartsPending(t *testing.T) {
	f := newRegistrationService(t)

	session := &domain.Session{ID: "s1", OfferingID: "o1", Status: domain.SessionStatusActive}
	offering := &domain.Offering{ID: "o1", Title: "Shop Orientation", Kind: domain.KindOrientation, Capacity: 10}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", (*string)(nil)).Return(0, nil)

	var created *domain.Registration
	f.regRepo.EXPECT().Register(mock.Anything, mock.Anything, (*int64)(nil)).
		Run(func(ctx context.Context, reg *domain.Registration, seriesKey *int64) {
			created = reg
		}).
		Return(domain.OutcomeRegistered, nil)

	_, err := f.svc.RegisterForSession(context.Background(), "s1", "u1", nil)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.ResultPending, created.Result)
}

func TestRegistrationService_RegisterForSession_Full(t *testing.T) {
	f := newRegistrationService(t)

	session := &domain.Session{ID: "s1", OfferingID: "o1", Status: domain.SessionStatusActive}
	offering := &domain.Offering{ID: "o1", Title: "Welding Basics", Capacity: 3}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", (*string)(nil)).Return(3, nil)

	_, err := f.svc.RegisterForSession(context.Background(), "s1", "u1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionFull)

	var capErr *domain.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 3, capErr.TotalRegistrations)
}

func TestRegistrationService_RegisterForSession_Closed(t *testing.T) {
	f := newRegistrationService(t)

	session := &domain.Session{ID: "s1", OfferingID: "o1", Status: domain.SessionStatusPast}
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)

	_, err := f.svc.RegisterForSession(context.Background(), "s1", "u1", nil)

	assert.ErrorIs(t, err, domain.ErrSessionClosed)
}

func TestRegistrationService_RegisterForSession_UserNotFound(t *testing.T) {
	f := newRegistrationService(t)

	session := &domain.Session{ID: "s1", OfferingID: "o1", Status: domain.SessionStatusActive}
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1", Capacity: 5}, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := f.svc.RegisterForSession(context.Background(), "s1", "missing", nil)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegistrationService_RegisterForSeries_AllSessions(t *testing.T) {
	f := newRegistrationService(t)

	key := int64(7)
	sessions := []*domain.Session{
		{ID: "s1", OfferingID: "o1", SeriesKey: &key, Status: domain.SessionStatusActive},
		{ID: "s2", OfferingID: "o1", SeriesKey: &key, Status: domain.SessionStatusActive},
		{ID: "s3", OfferingID: "o1", SeriesKey: &key, Status: domain.SessionStatusActive},
	}
	offering := &domain.Offering{ID: "o1", Title: "Ceramics Intensive", Kind: domain.KindWorkshop, Capacity: 8}

	f.sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, key).Return(sessions, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.regRepo.EXPECT().CountDistinctUsersBySeries(mock.Anything, key, (*string)(nil)).Return(5, nil)
	f.regRepo.EXPECT().Register(mock.Anything, mock.Anything, &key).Return(domain.OutcomeRegistered, nil).Times(3)

	outcomes, err := f.svc.RegisterForSeries(context.Background(), key, "u1", nil)

	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	for _, out := range outcomes {
		assert.Equal(t, domain.OutcomeRegistered, out.Outcome)
	}
}

func TestRegistrationService_RegisterForSeries_SkipsClosedSession(t *testing.T) {
	f := newRegistrationService(t)

	key := int64(7)
	sessions := []*domain.Session{
		{ID: "s1", OfferingID: "o1", SeriesKey: &key, Status: domain.SessionStatusPast},
		{ID: "s2", OfferingID: "o1", SeriesKey: &key, Status: domain.SessionStatusActive},
	}
	offering := &domain.Offering{ID: "o1", Title: "Ceramics Intensive", Capacity: 8}

	f.sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, key).Return(sessions, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.regRepo.EXPECT().CountDistinctUsersBySeries(mock.Anything, key, (*string)(nil)).Return(0, nil)
	f.regRepo.EXPECT().Register(mock.Anything, mock.Anything, &key).Return(domain.OutcomeRegistered, nil).Once()

	outcomes, err := f.svc.RegisterForSeries(context.Background(), key, "u1", nil)

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, domain.OutcomeFailed, outcomes[0].Outcome)
	assert.NotEmpty(t, outcomes[0].Error)
	assert.Equal(t, domain.OutcomeRegistered, outcomes[1].Outcome)
}

func TestRegistrationService_RegisterForSeries_MidSeriesFailureDoesNotRollBack(t *testing.T) {
	f := newRegistrationService(t)

	key := int64(7)
	sessions := []*domain.Session{
		{ID: "s1", OfferingID: "o1", SeriesKey: &key, Status: domain.SessionStatusActive},
		{ID: "s2", OfferingID: "o1", SeriesKey: &key, Status: domain.SessionStatusActive},
	}
	offering := &domain.Offering{ID: "o1", Title: "Ceramics Intensive", Capacity: 8}

	f.sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, key).Return(sessions, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.regRepo.EXPECT().CountDistinctUsersBySeries(mock.Anything, key, (*string)(nil)).Return(0, nil)
	f.regRepo.EXPECT().Register(mock.Anything, mock.Anything, &key).Return(domain.OutcomeRegistered, nil).Once()
	f.regRepo.EXPECT().Register(mock.Anything, mock.Anything, &key).Return("", errors.New("db error")).Once()

	outcomes, err := f.svc.RegisterForSeries(context.Background(), key, "u1", nil)

	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, domain.OutcomeRegistered, outcomes[0].Outcome)
	assert.Equal(t, domain.OutcomeFailed, outcomes[1].Outcome)
}

func TestRegistrationService_RegisterForSeries_NotFound(t *testing.T) {
	f := newRegistrationService(t)

	f.sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, int64(42)).Return(nil, nil)

	_, err := f.svc.RegisterForSeries(context.Background(), 42, "u1", nil)

	assert.ErrorIs(t, err, domain.ErrSeriesNotFound)
}

func TestRegistrationService_RegisterForSeries_Full(t *testing.T) {
	f := newRegistrationService(t)

	key := int64(7)
	sessions := []*domain.Session{
		{ID: "s1", OfferingID: "o1", SeriesKey: &key, Status: domain.SessionStatusActive},
	}
	offering := &domain.Offering{ID: "o1", Title: "Ceramics Intensive", Capacity: 5}

	f.sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, key).Return(sessions, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.regRepo.EXPECT().CountDistinctUsersBySeries(mock.Anything, key, (*string)(nil)).Return(5, nil)

	_, err := f.svc.RegisterForSeries(context.Background(), key, "u1", nil)

	assert.ErrorIs(t, err, domain.ErrSessionFull)
}

func TestRegistrationService_ReRegistrationReactivates(t *testing.T) {
	f := newRegistrationService(t)

	session := &domain.Session{ID: "s1", OfferingID: "o1", Status: domain.SessionStatusActive}
	offering := &domain.Offering{ID: "o1", Title: "Welding Basics", Capacity: 5}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", (*string)(nil)).Return(1, nil)
	f.regRepo.EXPECT().Register(mock.Anything, mock.Anything, (*int64)(nil)).Return(domain.OutcomeReRegistered, nil)

	out, err := f.svc.RegisterForSession(context.Background(), "s1", "u1", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeReRegistered, out.Outcome)
}
