package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/stpnv0/SessionBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cancellationFixture struct {
	regRepo      *mocks.MockRegistrationRepo
	sessionRepo  *mocks.MockSessionRepo
	offeringRepo *mocks.MockOfferingRepo
	tierRepo     *mocks.MockTierRepo
	userRepo     *mocks.MockUserRepo
	cancRepo     *mocks.MockCancellationRepo
	notifier     *mocks.MockCancellationNotifier
	calendar     *mocks.MockCalendarPublisher
	svc          *CancellationService
}

func newCancellationService(t *testing.T) cancellationFixture {
	t.Helper()
	f := cancellationFixture{
		regRepo:      mocks.NewMockRegistrationRepo(t),
		sessionRepo:  mocks.NewMockSessionRepo(t),
		offeringRepo: mocks.NewMockOfferingRepo(t),
		tierRepo:     mocks.NewMockTierRepo(t),
		userRepo:     mocks.NewMockUserRepo(t),
		cancRepo:     mocks.NewMockCancellationRepo(t),
		notifier:     mocks.NewMockCancellationNotifier(t),
		calendar:     mocks.NewMockCalendarPublisher(t),
	}
	f.svc = NewCancellationService(
		f.regRepo, f.sessionRepo, f.offeringRepo, f.tierRepo,
		f.userRepo, f.cancRepo, f.notifier, f.calendar, newTestLogger(t),
	)
	return f
}

func TestCancellationService_CancelSession_Standalone(t *testing.T) {
	f := newCancellationService(t)

	eventID := "cal-1"
	session := &domain.Session{ID: "s1", OfferingID: "o1", CalendarEventID: &eventID, Status: domain.SessionStatusActive}
	offering := &domain.Offering{ID: "o1", Title: "Welding Basics"}
	regs := []*domain.Registration{
		{ID: "r1", SessionID: "s1", UserID: "u1", Result: domain.ResultCancelled},
		{ID: "r2", SessionID: "s1", UserID: "u2", Result: domain.ResultCancelled},
	}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.regRepo.EXPECT().CancelAllForSession(mock.Anything, "s1").Return(regs, nil)
	f.cancRepo.EXPECT().Exists(mock.Anything, "u1", "o1", (*int64)(nil), true).Return(false, nil)
	f.cancRepo.EXPECT().Exists(mock.Anything, "u2", "o1", (*int64)(nil), true).Return(false, nil)

	var records []*domain.CancellationRecord
	f.cancRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, rec *domain.CancellationRecord) {
			records = append(records, rec)
		}).
		Return(nil).Times(2)

	f.calendar.EXPECT().DeleteEvent(mock.Anything, "cal-1").Return(nil)
	f.sessionRepo.EXPECT().Cancel(mock.Anything, "s1").Return(nil)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	f.notifier.EXPECT().NotifySessionCancelled(mock.Anything, mock.Anything, offering, session, (*domain.PriceTier)(nil)).Return().Times(2)

	affected, err := f.svc.CancelSession(context.Background(), "s1", true)

	require.NoError(t, err)
	assert.Equal(t, 2, affected)
	require.Len(t, records, 2)
	assert.True(t, records[0].ByAdmin)
	assert.Equal(t, "s1", records[0].SessionID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCancellationService_CancelSession_SeriesMemberAuditsOnce(t *testing.T) {
	f := newCancellationService(t)

	key := int64(7)
	session := &domain.Session{ID: "s2", OfferingID: "o1", SeriesKey: &key, Status: domain.SessionStatusActive}
	series := []*domain.Session{
		{ID: "s1", OfferingID: "o1", SeriesKey: &key},
		{ID: "s2", OfferingID: "o1", SeriesKey: &key},
	}
	offering := &domain.Offering{ID: "o1", Title: "Ceramics Intensive"}
	regs := []*domain.Registration{
		{ID: "r1", SessionID: "s2", UserID: "u1", Result: domain.ResultCancelled},
	}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s2").Return(session, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.regRepo.EXPECT().CancelAllForSession(mock.Anything, "s2").Return(regs, nil)
	f.sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, key).Return(series, nil)
	f.cancRepo.EXPECT().Exists(mock.Anything, "u1", "o1", &key, true).Return(false, nil)

	var rec *domain.CancellationRecord
	f.cancRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, r *domain.CancellationRecord) { rec = r }).
		Return(nil)

	f.sessionRepo.EXPECT().Cancel(mock.Anything, "s2").Return(nil)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.notifier.EXPECT().NotifySeriesCancelled(mock.Anything, mock.Anything, offering, series, (*domain.PriceTier)(nil)).Return()

	_, err := f.svc.CancelSession(context.Background(), "s2", true)

	require.NoError(t, err)
	require.NotNil(t, rec)
	// The record points at the earliest session of the series, not the one
	// the admin happened to cancel.
	assert.Equal(t, "s1", rec.SessionID)
	assert.Equal(t, &key, rec.SeriesKey)

	time.Sleep(50 * time.Millisecond)
}

func TestCancellationService_CancelSession_DedupesAudit(t *testing.T) {
	f := newCancellationService(t)

	session := &domain.Session{ID: "s1", OfferingID: "o1", Status: domain.SessionStatusActive}
	offering := &domain.Offering{ID: "o1", Title: "Welding Basics"}
	regs := []*domain.Registration{
		{ID: "r1", SessionID: "s1", UserID: "u1", Result: domain.ResultCancelled},
	}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.regRepo.EXPECT().CancelAllForSession(mock.Anything, "s1").Return(regs, nil)
	f.cancRepo.EXPECT().Exists(mock.Anything, "u1", "o1", (*int64)(nil), true).Return(true, nil)
	f.sessionRepo.EXPECT().Cancel(mock.Anything, "s1").Return(nil)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.notifier.EXPECT().NotifySessionCancelled(mock.Anything, mock.Anything, offering, session, (*domain.PriceTier)(nil)).Return()

	_, err := f.svc.CancelSession(context.Background(), "s1", true)

	require.NoError(t, err)
	f.cancRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	time.Sleep(50 * time.Millisecond)
}

func TestCancellationService_CancelSeries_OneRecordPerUser(t *testing.T) {
	f := newCancellationService(t)

	key := int64(7)
	sessions := []*domain.Session{
		{ID: "s1", OfferingID: "o1", SeriesKey: &key},
		{ID: "s2", OfferingID: "o1", SeriesKey: &key},
	}
	offering := &domain.Offering{ID: "o1", Title: "Ceramics Intensive"}

	f.sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, key).Return(sessions, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.regRepo.EXPECT().CancelAllForSession(mock.Anything, "s1").Return([]*domain.Registration{
		{ID: "r1", SessionID: "s1", UserID: "u1", Result: domain.ResultCancelled},
	}, nil)
	f.regRepo.EXPECT().CancelAllForSession(mock.Anything, "s2").Return([]*domain.Registration{
		{ID: "r2", SessionID: "s2", UserID: "u1", Result: domain.ResultCancelled},
	}, nil)
	f.sessionRepo.EXPECT().Cancel(mock.Anything, "s1").Return(nil)
	f.sessionRepo.EXPECT().Cancel(mock.Anything, "s2").Return(nil)
	f.cancRepo.EXPECT().Exists(mock.Anything, "u1", "o1", &key, true).Return(false, nil)

	var records []*domain.CancellationRecord
	f.cancRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, rec *domain.CancellationRecord) {
			records = append(records, rec)
		}).
		Return(nil)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.notifier.EXPECT().NotifySeriesCancelled(mock.Anything, mock.Anything, offering, sessions, (*domain.PriceTier)(nil)).Return()

	affected, err := f.svc.CancelSeries(context.Background(), key, true)

	require.NoError(t, err)
	assert.Equal(t, 1, affected)
	require.Len(t, records, 1)
	assert.Equal(t, "s1", records[0].SessionID)

	time.Sleep(50 * time.Millisecond)
}

func TestCancellationService_CancelSeries_NotFound(t *testing.T) {
	f := newCancellationService(t)

	f.sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, int64(42)).Return(nil, nil)

	_, err := f.svc.CancelSeries(context.Background(), 42, true)

	assert.ErrorIs(t, err, domain.ErrSeriesNotFound)
}

func TestCancellationService_CancelRegistration_UserInitiated(t *testing.T) {
	f := newCancellationService(t)

	session := &domain.Session{ID: "s1", OfferingID: "o1", Status: domain.SessionStatusActive}
	offering := &domain.Offering{ID: "o1", Title: "Welding Basics"}
	reg := &domain.Registration{ID: "r1", SessionID: "s1", UserID: "u1", Result: domain.ResultCancelled}

	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.regRepo.EXPECT().CancelActive(mock.Anything, "s1", "u1").Return(reg, nil)
	f.cancRepo.EXPECT().Exists(mock.Anything, "u1", "o1", (*int64)(nil), false).Return(false, nil)

	var rec *domain.CancellationRecord
	f.cancRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, r *domain.CancellationRecord) { rec = r }).
		Return(nil)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.notifier.EXPECT().NotifySessionCancelled(mock.Anything, mock.Anything, offering, session, (*domain.PriceTier)(nil)).Return()

	err := f.svc.CancelRegistration(context.Background(), "s1", "u1")

	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.False(t, rec.ByAdmin)

	time.Sleep(50 * time.Millisecond)
}

func TestCancellationService_CancelRegistration_NothingToCancel(t *testing.T) {
	f := newCancellationService(t)

	session := &domain.Session{ID: "s1", OfferingID: "o1", Status: domain.SessionStatusActive}
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1"}, nil)
	f.regRepo.EXPECT().CancelActive(mock.Anything, "s1", "u1").Return(nil, domain.ErrNothingToCancel)

	err := f.svc.CancelRegistration(context.Background(), "s1", "u1")

	assert.ErrorIs(t, err, domain.ErrNothingToCancel)
}

func TestCancellationService_CancelSeriesRegistration(t *testing.T) {
	f := newCancellationService(t)

	key := int64(7)
	sessions := []*domain.Session{
		{ID: "s1", OfferingID: "o1", SeriesKey: &key},
		{ID: "s2", OfferingID: "o1", SeriesKey: &key},
	}
	offering := &domain.Offering{ID: "o1", Title: "Ceramics Intensive"}

	f.sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, key).Return(sessions, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.regRepo.EXPECT().CancelActive(mock.Anything, "s1", "u1").Return(
		&domain.Registration{ID: "r1", SessionID: "s1", UserID: "u1", Result: domain.ResultCancelled}, nil)
	f.regRepo.EXPECT().CancelActive(mock.Anything, "s2", "u1").Return(nil, domain.ErrNothingToCancel)
	f.cancRepo.EXPECT().Exists(mock.Anything, "u1", "o1", &key, false).Return(false, nil)
	f.cancRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.notifier.EXPECT().NotifySeriesCancelled(mock.Anything, mock.Anything, offering, sessions, (*domain.PriceTier)(nil)).Return()

	err := f.svc.CancelSeriesRegistration(context.Background(), key, "u1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestCancellationService_CancelSeriesRegistration_NothingToCancel(t *testing.T) {
	f := newCancellationService(t)

	key := int64(7)
	sessions := []*domain.Session{
		{ID: "s1", OfferingID: "o1", SeriesKey: &key},
	}

	f.sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, key).Return(sessions, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1"}, nil)
	f.regRepo.EXPECT().CancelActive(mock.Anything, "s1", "u1").Return(nil, domain.ErrNothingToCancel)

	err := f.svc.CancelSeriesRegistration(context.Background(), key, "u1")

	assert.ErrorIs(t, err, domain.ErrNothingToCancel)
}

func TestCancellationService_CancelPriceTier_RecordPerUser(t *testing.T) {
	f := newCancellationService(t)

	tierID := "t1"
	tier := &domain.PriceTier{ID: "t1", OfferingID: "o1", Name: "Member", Status: domain.TierStatusActive}
	offering := &domain.Offering{ID: "o1", Title: "Welding Basics"}
	regs := []*domain.Registration{
		{ID: "r1", SessionID: "s1", UserID: "u1", TierID: &tierID, Result: domain.ResultCancelled},
		{ID: "r2", SessionID: "s2", UserID: "u2", TierID: &tierID, Result: domain.ResultCancelled},
	}
	s1 := &domain.Session{ID: "s1", OfferingID: "o1"}
	s2 := &domain.Session{ID: "s2", OfferingID: "o1"}

	f.tierRepo.EXPECT().GetByID(mock.Anything, "t1").Return(tier, nil)
	f.offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offering, nil)
	f.regRepo.EXPECT().CancelAllForTier(mock.Anything, "t1").Return(regs, nil)
	f.tierRepo.EXPECT().Cancel(mock.Anything, "t1").Return(nil)
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(s1, nil)
	f.sessionRepo.EXPECT().GetByID(mock.Anything, "s2").Return(s2, nil)
	f.cancRepo.EXPECT().Exists(mock.Anything, "u1", "o1", (*int64)(nil), true).Return(false, nil)
	f.cancRepo.EXPECT().Exists(mock.Anything, "u2", "o1", (*int64)(nil), true).Return(false, nil)

	var records []*domain.CancellationRecord
	f.cancRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, rec *domain.CancellationRecord) {
			records = append(records, rec)
		}).
		Return(nil).Times(2)

	f.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	f.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(&domain.User{ID: "u2"}, nil)
	f.notifier.EXPECT().NotifySessionCancelled(mock.Anything, mock.Anything, offering, mock.Anything, tier).Return().Times(2)

	affected, err := f.svc.CancelPriceTier(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, 2, affected)
	require.Len(t, records, 2)
	assert.Equal(t, &tierID, records[0].TierID)
	assert.True(t, records[0].ByAdmin)

	time.Sleep(50 * time.Millisecond)
}

func TestCancellationService_ResolveCancellation(t *testing.T) {
	f := newCancellationService(t)

	f.cancRepo.EXPECT().Resolve(mock.Anything, "c1").Return(nil)

	err := f.svc.ResolveCancellation(context.Background(), "c1")

	require.NoError(t, err)
}

func TestCancellationService_ListCancellations_Filtered(t *testing.T) {
	f := newCancellationService(t)

	resolved := false
	records := []*domain.CancellationRecord{{ID: "c1", UserID: "u1"}}
	f.cancRepo.EXPECT().List(mock.Anything, &resolved).Return(records, nil)

	got, err := f.svc.ListCancellations(context.Background(), &resolved)

	require.NoError(t, err)
	assert.Equal(t, records, got)
}
