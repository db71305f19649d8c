package service

import (
	"context"
	"testing"

	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/stpnv0/SessionBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCapacityService(t *testing.T) (*mocks.MockSessionRepo, *mocks.MockOfferingRepo, *mocks.MockTierRepo, *mocks.MockRegistrationRepo, *CapacityService) {
	t.Helper()
	sessionRepo := mocks.NewMockSessionRepo(t)
	offeringRepo := mocks.NewMockOfferingRepo(t)
	tierRepo := mocks.NewMockTierRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewCapacityService(sessionRepo, offeringRepo, tierRepo, regRepo)
	return sessionRepo, offeringRepo, tierRepo, regRepo, svc
}

func TestCapacityService_EvaluateSession_HasRoom(t *testing.T) {
	sessionRepo, offeringRepo, _, regRepo, svc := newCapacityService(t)

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OfferingID: "o1"}, nil)
	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1", Capacity: 10}, nil)
	regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", (*string)(nil)).Return(4, nil)

	res, err := svc.EvaluateSession(context.Background(), "s1", nil)

	require.NoError(t, err)
	assert.True(t, res.HasCapacity)
	assert.Equal(t, 4, res.TotalRegistrations)
	assert.Equal(t, 10, res.SessionCapacity)
}

func TestCapacityService_EvaluateSession_Full(t *testing.T) {
	sessionRepo, offeringRepo, _, regRepo, svc := newCapacityService(t)

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OfferingID: "o1"}, nil)
	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1", Capacity: 3}, nil)
	regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", (*string)(nil)).Return(3, nil)

	res, err := svc.EvaluateSession(context.Background(), "s1", nil)

	require.NoError(t, err)
	assert.False(t, res.HasCapacity)
	assert.Equal(t, domain.ReasonSessionFull, res.Reason)
	assert.Equal(t, 3, res.TotalRegistrations)
}

func TestCapacityService_EvaluateSession_TierFullWithBaseFree(t *testing.T) {
	sessionRepo, offeringRepo, tierRepo, regRepo, svc := newCapacityService(t)

	tierID := "t1"
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OfferingID: "o1"}, nil)
	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1", Capacity: 20}, nil)
	regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", (*string)(nil)).Return(5, nil)
	tierRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.PriceTier{
		ID: "t1", OfferingID: "o1", Capacity: 2, Status: domain.TierStatusActive,
	}, nil)
	regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", &tierID).Return(2, nil)

	res, err := svc.EvaluateSession(context.Background(), "s1", &tierID)

	require.NoError(t, err)
	assert.False(t, res.HasCapacity)
	assert.Equal(t, domain.ReasonTierFull, res.Reason)
	assert.Equal(t, 5, res.TotalRegistrations)
	assert.Equal(t, 2, res.TierRegistrations)
	assert.Equal(t, 2, res.TierCapacity)
}

func TestCapacityService_EvaluateSession_SessionFullBeatsTierFull(t *testing.T) {
	sessionRepo, offeringRepo, _, regRepo, svc := newCapacityService(t)

	tierID := "t1"
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OfferingID: "o1"}, nil)
	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1", Capacity: 5}, nil)
	regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", (*string)(nil)).Return(5, nil)

	res, err := svc.EvaluateSession(context.Background(), "s1", &tierID)

	require.NoError(t, err)
	assert.False(t, res.HasCapacity)
	assert.Equal(t, domain.ReasonSessionFull, res.Reason)
}

func TestCapacityService_EvaluateSession_SeriesMemberUsesSeriesCounts(t *testing.T) {
	sessionRepo, offeringRepo, _, regRepo, svc := newCapacityService(t)

	key := int64(7)
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OfferingID: "o1", SeriesKey: &key}, nil)
	sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, key).Return([]*domain.Session{
		{ID: "s1", OfferingID: "o1", SeriesKey: &key},
		{ID: "s2", OfferingID: "o1", SeriesKey: &key},
	}, nil)
	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1", Capacity: 10}, nil)
	regRepo.EXPECT().CountDistinctUsersBySeries(mock.Anything, key, (*string)(nil)).Return(6, nil)

	res, err := svc.EvaluateSession(context.Background(), "s1", nil)

	require.NoError(t, err)
	assert.True(t, res.HasCapacity)
	assert.Equal(t, 6, res.TotalRegistrations)
}

func TestCapacityService_EvaluateSeries_NotFound(t *testing.T) {
	sessionRepo, _, _, _, svc := newCapacityService(t)

	sessionRepo.EXPECT().ListBySeriesKey(mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.EvaluateSeries(context.Background(), 99, nil)

	assert.ErrorIs(t, err, domain.ErrSeriesNotFound)
}

func TestCapacityService_EvaluateSession_TierFromAnotherOffering(t *testing.T) {
	sessionRepo, offeringRepo, tierRepo, regRepo, svc := newCapacityService(t)

	tierID := "t1"
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OfferingID: "o1"}, nil)
	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1", Capacity: 10}, nil)
	regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", (*string)(nil)).Return(0, nil)
	tierRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.PriceTier{
		ID: "t1", OfferingID: "other", Capacity: 5, Status: domain.TierStatusActive,
	}, nil)

	_, err := svc.EvaluateSession(context.Background(), "s1", &tierID)

	assert.ErrorIs(t, err, domain.ErrTierNotFound)
}

func TestCapacityService_EvaluateSession_CancelledTierRejected(t *testing.T) {
	sessionRepo, offeringRepo, tierRepo, regRepo, svc := newCapacityService(t)

	tierID := "t1"
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OfferingID: "o1"}, nil)
	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1", Capacity: 10}, nil)
	regRepo.EXPECT().CountActiveBySession(mock.Anything, "s1", (*string)(nil)).Return(0, nil)
	tierRepo.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.PriceTier{
		ID: "t1", OfferingID: "o1", Capacity: 5, Status: domain.TierStatusCancelled,
	}, nil)

	_, err := svc.EvaluateSession(context.Background(), "s1", &tierID)

	assert.ErrorIs(t, err, domain.ErrTierNotFound)
}

func TestCapacityService_TierUsage(t *testing.T) {
	_, offeringRepo, _, regRepo, svc := newCapacityService(t)

	usage := []*domain.TierUsage{
		{TierID: "t1", Name: "Member", Capacity: 5, PeakRegistrations: 3},
	}
	offeringRepo.EXPECT().GetByID(mock.Anything, "o1").Return(&domain.Offering{ID: "o1"}, nil)
	regRepo.EXPECT().TierPeakCounts(mock.Anything, "o1").Return(usage, nil)

	got, err := svc.TierUsage(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, usage, got)
}

func TestCapacityService_TierUsage_OfferingNotFound(t *testing.T) {
	_, offeringRepo, _, _, svc := newCapacityService(t)

	offeringRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrOfferingNotFound)

	_, err := svc.TierUsage(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrOfferingNotFound)
}
