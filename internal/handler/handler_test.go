package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/stpnv0/SessionBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/SessionBooker/internal/handler/mocks"
	"github.com/stpnv0/SessionBooker/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	offeringSvc     *hmocks.MockOfferingSvc
	registrationSvc *hmocks.MockRegistrationSvc
	cancellationSvc *hmocks.MockCancellationSvc
	capacitySvc     *hmocks.MockCapacitySvc
	userSvc         *hmocks.MockUserSvc
	r               http.Handler
}

func setupRouter(t *testing.T) handlerFixture {
	t.Helper()
	f := handlerFixture{
		offeringSvc:     hmocks.NewMockOfferingSvc(t),
		registrationSvc: hmocks.NewMockRegistrationSvc(t),
		cancellationSvc: hmocks.NewMockCancellationSvc(t),
		capacitySvc:     hmocks.NewMockCapacitySvc(t),
		userSvc:         hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(f.offeringSvc, f.registrationSvc, f.cancellationSvc, f.capacitySvc, f.userSvc)
	f.r = router.InitRouter("test", h)
	return f
}

// --- Offerings ---

func TestHandler_CreateOffering_Success(t *testing.T) {
	f := setupRouter(t)

	offering := &domain.Offering{
		ID:        uuid.New().String(),
		Title:     "Welding Basics",
		Kind:      domain.KindWorkshop,
		Capacity:  12,
		CreatedAt: time.Now(),
	}

	f.offeringSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(offering, nil)

	start := time.Now().Add(48 * time.Hour)
	body, _ := json.Marshal(dto.CreateOfferingRequest{
		Title:    "Welding Basics",
		Kind:     "workshop",
		Capacity: 12,
		Sessions: []dto.SessionWindowRequest{
			{StartAt: start.Format(time.RFC3339), EndAt: start.Add(2 * time.Hour).Format(time.RFC3339)},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/offerings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OfferingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Welding Basics", resp.Title)
}

func TestHandler_CreateOffering_BadDate(t *testing.T) {
	f := setupRouter(t)

	body := []byte(`{"title":"X","capacity":5,"sessions":[{"start_at":"not-a-date","end_at":"also-bad"}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/offerings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateOffering_MissingTitle(t *testing.T) {
	f := setupRouter(t)

	body := []byte(`{"capacity":5}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/offerings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetOffering_Success(t *testing.T) {
	f := setupRouter(t)

	offeringID := uuid.New().String()
	details := &domain.OfferingDetails{
		Offering: domain.Offering{ID: offeringID, Title: "Welding Basics", Capacity: 12, CreatedAt: time.Now()},
		Sessions: []domain.Session{{ID: uuid.New().String(), OfferingID: offeringID}},
	}

	f.offeringSvc.EXPECT().GetDetails(mock.Anything, offeringID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/offerings/"+offeringID, nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OfferingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Welding Basics", resp.Offering.Title)
	assert.Len(t, resp.Sessions, 1)
}

func TestHandler_GetOffering_InvalidID(t *testing.T) {
	f := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/offerings/not-a-uuid", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetOffering_NotFound(t *testing.T) {
	f := setupRouter(t)

	offeringID := uuid.New().String()
	f.offeringSvc.EXPECT().GetDetails(mock.Anything, offeringID).Return(nil, domain.ErrOfferingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/offerings/"+offeringID, nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteOffering_InUse(t *testing.T) {
	f := setupRouter(t)

	offeringID := uuid.New().String()
	f.offeringSvc.EXPECT().Delete(mock.Anything, offeringID).Return(domain.ErrOfferingInUse)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/offerings/"+offeringID, nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SetMultiDay_RequiresFlag(t *testing.T) {
	f := setupRouter(t)

	offeringID := uuid.New().String()
	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/offerings/"+offeringID+"/multi-day", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetMultiDay_Success(t *testing.T) {
	f := setupRouter(t)

	offeringID := uuid.New().String()
	key := int64(7)
	f.offeringSvc.EXPECT().SetMultiDay(mock.Anything, offeringID, true).Return(&domain.Offering{
		ID: offeringID, Title: "Ceramics Intensive", SeriesKey: &key, CreatedAt: time.Now(),
	}, nil)

	body := []byte(`{"multi_day":true}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/offerings/"+offeringID+"/multi-day", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OfferingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.SeriesKey)
	assert.Equal(t, int64(7), *resp.SeriesKey)
}

func TestHandler_OfferAgain_Success(t *testing.T) {
	f := setupRouter(t)

	offeringID := uuid.New().String()
	f.offeringSvc.EXPECT().OfferAgain(mock.Anything, offeringID, mock.Anything).Return(int64(3), nil)

	start := time.Now().Add(24 * time.Hour)
	body, _ := json.Marshal(dto.AddSessionsRequest{
		Sessions: []dto.SessionWindowRequest{
			{StartAt: start.Format(time.RFC3339), EndAt: start.Add(time.Hour).Format(time.RFC3339)},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/offerings/"+offeringID+"/offer-again", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"offer_batch_key":3`)
}

// --- Registration ---

func TestHandler_RegisterForSession_Success(t *testing.T) {
	f := setupRouter(t)

	sessionID := uuid.New().String()
	userID := uuid.New().String()
	outcome := &domain.SessionOutcome{
		SessionID: sessionID,
		StartAt:   time.Now().Add(24 * time.Hour),
		Outcome:   domain.OutcomeRegistered,
	}

	f.registrationSvc.EXPECT().RegisterForSession(mock.Anything, sessionID, userID, (*string)(nil)).Return(outcome, nil)

	body, _ := json.Marshal(dto.RegisterRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, "registered", resp.Sessions[0].Outcome)
}

func TestHandler_RegisterForSession_Full(t *testing.T) {
	f := setupRouter(t)

	sessionID := uuid.New().String()
	userID := uuid.New().String()

	f.registrationSvc.EXPECT().RegisterForSession(mock.Anything, sessionID, userID, (*string)(nil)).Return(nil, &domain.CapacityError{
		Reason:             domain.ReasonSessionFull,
		Entity:             "Welding Basics",
		TotalRegistrations: 12,
	})

	body, _ := json.Marshal(dto.RegisterRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.CapacityRejectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "session_full", resp.Reason)
	assert.Equal(t, 12, resp.TotalRegistrations)
}

func TestHandler_RegisterForSession_Closed(t *testing.T) {
	f := setupRouter(t)

	sessionID := uuid.New().String()
	userID := uuid.New().String()

	f.registrationSvc.EXPECT().RegisterForSession(mock.Anything, sessionID, userID, (*string)(nil)).Return(nil, domain.ErrSessionClosed)

	body, _ := json.Marshal(dto.RegisterRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterForSeries_Success(t *testing.T) {
	f := setupRouter(t)

	userID := uuid.New().String()
	outcomes := []domain.SessionOutcome{
		{SessionID: uuid.New().String(), Outcome: domain.OutcomeRegistered},
		{SessionID: uuid.New().String(), Outcome: domain.OutcomeAlreadyRegistered},
	}

	f.registrationSvc.EXPECT().RegisterForSeries(mock.Anything, int64(7), userID, (*string)(nil)).Return(outcomes, nil)

	body, _ := json.Marshal(dto.RegisterRequest{UserID: userID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/series/7/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sessions, 2)
	assert.Equal(t, "already-registered", resp.Sessions[1].Outcome)
}

func TestHandler_RegisterForSeries_InvalidKey(t *testing.T) {
	f := setupRouter(t)

	body := []byte(`{"user_id":"` + uuid.New().String() + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/series/zero/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Cancellation ---

func TestHandler_CancelRegistration_Success(t *testing.T) {
	f := setupRouter(t)

	sessionID := uuid.New().String()
	userID := uuid.New().String()

	f.cancellationSvc.EXPECT().CancelRegistration(mock.Anything, sessionID, userID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/sessions/"+sessionID+"/registrations/"+userID, nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelRegistration_NothingToCancel(t *testing.T) {
	f := setupRouter(t)

	sessionID := uuid.New().String()
	userID := uuid.New().String()

	f.cancellationSvc.EXPECT().CancelRegistration(mock.Anything, sessionID, userID).Return(domain.ErrNothingToCancel)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/sessions/"+sessionID+"/registrations/"+userID, nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelSession_Success(t *testing.T) {
	f := setupRouter(t)

	sessionID := uuid.New().String()
	f.cancellationSvc.EXPECT().CancelSession(mock.Anything, sessionID, true).Return(5, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sessionID+"/cancel", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"registrations_cancelled":5`)
}

func TestHandler_CancelSeries_Success(t *testing.T) {
	f := setupRouter(t)

	f.cancellationSvc.EXPECT().CancelSeries(mock.Anything, int64(7), true).Return(3, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/series/7/cancel", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"users_affected":3`)
}

func TestHandler_CancelPriceTier_Success(t *testing.T) {
	f := setupRouter(t)

	tierID := uuid.New().String()
	f.cancellationSvc.EXPECT().CancelPriceTier(mock.Anything, tierID).Return(2, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tiers/"+tierID+"/cancel", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Capacity ---

func TestHandler_GetSessionCapacity_WithTierFilter(t *testing.T) {
	f := setupRouter(t)

	sessionID := uuid.New().String()
	tierID := "t1"
	capacity := &domain.Capacity{
		HasCapacity:        false,
		Reason:             domain.ReasonTierFull,
		TotalRegistrations: 5,
		SessionCapacity:    20,
		TierRegistrations:  2,
		TierCapacity:       2,
	}

	f.capacitySvc.EXPECT().EvaluateSession(mock.Anything, sessionID, &tierID).Return(capacity, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+sessionID+"/capacity?tier_id=t1", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CapacityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.HasCapacity)
	assert.Equal(t, "tier_full", resp.Reason)
	assert.Equal(t, 2, resp.TierRegistrations)
}

func TestHandler_GetSeriesCapacity_Success(t *testing.T) {
	f := setupRouter(t)

	capacity := &domain.Capacity{HasCapacity: true, TotalRegistrations: 4, SessionCapacity: 8}
	f.capacitySvc.EXPECT().EvaluateSeries(mock.Anything, int64(7), (*string)(nil)).Return(capacity, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/series/7/capacity", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CapacityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.HasCapacity)
}

// --- Cancellation records ---

func TestHandler_ListCancellations_Filtered(t *testing.T) {
	f := setupRouter(t)

	resolved := false
	records := []*domain.CancellationRecord{
		{ID: uuid.New().String(), UserID: uuid.New().String(), RegisteredAt: time.Now(), CancelledAt: time.Now()},
	}
	f.cancellationSvc.EXPECT().ListCancellations(mock.Anything, &resolved).Return(records, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cancellations?resolved=false", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CancellationRecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListCancellations_BadFilter(t *testing.T) {
	f := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cancellations?resolved=maybe", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ResolveCancellation_Success(t *testing.T) {
	f := setupRouter(t)

	recordID := uuid.New().String()
	f.cancellationSvc.EXPECT().ResolveCancellation(mock.Anything, recordID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cancellations/"+recordID+"/resolve", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ResolveCancellation_NotFound(t *testing.T) {
	f := setupRouter(t)

	recordID := uuid.New().String()
	f.cancellationSvc.EXPECT().ResolveCancellation(mock.Anything, recordID).Return(domain.ErrCancellationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cancellations/"+recordID+"/resolve", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	f := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Username: "alice", CreatedAt: time.Now()}
	f.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_UsernameTaken(t *testing.T) {
	f := setupRouter(t)

	f.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "taken"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUser_Success(t *testing.T) {
	f := setupRouter(t)

	userID := uuid.New().String()
	f.userSvc.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{
		ID: userID, Username: "alice", CreatedAt: time.Now(),
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID, nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	f := setupRouter(t)

	userID := uuid.New().String()
	f.userSvc.EXPECT().GetByID(mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID, nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetUserRegistrations_Success(t *testing.T) {
	f := setupRouter(t)

	userID := uuid.New().String()
	regs := []*domain.Registration{
		{ID: uuid.New().String(), SessionID: uuid.New().String(), UserID: userID, Result: domain.ResultPassed, RegisteredAt: time.Now()},
	}
	f.registrationSvc.EXPECT().ListByUser(mock.Anything, userID).Return(regs, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID+"/registrations", nil)
	f.r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "passed", resp[0].Result)
}
