package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/stpnv0/SessionBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type OfferingSvc interface {
	Create(ctx context.Context, input domain.CreateOfferingInput) (*domain.Offering, error)
	GetDetails(ctx context.Context, id string) (*domain.OfferingDetails, error)
	List(ctx context.Context) ([]*domain.Offering, error)
	Update(ctx context.Context, id string, input domain.UpdateOfferingInput) (*domain.Offering, error)
	Delete(ctx context.Context, id string) error
	SetMultiDay(ctx context.Context, id string, multiDay bool) (*domain.Offering, error)
	AddSessions(ctx context.Context, id string, windows []domain.SessionWindow) error
	OfferAgain(ctx context.Context, id string, windows []domain.SessionWindow) (int64, error)
	Duplicate(ctx context.Context, id string) (*domain.Offering, error)
}

type RegistrationSvc interface {
	RegisterForSession(ctx context.Context, sessionID, userID string, tierID *string) (*domain.SessionOutcome, error)
	RegisterForSeries(ctx context.Context, seriesKey int64, userID string, tierID *string) ([]domain.SessionOutcome, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Registration, error)
}

type CancellationSvc interface {
	CancelSession(ctx context.Context, sessionID string, byAdmin bool) (int, error)
	CancelSeries(ctx context.Context, seriesKey int64, byAdmin bool) (int, error)
	CancelRegistration(ctx context.Context, sessionID, userID string) error
	CancelSeriesRegistration(ctx context.Context, seriesKey int64, userID string) error
	CancelPriceTier(ctx context.Context, tierID string) (int, error)
	ListCancellations(ctx context.Context, resolved *bool) ([]*domain.CancellationRecord, error)
	ResolveCancellation(ctx context.Context, id string) error
}

type CapacitySvc interface {
	EvaluateSession(ctx context.Context, sessionID string, tierID *string) (*domain.Capacity, error)
	EvaluateSeries(ctx context.Context, seriesKey int64, tierID *string) (*domain.Capacity, error)
	TierUsage(ctx context.Context, offeringID string) ([]*domain.TierUsage, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	offeringService     OfferingSvc
	registrationService RegistrationSvc
	cancellationService CancellationSvc
	capacityService     CapacitySvc
	userService         UserSvc
}

func NewHandler(
	offeringService OfferingSvc,
	registrationService RegistrationSvc,
	cancellationService CancellationSvc,
	capacityService CapacitySvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		offeringService:     offeringService,
		registrationService: registrationService,
		cancellationService: cancellationService,
		capacityService:     capacityService,
		userService:         userService,
	}
}

// Offerings

func (h *Handler) CreateOffering(c *ginext.Context) {
	var req dto.CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	windows, err := parseWindows(req.Sessions)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateOfferingInput{
		Title:         req.Title,
		Description:   req.Description,
		Kind:          domain.OfferingKind(req.Kind),
		Capacity:      req.Capacity,
		TieredPricing: req.TieredPricing,
		MultiDay:      req.MultiDay,
		Sessions:      windows,
	}
	for _, t := range req.Tiers {
		input.Tiers = append(input.Tiers, domain.TierInput{
			Name:       t.Name,
			PriceCents: t.PriceCents,
			Capacity:   t.Capacity,
		})
	}

	offering, err := h.offeringService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOfferingResponse(offering))
}

func (h *Handler) GetOffering(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid offering id")
	if !ok {
		return
	}

	details, err := h.offeringService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferingDetailsResponse(details))
}

func (h *Handler) ListOfferings(c *ginext.Context) {
	offerings, err := h.offeringService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		resp = append(resp, dto.ToOfferingResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateOffering(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid offering id")
	if !ok {
		return
	}

	var req dto.UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	offering, err := h.offeringService.Update(c.Request.Context(), id, domain.UpdateOfferingInput{
		Title:       req.Title,
		Description: req.Description,
		Capacity:    req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferingResponse(offering))
}

func (h *Handler) DeleteOffering(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid offering id")
	if !ok {
		return
	}

	if err := h.offeringService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) SetMultiDay(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid offering id")
	if !ok {
		return
	}

	var req dto.MultiDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	offering, err := h.offeringService.SetMultiDay(c.Request.Context(), id, *req.MultiDay)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferingResponse(offering))
}

func (h *Handler) AddSessions(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid offering id")
	if !ok {
		return
	}

	var req dto.AddSessionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	windows, err := parseWindows(req.Sessions)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.offeringService.AddSessions(c.Request.Context(), id, windows); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "created"})
}

func (h *Handler) OfferAgain(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid offering id")
	if !ok {
		return
	}

	var req dto.AddSessionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	windows, err := parseWindows(req.Sessions)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	batchKey, err := h.offeringService.OfferAgain(c.Request.Context(), id, windows)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "created", "offer_batch_key": batchKey})
}

func (h *Handler) DuplicateOffering(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid offering id")
	if !ok {
		return
	}

	offering, err := h.offeringService.Duplicate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOfferingResponse(offering))
}

func (h *Handler) GetTierUsage(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid offering id")
	if !ok {
		return
	}

	usage, err := h.capacityService.TierUsage(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TierUsageResponse, 0, len(usage))
	for _, u := range usage {
		resp = append(resp, dto.TierUsageResponse(*u))
	}

	c.JSON(http.StatusOK, resp)
}

// Sessions

func (h *Handler) RegisterForSession(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid session id")
	if !ok {
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome, err := h.registrationService.RegisterForSession(c.Request.Context(), id, req.UserID, req.TierID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Status:   "ok",
		Sessions: []dto.SessionOutcomeResponse{dto.ToSessionOutcomeResponse(outcome)},
	})
}

func (h *Handler) CancelRegistration(c *ginext.Context) {
	sessionID, ok := pathUUID(c, "id", "invalid session id")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userId", "invalid user id")
	if !ok {
		return
	}

	if err := h.cancellationService.CancelRegistration(c.Request.Context(), sessionID, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) CancelSession(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid session id")
	if !ok {
		return
	}

	affected, err := h.cancellationService.CancelSession(c.Request.Context(), id, true)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled", "registrations_cancelled": affected})
}

func (h *Handler) GetSessionCapacity(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid session id")
	if !ok {
		return
	}

	capacity, err := h.capacityService.EvaluateSession(c.Request.Context(), id, queryTierID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCapacityResponse(capacity))
}

// Series

func (h *Handler) RegisterForSeries(c *ginext.Context) {
	key, ok := pathSeriesKey(c)
	if !ok {
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcomes, err := h.registrationService.RegisterForSeries(c.Request.Context(), key, req.UserID, req.TierID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.RegisterResponse{Status: "ok"}
	for i := range outcomes {
		resp.Sessions = append(resp.Sessions, dto.ToSessionOutcomeResponse(&outcomes[i]))
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) CancelSeriesRegistration(c *ginext.Context) {
	key, ok := pathSeriesKey(c)
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userId", "invalid user id")
	if !ok {
		return
	}

	if err := h.cancellationService.CancelSeriesRegistration(c.Request.Context(), key, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) CancelSeries(c *ginext.Context) {
	key, ok := pathSeriesKey(c)
	if !ok {
		return
	}

	affected, err := h.cancellationService.CancelSeries(c.Request.Context(), key, true)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled", "users_affected": affected})
}

func (h *Handler) GetSeriesCapacity(c *ginext.Context) {
	key, ok := pathSeriesKey(c)
	if !ok {
		return
	}

	capacity, err := h.capacityService.EvaluateSeries(c.Request.Context(), key, queryTierID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCapacityResponse(capacity))
}

// Price tiers

func (h *Handler) CancelPriceTier(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid tier id")
	if !ok {
		return
	}

	affected, err := h.cancellationService.CancelPriceTier(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled", "registrations_cancelled": affected})
}

// Cancellation records

func (h *Handler) ListCancellations(c *ginext.Context) {
	var resolved *bool
	if v, ok := c.GetQuery("resolved"); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resolved filter"})
			return
		}
		resolved = &parsed
	}

	records, err := h.cancellationService.ListCancellations(c.Request.Context(), resolved)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CancellationRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, dto.ToCancellationRecordResponse(rec))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ResolveCancellation(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid record id")
	if !ok {
		return
	}

	if err := h.cancellationService.ResolveCancellation(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "resolved"})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Username:       req.Username,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid user id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserRegistrations(c *ginext.Context) {
	id, ok := pathUUID(c, "id", "invalid user id")
	if !ok {
		return
	}

	regs, err := h.registrationService.ListByUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(regs))
	for _, g := range regs {
		resp = append(resp, dto.ToRegistrationResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var capErr *domain.CapacityError
	if errors.As(err, &capErr) {
		c.JSON(http.StatusConflict, dto.CapacityRejectionResponse{
			Error:              capErr.Error(),
			Reason:             string(capErr.Reason),
			TotalRegistrations: capErr.TotalRegistrations,
			TierRegistrations:  capErr.TierRegistrations,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrOfferingNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSeriesNotFound),
		errors.Is(err, domain.ErrTierNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrCancellationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSessionFull),
		errors.Is(err, domain.ErrTierFull),
		errors.Is(err, domain.ErrSessionClosed),
		errors.Is(err, domain.ErrNothingToCancel),
		errors.Is(err, domain.ErrOfferingInUse):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func pathUUID(c *ginext.Context, param, msg string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func pathSeriesKey(c *ginext.Context) (int64, bool) {
	key, err := strconv.ParseInt(c.Param("key"), 10, 64)
	if err != nil || key <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid series key"})
		return 0, false
	}
	return key, true
}

func queryTierID(c *ginext.Context) *string {
	if v, ok := c.GetQuery("tier_id"); ok && v != "" {
		return &v
	}
	return nil
}

func parseWindows(reqs []dto.SessionWindowRequest) ([]domain.SessionWindow, error) {
	windows := make([]domain.SessionWindow, 0, len(reqs))
	for _, r := range reqs {
		w, err := parseWindow(r)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func parseWindow(r dto.SessionWindowRequest) (domain.SessionWindow, error) {
	var w domain.SessionWindow
	var err error

	if w.StartAt, err = time.Parse(time.RFC3339, r.StartAt); err != nil {
		return w, errors.New("invalid start_at format, expected RFC3339")
	}
	if w.EndAt, err = time.Parse(time.RFC3339, r.EndAt); err != nil {
		return w, errors.New("invalid end_at format, expected RFC3339")
	}
	if r.DisplayStartAt != "" {
		if w.DisplayStartAt, err = time.Parse(time.RFC3339, r.DisplayStartAt); err != nil {
			return w, errors.New("invalid display_start_at format, expected RFC3339")
		}
	}
	if r.DisplayEndAt != "" {
		if w.DisplayEndAt, err = time.Parse(time.RFC3339, r.DisplayEndAt); err != nil {
			return w, errors.New("invalid display_end_at format, expected RFC3339")
		}
	}

	return w, nil
}
