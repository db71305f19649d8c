package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stpnv0/SessionBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// Publisher syncs sessions to an external calendar service over its webhook
// API. With no base URL configured it is disabled and every call is a
// logged no-op, mirroring how the notifier degrades without a token.
type Publisher struct {
	baseURL  string
	client   *http.Client
	strategy retry.Strategy
	logger   logger.Logger
}

func NewPublisher(baseURL string, timeout time.Duration, logger logger.Logger) *Publisher {
	if baseURL == "" {
		logger.Warn("calendar base url is empty, calendar sync disabled")
	}
	return &Publisher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		logger: logger,
	}
}

type eventPayload struct {
	Title   string    `json:"title"`
	Details string    `json:"details"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

type eventResponse struct {
	ID string `json:"id"`
}

func (p *Publisher) CreateEvent(ctx context.Context, offering *domain.Offering, session *domain.Session) (string, error) {
	if p.baseURL == "" {
		return "", nil
	}

	body, err := p.do(ctx, http.MethodPost, p.baseURL+"/events", payload(offering, session))
	if err != nil {
		return "", err
	}

	var resp eventResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode calendar response: %w", err)
	}
	return resp.ID, nil
}

func (p *Publisher) UpdateEvent(ctx context.Context, offering *domain.Offering, session *domain.Session) error {
	if p.baseURL == "" || session.CalendarEventID == nil {
		return nil
	}

	_, err := p.do(ctx, http.MethodPut, p.baseURL+"/events/"+*session.CalendarEventID, payload(offering, session))
	return err
}

func (p *Publisher) DeleteEvent(ctx context.Context, eventID string) error {
	if p.baseURL == "" {
		return nil
	}

	_, err := p.do(ctx, http.MethodDelete, p.baseURL+"/events/"+eventID, nil)
	return err
}

func payload(offering *domain.Offering, session *domain.Session) *eventPayload {
	return &eventPayload{
		Title:   offering.Title,
		Details: offering.Description,
		StartAt: session.StartAt,
		EndAt:   session.EndAt,
	}
}

func (p *Publisher) do(ctx context.Context, method, url string, payload *eventPayload) ([]byte, error) {
	var reqBody []byte
	if payload != nil {
		var err error
		reqBody, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode calendar payload: %w", err)
		}
	}

	var respBody []byte
	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf("build calendar request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("calendar request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return fmt.Errorf("calendar responded %d", resp.StatusCode)
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read calendar response: %w", err)
		}
		return nil
	}, p.strategy)
	if err != nil {
		return nil, err
	}

	return respBody, nil
}
