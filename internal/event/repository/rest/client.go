package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"event-calendar/internal/event/repository"
	"event-calendar/internal/model"
	"event-calendar/pkg/tz"
)

// DefaultTimeout bounds every backend call.
const DefaultTimeout = 10 * time.Second

const eventsPath = "/events"

// Client is the HTTP wrapper for the events REST API.
type Client struct {
	baseURL         string
	defaultTimezone string
	httpClient      *http.Client
}

// NewClient creates a new events API client. Requests without a timezone in
// their context carry defaultTimezone in X-Timezone.
func NewClient(baseURL string, timeout time.Duration, defaultTimezone string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:         strings.TrimRight(baseURL, "/"),
		defaultTimezone: defaultTimezone,
		httpClient:      &http.Client{Timeout: timeout},
	}
}

// CreateEvent creates an event via POST /events.
func (c *Client) CreateEvent(ctx context.Context, req model.EventRequest) (model.Event, error) {
	var out model.Event
	err := c.do(ctx, http.MethodPost, eventsPath, req, &out)
	return out, err
}

// ListEvents fetches every event via GET /events, in backend order.
func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := c.do(ctx, http.MethodGet, eventsPath, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Event{}
	}
	return out, nil
}

// GetEvent fetches a single event via GET /events/{id}.
func (c *Client) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	var out model.Event
	err := c.do(ctx, http.MethodGet, eventPath(id), nil, &out)
	return out, err
}

// UpdateEvent replaces an event via PUT /events/{id}.
func (c *Client) UpdateEvent(ctx context.Context, id int64, req model.EventRequest) (model.Event, error) {
	var out model.Event
	err := c.do(ctx, http.MethodPut, eventPath(id), req, &out)
	return out, err
}

// DeleteEvent removes an event via DELETE /events/{id}.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, eventPath(id), nil, nil)
}

// Ping checks that GET /events answers with a 2xx.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, eventsPath, nil, nil)
}

// do performs one request. Any failure comes back as *repository.TransportError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return repository.NormalizeFailure(fmt.Errorf("failed to marshal %s %s request: %w", method, path, err))
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return repository.NormalizeFailure(fmt.Errorf("failed to build %s %s request: %w", method, path, err))
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set(tz.Header, tz.FromContext(ctx, c.defaultTimezone))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return repository.NormalizeFailure(fmt.Errorf("failed to call %s %s: %w", method, path, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return repository.NormalizeResponse(resp.StatusCode, raw)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return repository.NormalizeFailure(fmt.Errorf("failed to decode %s %s response: %w", method, path, err))
	}
	return nil
}

func eventPath(id int64) string {
	return fmt.Sprintf("%s/%d", eventsPath, id)
}
