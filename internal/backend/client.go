package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"finance-assistant/internal/config"
	"finance-assistant/internal/dto"
)

const maxResponseBytes = 4 << 20

// Request outcomes reported to the RequestRecorder
const (
	OutcomeOK        = "ok"
	OutcomeNetwork   = "network"
	OutcomeBadStatus = "bad_status"
	OutcomeMalformed = "malformed"
)

// Client talks JSON to the finance backend
type Client struct {
	baseURL    string
	userID     int
	httpClient *http.Client
	breaker    *CircuitBreaker
	recorder   RequestRecorder
}

// NewClient creates a backend client; recorder may be nil
func NewClient(cfg config.BackendConfig, recorder RequestRecorder) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout}, recorder)
}

func NewClientWithHTTP(cfg config.BackendConfig, httpClient *http.Client, recorder RequestRecorder) *Client {
	breakerConfig := DefaultCircuitBreakerConfig()
	if cfg.BreakerMaxFailures > 0 {
		breakerConfig.MaxFailures = cfg.BreakerMaxFailures
	}
	if cfg.BreakerResetTimeout > 0 {
		breakerConfig.ResetTimeout = cfg.BreakerResetTimeout
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		userID:     cfg.UserID,
		httpClient: httpClient,
		breaker:    NewCircuitBreaker(breakerConfig),
		recorder:   recorder,
	}
}

// CircuitState reports the state of the client's circuit breaker
func (c *Client) CircuitState() BreakerState {
	return c.breaker.State()
}

// UserID is the backend user every request is scoped to
func (c *Client) UserID() int {
	return c.userID
}

func (c *Client) userQuery(period int) url.Values {
	query := url.Values{}
	if period > 0 {
		query.Set("period", strconv.Itoa(period))
	}
	query.Set("user_id", strconv.Itoa(c.userID))
	return query
}

// do performs one request. A nil out skips decoding but still requires a JSON
// body when the response has one.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	if !c.breaker.Allow() {
		c.record(op, OutcomeNetwork, 0)
		return fmt.Errorf("%s: %w: %w", op, ErrNetwork, ErrCircuitOpen)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// a caller cancelling is not the backend's fault
		if ctx.Err() == nil {
			c.breaker.RecordFailure()
		}
		c.record(op, OutcomeNetwork, time.Since(start))
		slog.Warn("backend request failed", "operation", op, "method", method, "path", path, "error", err)
		return fmt.Errorf("%s: %w: %v", op, ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.breaker.RecordFailure()
		c.record(op, OutcomeNetwork, time.Since(start))
		return fmt.Errorf("%s: %w: reading body: %v", op, ErrNetwork, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.record(op, OutcomeBadStatus, time.Since(start))
		var msg dto.BackendMessage
		_ = json.Unmarshal(raw, &msg)
		slog.Warn("backend returned non-success status",
			"operation", op, "status", resp.StatusCode, "message", msg.Text())
		return &StatusError{Operation: op, StatusCode: resp.StatusCode, Message: msg.Text()}
	}

	if out == nil {
		if len(bytes.TrimSpace(raw)) > 0 && !json.Valid(raw) {
			c.record(op, OutcomeMalformed, time.Since(start))
			return fmt.Errorf("%s: %w: response is not JSON", op, ErrMalformedBody)
		}
		c.record(op, OutcomeOK, time.Since(start))
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		c.record(op, OutcomeMalformed, time.Since(start))
		return fmt.Errorf("%s: %w: %v", op, ErrMalformedBody, err)
	}

	c.record(op, OutcomeOK, time.Since(start))
	return nil
}

func (c *Client) record(op, outcome string, d time.Duration) {
	if c.recorder != nil {
		c.recorder.RecordBackendRequest(op, outcome, d)
	}
}

// malformed wraps a shape problem found after a successful decode
func malformed(op, detail string) error {
	return fmt.Errorf("%s: %w: %s", op, ErrMalformedBody, detail)
}

// entityFrom picks the first present key of a mutation response and decodes it into out.
// A response without any of the keys is accepted and leaves out untouched.
func entityFrom(op string, envelope map[string]json.RawMessage, out interface{}, keys ...string) (bool, error) {
	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok || string(raw) == "null" {
			continue
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return false, malformed(op, fmt.Sprintf("field %q: %v", key, err))
		}
		return true, nil
	}
	return false, nil
}

var _ ClientInterface = (*Client)(nil)

// IsTransient reports whether err is worth retrying
func IsTransient(err error) bool {
	if errors.Is(err, ErrNetwork) {
		return true
	}
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode >= http.StatusInternalServerError
}
