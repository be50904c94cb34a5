package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveLimited(e *echo.Echo, handler echo.HandlerFunc, remoteAddr, xff string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	if xff != "" {
		req.Header.Set("X-Forwarded-For", xff)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1, 5)

	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// The burst is allowed straight away
	for i := 0; i < 5; i++ {
		rec := serveLimited(e, handler, "192.168.1.100:12345", "")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be within the burst", i)
	}

	rec := serveLimited(e, handler, "192.168.1.100:12345", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_004")
	assert.Contains(t, rec.Body.String(), `"retryable":true`)
}

func TestRateLimiterDifferentIPs(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1, 1)

	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serveLimited(e, handler, "10.0.0.1:1000", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(e, handler, "10.0.0.1:1000", "").Code)
	assert.Equal(t, http.StatusOK, serveLimited(e, handler, "10.0.0.2:1000", "").Code)
}

func TestRateLimiterForwardedForUsesFirstHop(t *testing.T) {
	e := echo.New()
	limiter := NewRateLimiter(1, 1)

	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, serveLimited(e, handler, "10.0.0.9:1000", "203.0.113.7, 10.0.0.9").Code)
	// Same client behind a different proxy chain
	assert.Equal(t, http.StatusTooManyRequests, serveLimited(e, handler, "10.0.0.8:1000", "203.0.113.7, 10.0.0.8").Code)
}

func TestRateLimiterCleanup(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	limiter.getVisitor("10.0.0.1")
	now = now.Add(2 * time.Minute)
	limiter.getVisitor("10.0.0.2")
	now = now.Add(2 * time.Minute)

	assert.Equal(t, 1, limiter.Cleanup())
	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "10.0.0.2")
}

func TestRateLimiterRunStopsWithContext(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		limiter.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
