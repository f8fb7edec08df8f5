package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const reqID = "4f8a2c1b9d3e4a5f8b7c6d5e4f3a2b1c"

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func newServer(t *testing.T, rdb *redis.Client, handler echo.HandlerFunc) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Use(IdempotencyMiddleware(rdb, time.Minute))
	e.POST("/applications", handler)
	e.GET("/ping", handler)
	return e
}

func countingHandler(calls *int) echo.HandlerFunc {
	return func(c echo.Context) error {
		*calls++
		return c.JSON(http.StatusOK, map[string]string{"id": "abc"})
	}
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	var calls int
	e := newServer(t, newRedis(t), countingHandler(&calls))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{"a":1}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2 (no dedup without header)", calls)
	}
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	var calls int
	e := newServer(t, newRedis(t), countingHandler(&calls))

	var bodies []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{"a":1}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set("Ax-Request-Id", reqID)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d", i, rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (second request replayed)", calls)
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("replayed body differs: %q vs %q", bodies[0], bodies[1])
	}
}

func TestIdempotency_BodyMismatchConflicts(t *testing.T) {
	var calls int
	e := newServer(t, newRedis(t), countingHandler(&calls))

	first := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{"a":1}`))
	first.Header.Set("Ax-Request-Id", reqID)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first: status = %d", rec.Code)
	}

	second := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{"a":2}`))
	second.Header.Set("Ax-Request-Id", reqID)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, second)
	if rec.Code != http.StatusConflict {
		t.Fatalf("reused id with new body: status = %d, want 409", rec.Code)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestIdempotency_InvalidHeaderRejected(t *testing.T) {
	e := newServer(t, newRedis(t), countingHandler(new(int)))

	req := httptest.NewRequest(http.MethodPost, "/applications", nil)
	req.Header.Set("Ax-Request-Id", "not-a-valid-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestIdempotency_GetIgnored(t *testing.T) {
	var calls int
	e := newServer(t, newRedis(t), countingHandler(&calls))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Ax-Request-Id", reqID)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2 (GET never deduped)", calls)
	}
}

func TestIdempotency_HandlerErrorNotCached(t *testing.T) {
	var calls int
	rdb := newRedis(t)
	e := echo.New()
	e.Use(IdempotencyMiddleware(rdb, time.Minute))
	e.POST("/applications", func(c echo.Context) error {
		calls++
		if calls == 1 {
			return echo.NewHTTPError(http.StatusInternalServerError, "transient")
		}
		return c.JSON(http.StatusOK, map[string]string{"id": "abc"})
	})

	for i, want := range []int{http.StatusInternalServerError, http.StatusOK} {
		req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{"a":1}`))
		req.Header.Set("Ax-Request-Id", reqID)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("attempt %d: status = %d, want %d", i, rec.Code, want)
		}
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2 (failures are retryable)", calls)
	}
}

func TestValidReqID(t *testing.T) {
	cases := []struct {
		id string
		ok bool
	}{
		{reqID, true},
		{"0f8a2c1b-9d3e-4a5f-8b7c-6d5e4f3a2b1c", true},
		{"not-an-id", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := validReqID(tc.id); got != tc.ok {
			t.Errorf("validReqID(%q) = %v, want %v", tc.id, got, tc.ok)
		}
	}
}
