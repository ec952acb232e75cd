package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/metrics"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, h := range []string{"X-Content-Type-Options", "X-Frame-Options", "Content-Security-Policy", "Strict-Transport-Security"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected %s header", h)
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	h := New(nil, "https://example.com")
	rec := httptest.NewRecorder()
	h.CORS(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/settings", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("unexpected origin %q", got)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "PATCH") {
		t.Error("expected PATCH to be allowed")
	}
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(3, nil)
	h := rl.Middleware(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	// Another client still has its own budget.
	req = httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = "192.0.2.2:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected other client to pass, got %d", rec.Code)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(5, nil)
	now := time.Now()
	rl.get("a", now.Add(-time.Hour))
	rl.get("b", now)

	if removed := rl.Cleanup(now); removed != 1 {
		t.Errorf("expected 1 idle client removed, got %d", removed)
	}
	if _, ok := rl.clients["b"]; !ok {
		t.Error("expected active client to be kept")
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	tests := map[time.Duration]string{
		0:                       "1",
		300 * time.Millisecond:  "1",
		time.Second:             "1",
		1500 * time.Millisecond: "2",
	}
	for d, want := range tests {
		if got := retryAfterSeconds(d); got != want {
			t.Errorf("retryAfterSeconds(%v) = %s, want %s", d, got, want)
		}
	}
}

func TestRequestLogger_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	h := RequestLogger(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected 418 passed through, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "418")); got != 1 {
		t.Errorf("expected 1 request counted, got %v", got)
	}
}

func TestRequestLogger_NilMetrics(t *testing.T) {
	rec := httptest.NewRecorder()
	RequestLogger(nil)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestClientKeys(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", "6.6.6.6, 198.51.100.7, 10.0.0.9")

	if got := RemoteAddrKey(req); got != "10.0.0.1" {
		t.Errorf("RemoteAddrKey: got %q", got)
	}
	if got := ForwardedForKey(0)(req); got != "10.0.0.1" {
		t.Errorf("ForwardedForKey(0) should ignore the header, got %q", got)
	}
	if got := ForwardedForKey(1)(req); got != "10.0.0.9" {
		t.Errorf("ForwardedForKey(1): got %q", got)
	}
	if got := ForwardedForKey(2)(req); got != "198.51.100.7" {
		t.Errorf("ForwardedForKey(2): got %q", got)
	}
	if got := ForwardedForKey(5)(req); got != "10.0.0.1" {
		t.Errorf("ForwardedForKey(5) with a short header should fall back, got %q", got)
	}

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	bare.RemoteAddr = "unix-socket"
	if got := RemoteAddrKey(bare); got != "unix-socket" {
		t.Errorf("expected raw RemoteAddr fallback, got %q", got)
	}
}

type mockDB struct {
	pingErr error
}

func (m *mockDB) Ping(context.Context) error { return m.pingErr }

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	New(&mockDB{}, "").Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	New(&mockDB{pingErr: errors.New("dial tcp: refused")}, "").Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "refused") {
		t.Error("health response must not leak the driver error")
	}
}
