package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	var hits int
	rl := NewRateLimiter(0.0001, 2).OnLimit(func() { hits++ })

	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/fabrics", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status codes: %v", codes)
	}
	if hits != 1 {
		t.Fatalf("expected one limit callback, got %d", hits)
	}
}

func TestRateLimiter_CleanupLimiters(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.getLimiter("10.0.0.1")
	rl.getLimiter("10.0.0.2")

	if rl.size() != 2 {
		t.Fatalf("expected 2 limiters, got %d", rl.size())
	}

	rl.CleanupLimiters()

	if rl.size() != 0 {
		t.Fatalf("expected limiters to be cleared, got %d", rl.size())
	}
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		value    string
		remote   string
		expected string
	}{
		{"forwarded chain", "X-Forwarded-For", "203.0.113.7, 10.0.0.1", "10.0.0.2:1234", "203.0.113.7"},
		{"real ip", "X-Real-IP", "198.51.100.4", "10.0.0.2:1234", "198.51.100.4"},
		{"remote addr", "", "", "192.0.2.1:8080", "192.0.2.1"},
		{"remote addr without port", "", "", "192.0.2.1", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}

			if got := getIP(req); got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
