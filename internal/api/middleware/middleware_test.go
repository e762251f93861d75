package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/glowbook-gateway/internal/api/handlers"
	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
	"github.com/m04kA/glowbook-gateway/pkg/logger"
)

type stubProfiles struct {
	user  *domain.User
	err   error
	calls int
}

func (s *stubProfiles) GetProfile(_ context.Context, _ string) (*domain.User, error) {
	s.calls++
	return s.user, s.err
}

type observed struct {
	method, route string
	status        int
}

type stubMetrics struct {
	observed []observed
}

func (m *stubMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	m.observed = append(m.observed, observed{method, route, status})
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestAuth(t *testing.T) {
	var gotToken string
	h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken, _ = TokenFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantToken  string
	}{
		{"valid", "Bearer abc.def", http.StatusNoContent, "abc.def"},
		{"lowercase scheme", "bearer xyz", http.StatusNoContent, "xyz"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic Zm9vOmJhcg==", http.StatusUnauthorized, ""},
		{"empty token", "Bearer    ", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotToken = ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantToken, gotToken)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, handlers.MsgSessionExpired, decodeError(t, rec))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	client := &domain.User{ID: 1, Role: domain.RoleClient}

	tests := []struct {
		name       string
		profiles   *stubProfiles
		roles      []domain.Role
		wantStatus int
	}{
		{"allowed", &stubProfiles{user: client}, []domain.Role{domain.RoleClient}, http.StatusNoContent},
		{"any role", &stubProfiles{user: client}, nil, http.StatusNoContent},
		{"wrong role", &stubProfiles{user: client}, []domain.Role{domain.RoleAesthetician}, http.StatusForbidden},
		{"expired session", &stubProfiles{err: salonapi.ErrUnauthorized}, nil, http.StatusUnauthorized},
		{"backend down", &stubProfiles{err: errors.New("dial tcp: refused")}, nil, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser *domain.User
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = UserFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})
			h := Auth(RequireRole(tt.profiles, logger.NewNop(), tt.roles...)(inner))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer tok")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, client, gotUser)
			} else {
				assert.Nil(t, gotUser)
			}
		})
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := &stubMetrics{}
	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/api/v1/bookings/{bookingId}/cancel", okHandler).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/42/cancel", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, m.observed, 1)
	assert.Equal(t, observed{http.MethodPost, "/api/v1/bookings/{bookingId}/cancel", http.StatusNoContent}, m.observed[0])
}

func TestRequestID(t *testing.T) {
	var fromCtx string
	h := RequestID(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, fromCtx)

	incoming := "7f1d7b5e-4a9c-4a51-9f65-3f1f0b2c9d11"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, incoming)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, incoming, rec.Header().Get(HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "not-a-uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(HeaderRequestID))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	frozen := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	h := rl.Middleware(http.HandlerFunc(okHandler))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.2"))

	// через секунду токен восстанавливается
	frozen = frozen.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, send("10.0.0.1"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	frozen := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	assert.True(t, rl.allow("10.0.0.1"))
	frozen = frozen.Add(2 * idleLimiterTTL)
	assert.True(t, rl.allow("10.0.0.2"))

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestRateLimiter_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	frozen := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	h := rl.Middleware(http.HandlerFunc(okHandler))

	allowed := 0
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.1:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusTooManyRequests {
			allowed++
		}
	}

	assert.Equal(t, 1, allowed)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "198.51.100.1")
}

func TestClientIP(t *testing.T) {
	proxies := []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}

	tests := []struct {
		name      string
		trusted   []netip.Prefix
		remote    string
		forwarded []string
		want      string
	}{
		{
			name:   "no header",
			remote: "192.168.1.5:4444",
			want:   "192.168.1.5",
		},
		{
			name:      "header ignored without trusted proxies",
			remote:    "192.168.1.5:4444",
			forwarded: []string{"203.0.113.7"},
			want:      "192.168.1.5",
		},
		{
			name:      "header ignored from untrusted peer",
			trusted:   proxies,
			remote:    "192.168.1.5:4444",
			forwarded: []string{"203.0.113.7"},
			want:      "192.168.1.5",
		},
		{
			name:      "right-most untrusted hop",
			trusted:   proxies,
			remote:    "10.0.0.2:4444",
			forwarded: []string{"198.51.100.9, 203.0.113.7, 10.0.0.1"},
			want:      "203.0.113.7",
		},
		{
			name:      "hops across repeated headers",
			trusted:   proxies,
			remote:    "10.0.0.2:4444",
			forwarded: []string{"198.51.100.9", "203.0.113.7"},
			want:      "203.0.113.7",
		},
		{
			name:      "garbage stops at last trusted hop",
			trusted:   proxies,
			remote:    "10.0.0.2:4444",
			forwarded: []string{"unknown"},
			want:      "10.0.0.2",
		},
		{
			name:      "all hops trusted",
			trusted:   proxies,
			remote:    "10.0.0.2:4444",
			forwarded: []string{"10.0.0.7, 10.0.0.1"},
			want:      "10.0.0.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewRateLimiter(60, 1, WithTrustedProxies(tt.trusted))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for _, v := range tt.forwarded {
				req.Header.Add("X-Forwarded-For", v)
			}
			assert.Equal(t, tt.want, rl.clientIP(req))
		})
	}
}
