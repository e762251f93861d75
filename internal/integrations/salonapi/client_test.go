package salonapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/pkg/logger"
)

type recordedMetric struct {
	operation string
	outcome   string
}

type fakeMetrics struct {
	mu      sync.Mutex
	records []recordedMetric
}

func (m *fakeMetrics) ObserveBackend(operation, outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, recordedMetric{operation, outcome})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeMetrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := &fakeMetrics{}
	return NewClient(srv.URL+"/api/", 2*time.Second, logger.NewNop(), WithMetrics(m)), m
}

func TestClient_ListBookings_SendsFilterAndToken(t *testing.T) {
	var gotQuery, gotAuth, gotPath string
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"items":[
			{"id":7,"appointment_date":"2025-06-05T00:00:00.000000Z","appointment_time":"09:00:00","status":"approved",
			 "client":{"id":1,"first_name":"Cara","last_name":"Lim"},
			 "service":{"id":3,"name":"Facial","price":"1500.00"},
			 "aesthetician":{"id":4,"first_name":"Ana","last_name":"Reyes"},
			 "unexpected_field":{"nested":true}}
		]}`)
	})

	aestheticianID := int64(4)
	date := "2025-06-05"
	bookings, err := client.ListBookings(context.Background(), "tok-123", domain.BookingsFilter{
		AestheticianID: &aestheticianID,
		DateFrom:       &date,
		DateTo:         &date,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/bookings", gotPath)
	assert.Equal(t, "aesthetician_id=4&date_from=2025-06-05&date_to=2025-06-05", gotQuery)
	assert.Equal(t, "Bearer tok-123", gotAuth)

	require.Len(t, bookings, 1)
	b := bookings[0]
	assert.Equal(t, int64(7), b.ID)
	assert.Equal(t, domain.StatusApproved, b.Status)
	assert.True(t, b.IsOn("2025-06-05"))
	assert.Equal(t, "Cara Lim", b.Client.FullName())
	assert.Equal(t, "Facial", b.Service.Name)
	assert.Equal(t, "Ana Reyes", b.Aesthetician.FullName())

	require.Len(t, m.records, 1)
	assert.Equal(t, recordedMetric{"list_bookings", "ok"}, m.records[0])
}

func TestClient_ListBookings_NoFilter(t *testing.T) {
	var gotURL string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_, _ = io.WriteString(w, `{}`)
	})

	bookings, err := client.ListBookings(context.Background(), "tok", domain.BookingsFilter{})
	require.NoError(t, err)
	assert.Equal(t, "/api/bookings", gotURL)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestClient_CreateBooking_Payload(t *testing.T) {
	var got map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"booking":{"id":55,"appointment_date":"2025-06-05","appointment_time":"10:00","status":"pending"}}`)
	})

	created, err := client.CreateBooking(context.Background(), "tok", CreateBookingPayload{
		ServiceID:      3,
		AestheticianID: 4,
		Date:           "2025-06-05",
		Time:           "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(55), created.ID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, float64(3), got["service_id"])
	assert.Equal(t, float64(4), got["aesthetician_id"])
	assert.Equal(t, "2025-06-05", got["appointment_date"])
	assert.Equal(t, "10:00", got["appointment_time"])
	assert.Contains(t, got, "client_note")
	assert.Nil(t, got["client_note"])
}

func TestClient_CreateBooking_BareResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":56,"appointment_date":"2025-06-05","appointment_time":"11:00","status":"pending"}`)
	})

	created, err := client.CreateBooking(context.Background(), "tok", CreateBookingPayload{})
	require.NoError(t, err)
	assert.Equal(t, int64(56), created.ID)
}

func TestClient_ValidationError(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"errors":{"appointment_time":["The time is taken.","Pick another."],"aesthetician_id":["Required."]}}`)
	})

	_, err := client.CreateBooking(context.Background(), "tok", CreateBookingPayload{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRejected))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Required.\nThe time is taken., Pick another.", apiErr.UserMessage("Failed to create booking"))
	assert.Equal(t, recordedMetric{"create_booking", "client_error"}, m.records[0])
}

func TestAPIError_MessagePriority(t *testing.T) {
	both := &APIError{Message: "msg", ErrorText: "err", kind: ErrRejected}
	assert.Equal(t, "err", both.UserMessage("fallback"))
	assert.Equal(t, "msg", both.StatusMessage("fallback"))

	empty := &APIError{kind: ErrRejected}
	assert.Equal(t, "fallback", empty.UserMessage("fallback"))
	assert.Equal(t, "fallback", empty.StatusMessage("fallback"))

	assert.Equal(t, "fallback", UserMessage(errors.New("plain"), "fallback"))
	assert.Equal(t, "msg", StatusMessage(both, "fallback"))
}

func TestClient_Unauthorized(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"invalid token", http.StatusUnauthorized, `{"message":"Invalid or unauthorized token."}`, ErrUnauthorized},
		{"unauthenticated", http.StatusUnauthorized, `{"message":"Unauthenticated."}`, ErrUnauthorized},
		{"session expired 419", 419, `{"message":"Session expired"}`, ErrUnauthorized},
		{"wrong credentials are not a logout", http.StatusUnauthorized, `{"message":"Wrong password"}`, ErrRejected},
		{"forbidden", http.StatusForbidden, `{"message":"Nope"}`, ErrForbidden},
		{"not found", http.StatusNotFound, `{"message":"No booking"}`, ErrNotFound},
		{"server error", http.StatusBadGateway, `<html>bad gateway</html>`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := client.CancelBooking(context.Background(), "tok", 9)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	m := &fakeMetrics{}
	client := NewClient(srv.URL, time.Second, logger.NewNop(), WithMetrics(m))

	_, err := client.GetProfile(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
	assert.Equal(t, recordedMetric{"get_profile", "transport_error"}, m.records[0])
}

func TestClient_DecodeError(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"items": "not-a-list"}`)
	})

	_, err := client.ListServices(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidResponse))
	assert.Equal(t, recordedMetric{"list_services", "decode_error"}, m.records[0])
}

func TestClient_GetProfile(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/profile", r.URL.Path)
		_, _ = io.WriteString(w, `{"user":{"id":1,"username":"cara","first_name":"Cara","last_name":"Lim","role":"client"}}`)
	})

	user, err := client.GetProfile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.Equal(t, "Cara Lim", user.DisplayName())
}

func TestClient_GetProfile_MissingUser(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	_, err := client.GetProfile(context.Background(), "tok")
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestClient_ListServices_FlexibleFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"items":[
			{"id":1,"name":"Facial","price":"1500.50","duration_minutes":60,"is_active":1},
			{"id":2,"name":"Peel","price":900,"duration_minutes":45,"is_active":false},
			{"id":3,"name":"Wax","price":null,"is_active":"1"}
		]}`)
	})

	services, err := client.ListServices(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, 1500.5, services[0].Price)
	assert.True(t, services[0].IsActive)
	assert.Equal(t, float64(900), services[1].Price)
	assert.False(t, services[1].IsActive)
	assert.Equal(t, float64(0), services[2].Price)
	assert.True(t, services[2].IsActive)
}

func TestClient_UpdateBookingStatus(t *testing.T) {
	var body map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/bookings/12/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.UpdateBookingStatus(context.Background(), "tok", 12, domain.StatusApproved))
	assert.Equal(t, "approved", body["status"])
}

func TestClient_ListAestheticians(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"items":[{"id":4,"first_name":"Ana","last_name":"Reyes","email":"ana@example.com"}]}`)
	})

	list, err := client.ListAestheticians(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ana Reyes", list[0].FullName())
}
