package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/glowbook-gateway/internal/api/handlers"
	"github.com/m04kA/glowbook-gateway/internal/api/middleware"
	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
	createBooking "github.com/m04kA/glowbook-gateway/internal/usecase/create_booking"
	"github.com/m04kA/glowbook-gateway/pkg/logger"
	"github.com/m04kA/glowbook-gateway/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

const validBody = `{"serviceId":2,"aestheticianId":4,"date":"2025-06-05","time":"13:00","clientNote":"sensitive skin"}`

func newRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	return req.WithContext(middleware.WithToken(req.Context(), "tok"))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestHandle_Created(t *testing.T) {
	uc := new(mockUseCase)
	start, _ := types.NewTimeStringFromString("13:00")
	note := "sensitive skin"

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.Token == "tok" &&
			r.ServiceID == 2 &&
			r.AestheticianID == 4 &&
			r.Date.Equal(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)) &&
			r.StartTime.String() == "13:00" &&
			r.ClientNote != nil && *r.ClientNote == note
	})).Return(&createBooking.Response{
		ID:               17,
		Date:             "2025-06-05",
		StartTime:        start,
		Status:           domain.StatusPending,
		ClientNote:       &note,
		ServiceName:      "Facial",
		AestheticianName: "Anna Smith",
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(validBody))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(17), body.ID)
	assert.Equal(t, "13:00", body.Time)
	assert.Equal(t, "pending", body.Status)
	assert.Equal(t, "Anna Smith", body.AestheticianName)
	uc.AssertExpectations(t)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	rejected := &salonapi.APIError{StatusCode: http.StatusUnprocessableEntity, ErrorText: "Aesthetician is on leave"}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "already booked",
			err:     createBooking.ErrAlreadyBooked,
			status:  http.StatusConflict,
			message: msgAlreadyBooked,
		},
		{
			name:    "date not bookable",
			err:     createBooking.ErrInvalidDate,
			status:  http.StatusBadRequest,
			message: msgDateNotBookable,
		},
		{
			name:    "time outside template",
			err:     createBooking.ErrInvalidTimeSlot,
			status:  http.StatusBadRequest,
			message: msgInvalidTimeSlot,
		},
		{
			name:    "rejected with backend message",
			err:     fmt.Errorf("%w: %w", createBooking.ErrRejected, rejected),
			status:  http.StatusUnprocessableEntity,
			message: "Aesthetician is on leave",
		},
		{
			name:    "rejected without details",
			err:     createBooking.ErrRejected,
			status:  http.StatusUnprocessableEntity,
			message: msgCreateFailed,
		},
		{
			name:    "session expired",
			err:     createBooking.ErrUnauthorized,
			status:  http.StatusUnauthorized,
			message: handlers.MsgSessionExpired,
		},
		{
			name:    "internal",
			err:     fmt.Errorf("%w: boom", createBooking.ErrInternal),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(validBody))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, errorMessage(t, rec))
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "unknown field", body: `{"serviceId":2,"aestheticianId":4,"date":"2025-06-05","time":"13:00","extra":1}`},
		{name: "missing aesthetician", body: `{"serviceId":2,"date":"2025-06-05","time":"13:00"}`},
		{name: "bad date", body: `{"serviceId":2,"aestheticianId":4,"date":"06/05/2025","time":"13:00"}`},
		{name: "bad time", body: `{"serviceId":2,"aestheticianId":4,"date":"2025-06-05","time":"1pm"}`},
		{name: "note too long", body: `{"serviceId":2,"aestheticianId":4,"date":"2025-06-05","time":"13:00","clientNote":"` + strings.Repeat("a", 501) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_ValidationMessageNamesField(t *testing.T) {
	uc := new(mockUseCase)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest(`{"serviceId":2,"date":"2025-06-05","time":"13:00"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "aestheticianId is required", errorMessage(t, rec))
}

func TestHandle_MissingToken(t *testing.T) {
	uc := new(mockUseCase)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
