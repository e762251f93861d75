package bookings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
	"github.com/m04kA/glowbook-gateway/internal/service/bookings/models"
	"github.com/m04kA/glowbook-gateway/pkg/logger"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) ListBookings(ctx context.Context, token string, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, token, filter)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

func (m *mockGateway) CancelBooking(ctx context.Context, token string, bookingID int64) error {
	return m.Called(ctx, token, bookingID).Error(0)
}

func (m *mockGateway) UpdateBookingStatus(ctx context.Context, token string, bookingID int64, status domain.BookingStatus) error {
	return m.Called(ctx, token, bookingID, status).Error(0)
}

func strPtr(s string) *string { return &s }

func TestListMine_SortsByStatusAndFormats(t *testing.T) {
	gw := &mockGateway{}
	gw.On("ListBookings", mock.Anything, "tok", domain.BookingsFilter{}).Return([]*domain.Booking{
		{ID: 1, Status: domain.StatusCompleted, AppointmentDate: "2025-06-01", AppointmentTime: "09:00:00"},
		{ID: 2, Status: "on_hold", AppointmentDate: "2025-06-02", AppointmentTime: "10:00"},
		{ID: 3, Status: domain.StatusPending, AppointmentDate: "2025-06-05T00:00:00Z", AppointmentTime: "13:00:00",
			Client:       &domain.PersonRef{FirstName: "Cara", LastName: "Lim"},
			Service:      &domain.ServiceRef{Name: "Facial"},
			Aesthetician: &domain.PersonRef{FirstName: "Ana", LastName: "Reyes"}},
		{ID: 4, Status: domain.StatusApproved, AppointmentDate: "2025-06-03", AppointmentTime: "11:00"},
		{ID: 5, Status: domain.StatusPending, AppointmentDate: "2025-06-06", AppointmentTime: "14:00"},
	}, nil)

	svc := NewService(gw, logger.NewNop())
	resp, err := svc.ListMine(context.Background(), &models.ListMineRequest{Token: "tok", Role: domain.RoleClient})
	require.NoError(t, err)

	ids := make([]int64, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []int64{3, 5, 4, 1, 2}, ids)

	first := resp.Bookings[0]
	assert.Equal(t, "2025-06-05", first.Date)
	assert.Equal(t, "13:00", first.Time)
	assert.Equal(t, "06/05/2025", first.DisplayDate)
	assert.Equal(t, "1:00pm-2:00pm", first.DisplayTime)
	assert.Equal(t, "Cara Lim", first.ClientName)
	assert.Equal(t, "Facial", first.ServiceName)
	assert.Equal(t, "Ana Reyes", first.AestheticianName)
	assert.Equal(t, []string{models.ActionCancel}, first.Actions)

	approved := resp.Bookings[2]
	assert.Equal(t, models.NotAssigned, approved.AestheticianName)
	assert.Equal(t, models.NotAssigned, approved.ServiceName)
	assert.Empty(t, approved.Actions)
	assert.NotNil(t, approved.Actions)
}

func TestListMine_StatusFilter(t *testing.T) {
	approved := domain.StatusApproved

	gw := &mockGateway{}
	gw.On("ListBookings", mock.Anything, "tok", domain.BookingsFilter{Status: &approved}).Return([]*domain.Booking{}, nil)

	svc := NewService(gw, logger.NewNop())
	resp, err := svc.ListMine(context.Background(), &models.ListMineRequest{Token: "tok", Status: strPtr("approved")})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)

	_, err = svc.ListMine(context.Background(), &models.ListMineRequest{Token: "tok", Status: strPtr("confirmed")})
	assert.ErrorIs(t, err, ErrInvalidInput)
	gw.AssertNumberOfCalls(t, "ListBookings", 1)
}

func TestActionsFor(t *testing.T) {
	tests := []struct {
		role   domain.Role
		status domain.BookingStatus
		want   []string
	}{
		{domain.RoleClient, domain.StatusPending, []string{models.ActionCancel}},
		{domain.RoleClient, domain.StatusApproved, []string{}},
		{domain.RoleAesthetician, domain.StatusPending, []string{models.ActionApprove, models.ActionReject}},
		{domain.RoleAesthetician, domain.StatusApproved, []string{models.ActionComplete}},
		{domain.RoleAesthetician, domain.StatusCompleted, []string{}},
		{domain.RoleAdmin, domain.StatusPending, []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, models.ActionsFor(&domain.Booking{Status: tt.status}, tt.role))
		})
	}
}

func TestActionsFor_AestheticianFollowsTransitions(t *testing.T) {
	targets := map[string]domain.BookingStatus{
		models.ActionApprove:  domain.StatusApproved,
		models.ActionReject:   domain.StatusRejected,
		models.ActionComplete: domain.StatusCompleted,
	}
	statuses := []domain.BookingStatus{
		domain.StatusPending, domain.StatusApproved, domain.StatusRejected,
		domain.StatusCancelled, domain.StatusCompleted, domain.StatusExpired, "archived",
	}

	for _, status := range statuses {
		t.Run(string(status), func(t *testing.T) {
			actions := models.ActionsFor(&domain.Booking{Status: status}, domain.RoleAesthetician)
			for action, target := range targets {
				assert.Equal(t, domain.CanTransition(status, target), containsAction(actions, action), action)
			}
		})
	}
}

func containsAction(actions []string, action string) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

func TestListForAesthetician(t *testing.T) {
	gw := &mockGateway{}
	gw.On("ListBookings", mock.Anything, "tok", mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.AestheticianID != nil && *f.AestheticianID == 4 &&
			*f.DateFrom == "2025-06-01" && *f.DateTo == "2025-06-07"
	})).Return([]*domain.Booking{
		{ID: 9, Status: domain.StatusPending, AppointmentDate: "2025-06-02", AppointmentTime: "09:00"},
	}, nil)

	svc := NewService(gw, logger.NewNop())
	resp, err := svc.ListForAesthetician(context.Background(), &models.ListForAestheticianRequest{
		Token:          "tok",
		Role:           domain.RoleAesthetician,
		AestheticianID: 4,
		DateFrom:       strPtr("2025-06-01"),
		DateTo:         strPtr("2025-06-07"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, []string{models.ActionApprove, models.ActionReject}, resp.Bookings[0].Actions)
}

func TestListForAesthetician_Validation(t *testing.T) {
	svc := NewService(&mockGateway{}, logger.NewNop())

	tests := []struct {
		name string
		req  *models.ListForAestheticianRequest
	}{
		{"no aesthetician", &models.ListForAestheticianRequest{Token: "tok"}},
		{"bad date", &models.ListForAestheticianRequest{Token: "tok", AestheticianID: 4, DateFrom: strPtr("06/01/2025")}},
		{"timestamp date", &models.ListForAestheticianRequest{Token: "tok", AestheticianID: 4, DateTo: strPtr("2025-06-01T00:00:00Z")}},
		{"reversed", &models.ListForAestheticianRequest{Token: "tok", AestheticianID: 4,
			DateFrom: strPtr("2025-06-08"), DateTo: strPtr("2025-06-01")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ListForAesthetician(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCancel_ErrorMapping(t *testing.T) {
	apiErr := &salonapi.APIError{StatusCode: 422, Message: "Only pending bookings can be cancelled."}

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"ok", nil, nil},
		{"not found", salonapi.ErrNotFound, ErrBookingNotFound},
		{"forbidden", salonapi.ErrForbidden, ErrAccessDenied},
		{"rejected", fmt.Errorf("%w: %w", salonapi.ErrRejected, apiErr), ErrRejected},
		{"unauthorized", salonapi.ErrUnauthorized, ErrUnauthorized},
		{"transport", salonapi.ErrInternal, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &mockGateway{}
			gw.On("CancelBooking", mock.Anything, "tok", int64(12)).Return(tt.err)

			err := NewService(gw, logger.NewNop()).Cancel(context.Background(), 12, &models.CancelBookingRequest{Token: "tok"})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCancel_RejectedCarriesBackendMessage(t *testing.T) {
	apiErr := &salonapi.APIError{StatusCode: 422, Message: "Only pending bookings can be cancelled."}

	gw := &mockGateway{}
	gw.On("CancelBooking", mock.Anything, "tok", int64(12)).Return(fmt.Errorf("%w: %w", salonapi.ErrRejected, apiErr))

	err := NewService(gw, logger.NewNop()).Cancel(context.Background(), 12, &models.CancelBookingRequest{Token: "tok"})
	assert.Equal(t, "Only pending bookings can be cancelled.", salonapi.StatusMessage(err, "Failed to cancel booking"))
}

func TestUpdateStatus(t *testing.T) {
	gw := &mockGateway{}
	gw.On("UpdateBookingStatus", mock.Anything, "tok", int64(5), domain.StatusCompleted).Return(nil)

	svc := NewService(gw, logger.NewNop())
	require.NoError(t, svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Token: "tok", Status: "completed"}))

	for _, status := range []string{"pending", "cancelled", "expired", "bogus", ""} {
		err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Token: "tok", Status: status})
		assert.ErrorIs(t, err, ErrInvalidStatus, status)
	}

	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), 0, &models.UpdateStatusRequest{Token: "tok", Status: "approved"}), ErrInvalidInput)
	gw.AssertNumberOfCalls(t, "UpdateBookingStatus", 1)
}
