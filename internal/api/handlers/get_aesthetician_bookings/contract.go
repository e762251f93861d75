package get_aesthetician_bookings

import (
	"context"

	"github.com/m04kA/glowbook-gateway/internal/service/bookings/models"
)

type BookingService interface {
	ListForAesthetician(ctx context.Context, req *models.ListForAestheticianRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
