package bookings

import (
	"context"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// BookingGateway операции REST бэкенда над бронированиями
type BookingGateway interface {
	ListBookings(ctx context.Context, token string, filter domain.BookingsFilter) ([]*domain.Booking, error)
	CancelBooking(ctx context.Context, token string, bookingID int64) error
	UpdateBookingStatus(ctx context.Context, token string, bookingID int64, status domain.BookingStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
