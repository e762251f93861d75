package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
)

// BookingGateway клиент REST бэкенда: предварительная проверка и создание бронирования
type BookingGateway interface {
	ListBookings(ctx context.Context, token string, filter domain.BookingsFilter) ([]*domain.Booking, error)
	CreateBooking(ctx context.Context, token string, payload salonapi.CreateBookingPayload) (*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
