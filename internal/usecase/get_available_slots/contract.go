package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// BookingDirectory источник бронирований (REST бэкенд)
// Выборка всегда ограничена владельцем токена: клиент видит только свои бронирования
type BookingDirectory interface {
	ListBookings(ctx context.Context, token string, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// MetricsRecorder счетчик результатов вычисления слотов
type MetricsRecorder interface {
	IncSlotResolution(outcome string)
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
// Location задает часовой пояс, в котором определяется "сегодня"; nil означает локальную зону
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
