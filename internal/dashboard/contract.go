package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/glowbook-gateway/internal/usecase/create_booking"
	"github.com/m04kA/glowbook-gateway/internal/usecase/get_available_slots"
)

// SlotResolver вычисляет доступные слоты
type SlotResolver interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// BookingSubmitter создает бронирование
type BookingSubmitter interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
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
