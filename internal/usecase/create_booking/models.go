package create_booking

import (
	"time"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Token          string           // bearer токен клиента
	ServiceID      int64            // ID услуги
	AestheticianID int64            // ID косметолога
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	ClientNote     *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	Date       string           // YYYY-MM-DD
	StartTime  types.TimeString // HH:MM
	Status     domain.BookingStatus
	ClientNote *string

	// Денормализованные данные, если бэкенд их вернул
	ServiceName      string
	AestheticianName string
}
