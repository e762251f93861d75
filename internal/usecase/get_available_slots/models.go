package get_available_slots

import (
	"time"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Token          string    // bearer токен клиента; бэкенд по нему определяет "мои бронирования"
	Date           time.Time // Дата для получения слотов (без времени)
	AestheticianID *int64    // Косметолог (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date           time.Time
	AestheticianID *int64
	Slots          []domain.TimeSlot // по возрастанию часа, никогда не nil
	Degraded       bool              // true, если бронирования получить не удалось и возвращен весь шаблон
}

const (
	outcomeFiltered = "filtered"
	outcomeDegraded = "degraded"
)
