package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	getAvailableSlots "github.com/m04kA/glowbook-gateway/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string          `json:"date"`
	AestheticianID *int64          `json:"aestheticianId,omitempty"`
	Slots          []AvailableSlot `json:"slots"`
	Degraded       bool            `json:"degraded"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Value   string `json:"value"`   // "09:00"
	Display string `json:"display"` // "9:00am-10:00am"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Value:   slot.Value,
			Display: slot.Display,
		}
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		AestheticianID: resp.AestheticianID,
		Slots:          slots,
		Degraded:       resp.Degraded,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустой aestheticianIDStr означает "без косметолога"
func ToUseCaseRequest(token, dateStr, aestheticianIDStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		Token: token,
		Date:  date,
	}

	if aestheticianIDStr != "" {
		id, err := strconv.ParseInt(aestheticianIDStr, 10, 64)
		if err != nil {
			return nil, errInvalidAestheticianID
		}
		req.AestheticianID = &id
	}

	return req, nil
}
