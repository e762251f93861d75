package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.AestheticianID != nil && *req.AestheticianID <= 0 {
		return fmt.Errorf("%w: aestheticianID must be positive", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата строго позже текущего дня
// Сравниваются только календарные даты; now уже приведено к часовому поясу салона
func validateDate(date time.Time, now time.Time) error {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()

	dateOnly := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)

	if !dateOnly.After(today) {
		return fmt.Errorf("%w: %s", ErrInvalidDate, dateOnly.Format(domain.DateFormat))
	}
	return nil
}
