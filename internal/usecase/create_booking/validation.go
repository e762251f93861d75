package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.AestheticianID <= 0 {
		return fmt.Errorf("%w: aestheticianID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.ClientNote != nil && utf8.RuneCountInString(*req.ClientNote) > domain.MaxClientNoteLength {
		return fmt.Errorf("%w: client note exceeds %d characters", ErrInvalidInput, domain.MaxClientNoteLength)
	}

	return nil
}

// validateDate проверяет, что дата строго позже текущего дня
func validateDate(bookingDate time.Time, now time.Time) error {
	y1, m1, d1 := bookingDate.Date()
	y2, m2, d2 := now.Date()

	dateOnly := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)

	if !dateOnly.After(today) {
		return ErrInvalidDate
	}
	return nil
}

// validateTimeSlot проверяет, что время совпадает с началом одного из слотов расписания
func validateTimeSlot(startTime types.TimeString, template domain.ScheduleTemplate) error {
	if err := startTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if !template.Contains(startTime.String()) {
		return fmt.Errorf("%w: %s is not a bookable slot", ErrInvalidTimeSlot, startTime)
	}
	return nil
}
