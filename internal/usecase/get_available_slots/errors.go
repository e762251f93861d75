package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата не позже сегодняшнего дня
	ErrInvalidDate = errors.New("get_available_slots: date must be after today")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")
)
