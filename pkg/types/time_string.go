package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeString возвращается, когда строка не является временем суток в формате HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток с точностью до минуты в формате HH:MM
// Секунды, если присутствуют во входной строке, отбрасываются
type TimeString struct {
	hour   int
	minute int
	valid  bool
}

// NewTimeStringFromString разбирает "HH:MM" или "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := parseComponent(parts[0], 23)
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minute, err := parseComponent(parts[1], 59)
	if err != nil || len(parts[1]) != 2 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(parts) == 3 {
		if _, err := parseComponent(parts[2], 59); err != nil || len(parts[2]) != 2 {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return TimeString{hour: hour, minute: minute, valid: true}, nil
}

func parseComponent(s string, limit int) (int, error) {
	if s == "" || len(s) > 2 {
		return 0, ErrInvalidTimeString
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTimeString
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > limit {
		return 0, ErrInvalidTimeString
	}
	return v, nil
}

// Hour возвращает часы
func (t TimeString) Hour() int { return t.hour }

// Minute возвращает минуты
func (t TimeString) Minute() int { return t.minute }

// IsZero true для неинициализированного значения
func (t TimeString) IsZero() bool { return !t.valid }

// Validate проверяет, что значение инициализировано
func (t TimeString) Validate() error {
	if !t.valid {
		return ErrInvalidTimeString
	}
	return nil
}

// String возвращает время в формате HH:MM
func (t TimeString) String() string {
	if !t.valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// MarshalJSON сериализует время как "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON принимает "HH:MM" или "HH:MM:SS"
func (t *TimeString) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeString, data)
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
