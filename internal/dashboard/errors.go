package dashboard

import "errors"

var (
	// ErrStale возвращается, когда результат устарел: после запроса был выбран другой день или косметолог
	ErrStale = errors.New("dashboard: stale slot resolution discarded")

	// ErrDateTooEarly возвращается для даты раньше минимальной даты бронирования
	ErrDateTooEarly = errors.New("dashboard: date is before the minimum bookable date")

	// ErrIncompleteForm возвращается, когда для бронирования не выбраны услуга, дата или косметолог
	ErrIncompleteForm = errors.New("dashboard: booking form is incomplete")
)
