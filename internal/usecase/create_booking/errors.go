package create_booking

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата бронирования не позже сегодняшнего дня
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает с началом слота расписания
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrAlreadyBooked возвращается, когда у клиента уже есть бронирование на эти дату и время
	ErrAlreadyBooked = errors.New("create_booking: client already has a booking at this time")

	// ErrRejected возвращается, когда бэкенд отклонил бронирование
	// Ошибка также оборачивает *salonapi.APIError с сообщением для пользователя
	ErrRejected = errors.New("create_booking: rejected by backend")

	// ErrUnauthorized возвращается, когда сессия истекла или токен недействителен
	ErrUnauthorized = errors.New("create_booking: unauthorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
