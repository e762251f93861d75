package catalog

import "errors"

var (
	// ErrUnauthorized возвращается, когда сессия истекла или токен недействителен
	ErrUnauthorized = errors.New("catalog: unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
