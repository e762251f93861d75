package salonapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnauthorized токен недействителен, истек или подделан; клиент должен выйти из системы
	ErrUnauthorized = errors.New("salonapi: session expired or token invalid")

	// ErrForbidden у пользователя нет прав на операцию
	ErrForbidden = errors.New("salonapi: forbidden")

	// ErrNotFound ресурс не найден
	ErrNotFound = errors.New("salonapi: not found")

	// ErrRejected бэкенд отклонил запрос (ошибка валидации или бизнес-правила)
	ErrRejected = errors.New("salonapi: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сборка запроса)
	ErrInternal = errors.New("salonapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда (5xx, невалидный JSON)
	ErrInvalidResponse = errors.New("salonapi client: invalid response")
)

// APIError ответ бэкенда с кодом не 2xx и разобранным телом ошибки
// Unwrap возвращает одну из sentinel ошибок пакета, поэтому работает errors.Is
type APIError struct {
	StatusCode int
	Message    string
	ErrorText  string
	Fields     map[string][]string

	kind error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.ErrorText
	}
	return fmt.Sprintf("%v: status %d: %s", e.kind, e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// UserMessage сообщение для пользователя при создании бронирования:
// поле error, затем message, затем ошибки валидации по полям, иначе fallback
func (e *APIError) UserMessage(fallback string) string {
	if e.ErrorText != "" {
		return e.ErrorText
	}
	if e.Message != "" {
		return e.Message
	}
	if fields := e.fieldMessages(); fields != "" {
		return fields
	}
	return fallback
}

// StatusMessage сообщение для пользователя при смене статуса или отмене:
// поле message, затем error, иначе fallback
func (e *APIError) StatusMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	if e.ErrorText != "" {
		return e.ErrorText
	}
	return fallback
}

// fieldMessages склеивает ошибки валидации: сообщения поля через ", ", поля через перевод строки
// Поля упорядочены по имени, порядок ключей JSON объекта не сохраняется
func (e *APIError) fieldMessages() string {
	if len(e.Fields) == 0 {
		return ""
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		if msgs := e.Fields[name]; len(msgs) > 0 {
			lines = append(lines, strings.Join(msgs, ", "))
		}
	}
	return strings.Join(lines, "\n")
}

// UserMessage извлекает сообщение для пользователя из любой ошибки клиента
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage(fallback)
	}
	return fallback
}

// StatusMessage аналог UserMessage с приоритетом поля message
func StatusMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusMessage(fallback)
	}
	return fallback
}
