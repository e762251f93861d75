package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// maxResponseBody ограничение на размер читаемого тела ответа
const maxResponseBody = 1 << 20

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder приемник метрик запросов к бэкенду
type MetricsRecorder interface {
	ObserveBackend(operation, outcome string, duration time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) ObserveBackend(string, string, time.Duration) {}

// Client клиент для работы с REST бэкендом салона
// Каждый вызов выполняется от имени владельца bearer токена
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// Option настройка клиента
type Option func(*Client)

// WithMetrics подключает сбор метрик
func WithMetrics(m MetricsRecorder) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithHTTPClient заменяет http.Client (например, в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient создает новый экземпляр клиента бэкенда
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: nopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListBookings получает бронирования, видимые владельцу токена
// Для клиента бэкенд сам ограничивает выборку его бронированиями
func (c *Client) ListBookings(ctx context.Context, token string, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	query := url.Values{}
	if filter.Status != nil {
		query.Set("status", string(*filter.Status))
	}
	if filter.AestheticianID != nil {
		query.Set("aesthetician_id", strconv.FormatInt(*filter.AestheticianID, 10))
	}
	if filter.DateFrom != nil {
		query.Set("date_from", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query.Set("date_to", *filter.DateTo)
	}

	path := "/bookings"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var envelope bookingsEnvelope
	if err := c.do(ctx, "list_bookings", http.MethodGet, path, token, nil, &envelope); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(envelope.Items))
	for i := range envelope.Items {
		bookings = append(bookings, envelope.Items[i].toDomain())
	}
	return bookings, nil
}

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, token string, payload CreateBookingPayload) (*domain.Booking, error) {
	var envelope createBookingEnvelope
	if err := c.do(ctx, "create_booking", http.MethodPost, "/bookings", token, payload, &envelope); err != nil {
		return nil, err
	}
	return envelope.booking().toDomain(), nil
}

// CancelBooking отменяет бронирование клиентом
func (c *Client) CancelBooking(ctx context.Context, token string, bookingID int64) error {
	path := fmt.Sprintf("/bookings/%d/cancel", bookingID)
	return c.do(ctx, "cancel_booking", http.MethodPost, path, token, struct{}{}, nil)
}

// UpdateBookingStatus меняет статус бронирования (действие косметолога)
func (c *Client) UpdateBookingStatus(ctx context.Context, token string, bookingID int64, status domain.BookingStatus) error {
	path := fmt.Sprintf("/bookings/%d/status", bookingID)
	return c.do(ctx, "update_booking_status", http.MethodPut, path, token, statusPayload{Status: string(status)}, nil)
}

// GetProfile получает профиль владельца токена
func (c *Client) GetProfile(ctx context.Context, token string) (*domain.User, error) {
	var envelope profileEnvelope
	if err := c.do(ctx, "get_profile", http.MethodGet, "/profile", token, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.User == nil {
		return nil, fmt.Errorf("%w: profile response has no user", ErrInvalidResponse)
	}
	return envelope.User.toDomain(), nil
}

// ListServices получает каталог услуг
func (c *Client) ListServices(ctx context.Context, token string) ([]*domain.Service, error) {
	var envelope servicesEnvelope
	if err := c.do(ctx, "list_services", http.MethodGet, "/services", token, nil, &envelope); err != nil {
		return nil, err
	}

	services := make([]*domain.Service, 0, len(envelope.Items))
	for i := range envelope.Items {
		services = append(services, envelope.Items[i].toDomain())
	}
	return services, nil
}

// ListAestheticians получает список косметологов
func (c *Client) ListAestheticians(ctx context.Context, token string) ([]*domain.Aesthetician, error) {
	var envelope aestheticiansEnvelope
	if err := c.do(ctx, "list_aestheticians", http.MethodGet, "/aestheticians", token, nil, &envelope); err != nil {
		return nil, err
	}

	result := make([]*domain.Aesthetician, 0, len(envelope.Items))
	for _, p := range envelope.Items {
		result = append(result, &domain.Aesthetician{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName})
	}
	return result, nil
}

// Logout завершает сессию на бэкенде
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, "logout", http.MethodPost, "/logout", token, struct{}{}, nil)
}

// do выполняет JSON запрос и раскладывает ошибки по sentinel значениям пакета
func (c *Client) do(ctx context.Context, operation, method, path, token string, body interface{}, out interface{}) error {
	started := time.Now()
	outcome := "ok"
	defer func() {
		c.metrics.ObserveBackend(operation, outcome, time.Since(started))
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			outcome = "internal_error"
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		outcome = "internal_error"
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "transport_error"
		c.log.Warn("salonapi: %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		outcome = "transport_error"
		return fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseError(resp.StatusCode, raw)
		outcome = outcomeFor(apiErr)
		if errors.Is(apiErr, ErrUnauthorized) {
			c.log.Warn("salonapi: %s %s - token rejected by backend (status %d)", method, path, resp.StatusCode)
			return ErrUnauthorized
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			c.log.Error("salonapi: %s %s - backend error: %v", method, path, apiErr)
		} else {
			c.log.Info("salonapi: %s %s - request rejected: %v", method, path, apiErr)
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		outcome = "decode_error"
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// parseError разбирает тело ответа с ошибкой и определяет ее вид по статус-коду
func parseError(status int, raw []byte) *APIError {
	var body errorBody
	// Тело может быть не JSON (HTML страница ошибки прокси); тогда остаются пустые поля
	_ = json.Unmarshal(raw, &body)

	apiErr := &APIError{
		StatusCode: status,
		Message:    body.Message,
		ErrorText:  body.Error,
		Fields:     body.Errors,
	}

	switch {
	case (status == http.StatusUnauthorized || status == 419) && isTokenFailure(body.Message):
		apiErr.kind = ErrUnauthorized
	case status == http.StatusForbidden:
		apiErr.kind = ErrForbidden
	case status == http.StatusNotFound:
		apiErr.kind = ErrNotFound
	case status >= http.StatusInternalServerError:
		apiErr.kind = ErrInvalidResponse
	default:
		apiErr.kind = ErrRejected
	}

	return apiErr
}

// isTokenFailure сообщения бэкенда, означающие недействительную сессию
func isTokenFailure(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range []string{"token", "unauthenticated", "unauthorized", "tampered", "expired"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func outcomeFor(err *APIError) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case err.StatusCode >= http.StatusInternalServerError:
		return "server_error"
	default:
		return "client_error"
	}
}
