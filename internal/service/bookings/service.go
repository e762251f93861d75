package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
	"github.com/m04kA/glowbook-gateway/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	gateway BookingGateway
	logger  Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(gateway BookingGateway, logger Logger) *Service {
	return &Service{
		gateway: gateway,
		logger:  logger,
	}
}

// ListMine получает бронирования владельца токена
// Бэкенд сам ограничивает выборку: клиент видит свои бронирования, косметолог назначенные ему
func (s *Service) ListMine(ctx context.Context, req *models.ListMineRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListMine: fetching bookings for role=%s, status=%v", req.Role, derefOrAll(req.Status))

	var filter domain.BookingsFilter
	if req.Status != nil && *req.Status != "" {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListMine: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	bookings, err := s.gateway.ListBookings(ctx, req.Token, filter)
	if err != nil {
		return nil, s.mapGatewayError("ListMine", err)
	}

	s.logger.Info("ListMine: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, req.Role), nil
}

// ListForAesthetician получает бронирования косметолога за период [DateFrom, DateTo]
func (s *Service) ListForAesthetician(ctx context.Context, req *models.ListForAestheticianRequest) (*models.BookingListResponse, error) {
	if req.AestheticianID <= 0 {
		return nil, fmt.Errorf("%w: aestheticianID must be positive", ErrInvalidInput)
	}

	dateFrom, err := canonicalDate(req.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := canonicalDate(req.DateTo)
	if err != nil {
		return nil, err
	}
	if dateFrom != nil && dateTo != nil && *dateFrom > *dateTo {
		return nil, fmt.Errorf("%w: dateFrom %s is after dateTo %s", ErrInvalidInput, *dateFrom, *dateTo)
	}

	s.logger.Info("ListForAesthetician: aesthetician=%d, period=%s..%s",
		req.AestheticianID, derefOrAll(dateFrom), derefOrAll(dateTo))

	bookings, err := s.gateway.ListBookings(ctx, req.Token, domain.BookingsFilter{
		AestheticianID: &req.AestheticianID,
		DateFrom:       dateFrom,
		DateTo:         dateTo,
	})
	if err != nil {
		return nil, s.mapGatewayError("ListForAesthetician", err)
	}

	s.logger.Info("ListForAesthetician: successfully fetched %d bookings for aesthetician=%d",
		len(bookings), req.AestheticianID)
	return models.FromDomainBookingList(bookings, req.Role), nil
}

// Cancel отменяет бронирование клиентом
// Отменить можно только ожидающее бронирование; это правило проверяет бэкенд
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if err := s.gateway.CancelBooking(ctx, req.Token, bookingID); err != nil {
		return s.mapGatewayError("Cancel", err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Косметолог может установить только approved, rejected или completed
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil || !isStatusChangeTarget(status) {
		s.logger.Warn("UpdateStatus: status=%q is not allowed for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, status)

	if err := s.gateway.UpdateBookingStatus(ctx, req.Token, bookingID, status); err != nil {
		return s.mapGatewayError("UpdateStatus", err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, status)
	return nil
}

// mapGatewayError переводит ошибки клиента бэкенда в ошибки сервиса
func (s *Service) mapGatewayError(op string, err error) error {
	switch {
	case errors.Is(err, salonapi.ErrUnauthorized):
		s.logger.Warn("%s: token rejected by backend", op)
		return ErrUnauthorized
	case errors.Is(err, salonapi.ErrNotFound):
		s.logger.Warn("%s: booking not found: %v", op, err)
		return fmt.Errorf("%w: %w", ErrBookingNotFound, err)
	case errors.Is(err, salonapi.ErrForbidden):
		s.logger.Warn("%s: access denied: %v", op, err)
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, salonapi.ErrRejected):
		s.logger.Warn("%s: rejected by backend: %v", op, err)
		return fmt.Errorf("%w: %w", ErrRejected, err)
	default:
		s.logger.Error("%s: backend error: %v", op, err)
		return fmt.Errorf("%w: %s - backend error: %v", ErrInternal, op, err)
	}
}

func isStatusChangeTarget(status domain.BookingStatus) bool {
	for _, target := range domain.StatusChangeTargets {
		if status == target {
			return true
		}
	}
	return false
}

// canonicalDate проверяет, что дата задана строго в формате YYYY-MM-DD
func canonicalDate(raw *string) (*string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	date, ok := domain.NormalizeDate(*raw)
	if !ok || date != *raw {
		return nil, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, *raw)
	}
	return &date, nil
}

func derefOrAll(s *string) string {
	if s == nil || *s == "" {
		return "all"
	}
	return *s
}
