package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
	"github.com/m04kA/glowbook-gateway/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	gateway      BookingGateway
	template     domain.ScheduleTemplate
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gateway BookingGateway,
	template domain.ScheduleTemplate,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		gateway:      gateway,
		template:     template,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Перед отправкой проверяет, нет ли у клиента активного бронирования на те же дату и время.
// Проверка рекомендательная: между ней и созданием блокировка не держится,
// поэтому пересечения окончательно отклоняет бэкенд.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date %s rejected: %v", req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	if err := validateTimeSlot(req.StartTime, uc.template); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("CreateBooking: service=%d, aesthetician=%d, date=%s, time=%s",
		req.ServiceID, req.AestheticianID, date, req.StartTime)

	// 2. Предварительная проверка собственных бронирований клиента на эту дату
	conflict, err := uc.hasOwnBookingAt(ctx, req.Token, date, req.StartTime)
	switch {
	case errors.Is(err, salonapi.ErrUnauthorized):
		return nil, ErrUnauthorized
	case err != nil:
		// Пересечение окончательно проверяет бэкенд
		uc.logger.Warn("CreateBooking: pre-check failed, submitting anyway: %v", err)
	case conflict:
		uc.logger.Info("CreateBooking: client already has a booking on %s at %s", date, req.StartTime)
		return nil, ErrAlreadyBooked
	}

	// 3. Создаем бронирование
	created, err := uc.gateway.CreateBooking(ctx, req.Token, salonapi.CreateBookingPayload{
		ServiceID:      req.ServiceID,
		AestheticianID: req.AestheticianID,
		Date:           date,
		Time:           req.StartTime.String(),
		ClientNote:     req.ClientNote,
	})
	if err != nil {
		return nil, uc.mapCreateError(err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	return toResponse(created, date, req), nil
}

// hasOwnBookingAt ищет среди бронирований клиента на дату активное бронирование на то же время
func (uc *UseCase) hasOwnBookingAt(ctx context.Context, token, date string, startTime types.TimeString) (bool, error) {
	bookings, err := uc.gateway.ListBookings(ctx, token, domain.BookingsFilter{
		DateFrom: &date,
		DateTo:   &date,
	})
	if err != nil {
		return false, err
	}

	target := startTime.String()
	for _, b := range bookings {
		if b == nil || !b.BlocksActor() || !b.IsOn(date) {
			continue
		}
		if value, ok := b.SlotValue(); ok && value == target {
			return true, nil
		}
	}
	return false, nil
}

func (uc *UseCase) mapCreateError(err error) error {
	switch {
	case errors.Is(err, salonapi.ErrUnauthorized):
		uc.logger.Warn("CreateBooking: token rejected by backend")
		return ErrUnauthorized
	case errors.Is(err, salonapi.ErrRejected),
		errors.Is(err, salonapi.ErrForbidden),
		errors.Is(err, salonapi.ErrNotFound):
		uc.logger.Warn("CreateBooking: backend rejected booking: %v", err)
		return fmt.Errorf("%w: %w", ErrRejected, err)
	default:
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}
}

// toResponse собирает ответ; пустые поля ответа бэкенда заполняются из запроса
func toResponse(created *domain.Booking, date string, req *Request) *Response {
	resp := &Response{
		ID:         created.ID,
		Date:       date,
		StartTime:  req.StartTime,
		Status:     created.Status,
		ClientNote: req.ClientNote,
	}

	if normalized, ok := domain.NormalizeDate(created.AppointmentDate); ok {
		resp.Date = normalized
	}
	if value, ok := created.SlotValue(); ok {
		if ts, err := types.NewTimeStringFromString(value); err == nil {
			resp.StartTime = ts
		}
	}
	if resp.Status == "" {
		resp.Status = domain.StatusPending
	}
	if created.ClientNote != nil {
		resp.ClientNote = created.ClientNote
	}
	if created.Service != nil {
		resp.ServiceName = created.Service.Name
	}
	resp.AestheticianName = created.Aesthetician.FullName()

	return resp
}
