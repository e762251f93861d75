package get_available_slots

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	directory    BookingDirectory
	template     domain.ScheduleTemplate
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory BookingDirectory,
	template domain.ScheduleTemplate,
	metrics MetricsRecorder,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory:    directory,
		template:     template,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Результат: шаблон дня минус слоты, занятые клиентом, и слоты, подтвержденные у косметолога.
// Если хотя бы один запрос бронирований завершился ошибкой, возвращается весь шаблон
// с Degraded=true: окончательную проверку пересечений выполняет бэкенд при создании брони.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	date := req.Date.Format(domain.DateFormat)
	uc.logger.Info("GetAvailableSlots: date=%s, aesthetician=%s", date, formatOptionalID(req.AestheticianID))

	// 2. Параллельно получаем бронирования клиента и косметолога
	actorBookings, resourceBookings, err := uc.fetchBookings(ctx, req.Token, date, req.AestheticianID)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to load bookings for date=%s, returning full template: %v", date, err)
		uc.metrics.IncSlotResolution(outcomeDegraded)
		return &Response{
			Date:           req.Date,
			AestheticianID: req.AestheticianID,
			Slots:          uc.template.Slots(),
			Degraded:       true,
		}, nil
	}

	// 3. Исключаем занятые слоты из шаблона
	booked := collectBookedTimes(date, actorBookings, resourceBookings)
	slots := uc.template.SlotsExcept(booked)

	uc.metrics.IncSlotResolution(outcomeFiltered)
	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s", len(slots), len(uc.template.Hours()), date)

	return &Response{
		Date:           req.Date,
		AestheticianID: req.AestheticianID,
		Slots:          slots,
	}, nil
}

// fetchBookings ждет завершения обоих запросов
// Бронирования клиента запрашиваются без фильтра по дате, дата проверяется локально.
// Без косметолога его набор пуст и запрос не выполняется.
func (uc *UseCase) fetchBookings(
	ctx context.Context,
	token string,
	date string,
	aestheticianID *int64,
) ([]*domain.Booking, []*domain.Booking, error) {
	var actorBookings, resourceBookings []*domain.Booking

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		bookings, err := uc.directory.ListBookings(gctx, token, domain.BookingsFilter{})
		if err != nil {
			return fmt.Errorf("client bookings: %w", err)
		}
		actorBookings = bookings
		return nil
	})

	if aestheticianID != nil {
		g.Go(func() error {
			bookings, err := uc.directory.ListBookings(gctx, token, domain.BookingsFilter{
				AestheticianID: aestheticianID,
				DateFrom:       &date,
				DateTo:         &date,
			})
			if err != nil {
				return fmt.Errorf("aesthetician bookings: %w", err)
			}
			resourceBookings = bookings
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return actorBookings, resourceBookings, nil
}

func formatOptionalID(id *int64) string {
	if id == nil {
		return "any"
	}
	return fmt.Sprintf("%d", *id)
}
