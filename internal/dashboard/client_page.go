package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/usecase/create_booking"
	"github.com/m04kA/glowbook-gateway/internal/usecase/get_available_slots"
	"github.com/m04kA/glowbook-gateway/pkg/types"
)

// ClientPage состояние формы бронирования на странице клиента
//
// Каждое вычисление слотов получает номер поколения. Результат применяется,
// только если за время запроса не было более нового вычисления, иначе он
// отбрасывается с ErrStale. Так поздний ответ на старый выбор даты не
// перезаписывает список слотов для текущего выбора.
type ClientPage struct {
	resolver  SlotResolver
	submitter BookingSubmitter
	template  domain.ScheduleTemplate
	clock     TimeProvider
	logger    Logger

	mu             sync.Mutex
	token          string
	serviceID      int64
	date           *time.Time
	aestheticianID *int64
	slots          []domain.TimeSlot
	degraded       bool
	generation     uint64
}

// NewClientPage создает страницу для владельца токена
// Пока дата не выбрана, показывается весь шаблон дня
func NewClientPage(
	token string,
	resolver SlotResolver,
	submitter BookingSubmitter,
	template domain.ScheduleTemplate,
	clock TimeProvider,
	logger Logger,
) *ClientPage {
	return &ClientPage{
		resolver:  resolver,
		submitter: submitter,
		template:  template,
		clock:     clock,
		logger:    logger,
		token:     token,
		slots:     template.Slots(),
	}
}

// MinBookableDate завтрашний день по часам страницы
// Вычисляется при каждом вызове, поэтому переход через полночь учитывается
func (p *ClientPage) MinBookableDate() time.Time {
	now := p.clock.Now()
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// SelectService выбирает услугу
func (p *ClientPage) SelectService(serviceID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.serviceID = serviceID
}

// SelectDate выбирает дату и пересчитывает слоты
func (p *ClientPage) SelectDate(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	if calendarDay(date).Before(calendarDay(p.MinBookableDate())) {
		return nil, fmt.Errorf("%w: %s", ErrDateTooEarly, date.Format(domain.DateFormat))
	}

	p.mu.Lock()
	p.date = &date
	p.mu.Unlock()

	return p.Refresh(ctx)
}

// SelectAesthetician выбирает косметолога (nil снимает выбор) и пересчитывает слоты
func (p *ClientPage) SelectAesthetician(ctx context.Context, aestheticianID *int64) ([]domain.TimeSlot, error) {
	p.mu.Lock()
	if aestheticianID != nil {
		id := *aestheticianID
		p.aestheticianID = &id
	} else {
		p.aestheticianID = nil
	}
	p.mu.Unlock()

	return p.Refresh(ctx)
}

// Refresh пересчитывает слоты для текущего выбора
// Без выбранной даты возвращается весь шаблон без обращения к бэкенду.
func (p *ClientPage) Refresh(ctx context.Context) ([]domain.TimeSlot, error) {
	p.mu.Lock()
	p.generation++
	generation := p.generation

	if p.date == nil {
		p.slots = p.template.Slots()
		p.degraded = false
		slots := copySlots(p.slots)
		p.mu.Unlock()
		return slots, nil
	}

	req := &get_available_slots.Request{
		Token:          p.token,
		Date:           *p.date,
		AestheticianID: p.aestheticianID,
	}
	p.mu.Unlock()

	resp, err := p.resolver.Execute(ctx, req)

	p.mu.Lock()
	defer p.mu.Unlock()

	if generation != p.generation {
		p.logger.Info("ClientPage: discarding slots for %s, generation %d superseded by %d",
			req.Date.Format(domain.DateFormat), generation, p.generation)
		return nil, ErrStale
	}
	if err != nil {
		return nil, err
	}

	p.slots = resp.Slots
	p.degraded = resp.Degraded
	if resp.Degraded {
		p.logger.Warn("ClientPage: showing unfiltered slots for %s", req.Date.Format(domain.DateFormat))
	}
	return copySlots(p.slots), nil
}

// Slots возвращает отображаемые слоты и признак того, что список не отфильтрован
func (p *ClientPage) Slots() ([]domain.TimeSlot, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return copySlots(p.slots), p.degraded
}

// Book создает бронирование на выбранные услугу, дату и косметолога
// После успешного создания форма сбрасывается
func (p *ClientPage) Book(ctx context.Context, startTime types.TimeString, note *string) (*create_booking.Response, error) {
	p.mu.Lock()
	if p.serviceID <= 0 || p.date == nil || p.aestheticianID == nil {
		p.mu.Unlock()
		return nil, ErrIncompleteForm
	}
	req := &create_booking.Request{
		Token:          p.token,
		ServiceID:      p.serviceID,
		AestheticianID: *p.aestheticianID,
		Date:           *p.date,
		StartTime:      startTime,
		ClientNote:     note,
	}
	p.mu.Unlock()

	resp, err := p.submitter.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.serviceID = 0
	p.date = nil
	p.aestheticianID = nil
	p.slots = p.template.Slots()
	p.degraded = false
	p.generation++
	p.mu.Unlock()

	p.logger.Info("ClientPage: booking id=%d created, form reset", resp.ID)
	return resp, nil
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func copySlots(slots []domain.TimeSlot) []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(slots))
	copy(out, slots)
	return out
}
