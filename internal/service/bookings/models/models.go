package models

import (
	"errors"
	"sort"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Действия над бронированием, доступные текущему пользователю
const (
	ActionCancel   = "cancel"
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionComplete = "complete"
)

// statusActions действие косметолога и статус, в который оно переводит бронирование
var statusActions = []struct {
	action string
	target domain.BookingStatus
}{
	{ActionApprove, domain.StatusApproved},
	{ActionReject, domain.StatusRejected},
	{ActionComplete, domain.StatusCompleted},
}

// NotAssigned подпись вместо отсутствующего имени
const NotAssigned = "Not assigned"

// Request модели

// ListMineRequest запрос на получение бронирований текущего пользователя
type ListMineRequest struct {
	Token  string
	Role   domain.Role
	Status *string // Фильтр по статусу (опционально)
}

// ListForAestheticianRequest запрос на получение расписания косметолога
type ListForAestheticianRequest struct {
	Token          string
	Role           domain.Role
	AestheticianID int64
	DateFrom       *string // YYYY-MM-DD (опционально)
	DateTo         *string // YYYY-MM-DD (опционально)
}

// CancelBookingRequest запрос на отмену бронирования клиентом
type CancelBookingRequest struct {
	Token string
}

// UpdateStatusRequest запрос на смену статуса бронирования косметологом
type UpdateStatusRequest struct {
	Token  string
	Status string
}

// Response модели

// BookingResponse бронирование, подготовленное для отображения
type BookingResponse struct {
	ID               int64    `json:"id"`
	Date             string   `json:"date"`        // "2025-06-05"
	Time             string   `json:"time"`        // "09:00"
	DisplayDate      string   `json:"displayDate"` // "06/05/2025"
	DisplayTime      string   `json:"displayTime"` // "9:00am-10:00am"
	Status           string   `json:"status"`
	ClientName       string   `json:"clientName"`
	ServiceName      string   `json:"serviceName"`
	AestheticianName string   `json:"aestheticianName"`
	ClientNote       *string  `json:"clientNote,omitempty"`
	Actions          []string `json:"actions"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO с действиями для роли viewer
func FromDomainBooking(b *domain.Booking, viewer domain.Role) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		Date:             b.AppointmentDate,
		Time:             b.AppointmentTime,
		DisplayDate:      domain.FormatDisplayDate(b.AppointmentDate),
		DisplayTime:      domain.FormatDisplayTime(b.AppointmentTime),
		Status:           string(b.Status),
		ClientName:       orNotAssigned(b.Client.FullName()),
		ServiceName:      NotAssigned,
		AestheticianName: orNotAssigned(b.Aesthetician.FullName()),
		ClientNote:       b.ClientNote,
		Actions:          ActionsFor(b, viewer),
	}

	if date, ok := domain.NormalizeDate(b.AppointmentDate); ok {
		resp.Date = date
	}
	if value, ok := b.SlotValue(); ok {
		resp.Time = value
	}
	if b.Service != nil && b.Service.Name != "" {
		resp.ServiceName = b.Service.Name
	}

	return resp
}

// FromDomainBookingList конвертирует список в DTO, упорядочивая по статусу:
// pending, approved, rejected, cancelled, completed, expired, неизвестные в конце.
// Внутри одного статуса сохраняется порядок бэкенда.
func FromDomainBookingList(bookings []*domain.Booking, viewer domain.Role) *BookingListResponse {
	sorted := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil {
			sorted = append(sorted, b)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StatusRank() < sorted[j].StatusRank()
	})

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(sorted)),
	}
	for _, b := range sorted {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b, viewer))
	}
	return resp
}

// ActionsFor действия, которые роль может выполнить над бронированием
// Клиент может отменить ожидающее бронирование; косметолог подтверждает или отклоняет
// ожидающее и завершает подтвержденное. Результат никогда не nil.
func ActionsFor(b *domain.Booking, viewer domain.Role) []string {
	actions := make([]string, 0, 2)

	switch viewer {
	case domain.RoleClient:
		if b.CanBeCancelledByClient() {
			actions = append(actions, ActionCancel)
		}
	case domain.RoleAesthetician:
		for _, sa := range statusActions {
			if domain.CanTransition(b.Status, sa.target) {
				actions = append(actions, sa.action)
			}
		}
	}

	return actions
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func orNotAssigned(name string) string {
	if name == "" {
		return NotAssigned
	}
	return name
}
