package salonapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// BookingDTO бронирование в формате бэкенда
// Незнакомые поля игнорируются
type BookingDTO struct {
	ID              int64          `json:"id"`
	AppointmentDate string         `json:"appointment_date"`
	AppointmentTime string         `json:"appointment_time"`
	Status          string         `json:"status"`
	ClientNote      *string        `json:"client_note"`
	Client          *PersonDTO     `json:"client"`
	Service         *ServiceRefDTO `json:"service"`
	Aesthetician    *PersonDTO     `json:"aesthetician"`
}

type PersonDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ServiceRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ServiceDTO услуга каталога
type ServiceDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           flexFloat `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	ImageURL        string    `json:"image_url"`
	IsActive        flexBool  `json:"is_active"`
}

// UserDTO профиль пользователя
type UserDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// CreateBookingPayload тело POST /bookings
type CreateBookingPayload struct {
	ServiceID      int64   `json:"service_id"`
	AestheticianID int64   `json:"aesthetician_id"`
	Date           string  `json:"appointment_date"`
	Time           string  `json:"appointment_time"`
	ClientNote     *string `json:"client_note"`
}

type bookingsEnvelope struct {
	Items []BookingDTO `json:"items"`
}

type servicesEnvelope struct {
	Items []ServiceDTO `json:"items"`
}

type aestheticiansEnvelope struct {
	Items []PersonDTO `json:"items"`
}

type profileEnvelope struct {
	User *UserDTO `json:"user"`
}

// createBookingEnvelope бэкенд может вернуть бронирование как есть или под ключом booking/data
type createBookingEnvelope struct {
	BookingDTO
	Booking *BookingDTO `json:"booking"`
	Data    *BookingDTO `json:"data"`
}

func (e *createBookingEnvelope) booking() *BookingDTO {
	switch {
	case e.Booking != nil:
		return e.Booking
	case e.Data != nil:
		return e.Data
	default:
		return &e.BookingDTO
	}
}

// errorBody тело ответа с ошибкой
type errorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

type statusPayload struct {
	Status string `json:"status"`
}

func (d *BookingDTO) toDomain() *domain.Booking {
	b := &domain.Booking{
		ID:              d.ID,
		AppointmentDate: d.AppointmentDate,
		AppointmentTime: d.AppointmentTime,
		Status:          domain.BookingStatus(d.Status),
		ClientNote:      d.ClientNote,
	}
	if d.Client != nil {
		b.Client = d.Client.toRef()
	}
	if d.Aesthetician != nil {
		b.Aesthetician = d.Aesthetician.toRef()
	}
	if d.Service != nil {
		b.Service = &domain.ServiceRef{ID: d.Service.ID, Name: d.Service.Name}
	}
	return b
}

func (p *PersonDTO) toRef() *domain.PersonRef {
	return &domain.PersonRef{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName}
}

func (s *ServiceDTO) toDomain() *domain.Service {
	return &domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           float64(s.Price),
		DurationMinutes: s.DurationMinutes,
		ImageURL:        s.ImageURL,
		IsActive:        bool(s.IsActive),
	}
}

func (u *UserDTO) toDomain() *domain.User {
	return &domain.User{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      domain.Role(u.Role),
	}
}

// flexFloat число, которое бэкенд может прислать строкой ("1500.00")
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexBool булево значение, которое бэкенд может прислать как 0/1
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(data, `"`)) {
	case "true", "1":
		*b = true
	case "false", "0", "", "null":
		*b = false
	default:
		var v bool
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*b = flexBool(v)
	}
	return nil
}
