package create_booking

import (
	"time"

	"github.com/m04kA/glowbook-gateway/internal/domain"
	createBooking "github.com/m04kA/glowbook-gateway/internal/usecase/create_booking"
	"github.com/m04kA/glowbook-gateway/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID      int64   `json:"serviceId" validate:"required,gt=0"`
	AestheticianID int64   `json:"aestheticianId" validate:"required,gt=0"`
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"` // "2025-06-05"
	Time           string  `json:"time" validate:"required"`                     // "09:00"
	ClientNote     *string `json:"clientNote,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64   `json:"id"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Status           string  `json:"status"`
	ServiceName      string  `json:"serviceName,omitempty"`
	AestheticianName string  `json:"aestheticianName,omitempty"`
	ClientNote       *string `json:"clientNote,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(token string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Token:          token,
		ServiceID:      r.ServiceID,
		AestheticianID: r.AestheticianID,
		Date:           date,
		StartTime:      startTime,
		ClientNote:     r.ClientNote,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		Date:             resp.Date,
		Time:             resp.StartTime.String(),
		Status:           string(resp.Status),
		ServiceName:      resp.ServiceName,
		AestheticianName: resp.AestheticianName,
		ClientNote:       resp.ClientNote,
	}
}
