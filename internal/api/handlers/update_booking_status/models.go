package update_booking_status

import (
	"github.com/m04kA/glowbook-gateway/internal/service/bookings/models"
)

// UpdateBookingStatusRequest HTTP request model
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected completed"`
}

// UpdateBookingStatusResponse HTTP response model
type UpdateBookingStatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateBookingStatusRequest) ToServiceRequest(token string) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Token:  token,
		Status: r.Status,
	}
}
