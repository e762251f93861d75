package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/glowbook-gateway/internal/api/handlers"
	"github.com/m04kA/glowbook-gateway/internal/api/middleware"
	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
	createBooking "github.com/m04kA/glowbook-gateway/internal/usecase/create_booking"
	"github.com/m04kA/glowbook-gateway/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, expected HH:MM"
	msgAlreadyBooked      = "You already have a booking for this date and time. Please select a different time slot."
	msgDateNotBookable    = "Please select a date from tomorrow onwards"
	msgInvalidTimeSlot    = "Please select a valid time slot"
	msgInvalidBooking     = "invalid booking data"
	msgCreateFailed       = "Failed to create booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(token)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgDateNotBookable)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrAlreadyBooked):
			h.logger.Warn("POST /bookings - Already booked: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date not bookable: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, createBooking.ErrUnauthorized):
			handlers.RespondUnauthorized(w)

		case errors.Is(err, createBooking.ErrRejected):
			h.logger.Warn("POST /bookings - Rejected by backend: %v", err)
			handlers.RespondUnprocessable(w, salonapi.UserMessage(err, msgCreateFailed))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service_id=%d, aesthetician_id=%d, error=%v",
				req.ServiceID, req.AestheticianID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, time=%s",
		result.ID, response.Date, response.Time)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
