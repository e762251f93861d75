package get_my_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/glowbook-gateway/internal/api/handlers"
	"github.com/m04kA/glowbook-gateway/internal/api/middleware"
	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/service/bookings"
	"github.com/m04kA/glowbook-gateway/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "invalid status filter"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	// Роль определяет набор действий над каждым бронированием
	role := domain.RoleClient
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		role = user.Role
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	serviceReq := &models.ListMineRequest{
		Token:  token,
		Role:   role,
		Status: statusPtr,
	}

	result, err := h.service.ListMine(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid status filter: status=%s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: role=%s, error=%v", role, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: role=%s, count=%d", role, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
