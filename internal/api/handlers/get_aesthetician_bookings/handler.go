package get_aesthetician_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/glowbook-gateway/internal/api/handlers"
	"github.com/m04kA/glowbook-gateway/internal/api/middleware"
	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/service/bookings"
)

const (
	msgInvalidAestheticianID = "invalid aesthetician ID"
	msgInvalidParams         = "invalid query parameters, dates must be YYYY-MM-DD and dateFrom must not be after dateTo"
	msgForbidden             = "Access denied"
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

// Handle GET /api/v1/aestheticians/{aestheticianId}/bookings
// Query params: dateFrom, dateTo (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	role := domain.RoleClient
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		role = user.Role
	}

	aestheticianIDStr := mux.Vars(r)["aestheticianId"]
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(token, role, aestheticianIDStr, query.Get("dateFrom"), query.Get("dateTo"))
	if err != nil {
		h.logger.Warn("GET /aestheticians/{id}/bookings - Invalid aesthetician ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAestheticianID)
		return
	}

	result, err := h.service.ListForAesthetician(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /aestheticians/{id}/bookings - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /aestheticians/{id}/bookings - Access denied: aesthetician_id=%s", aestheticianIDStr)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrUnauthorized):
			handlers.RespondUnauthorized(w)

		default:
			h.logger.Error("GET /aestheticians/{id}/bookings - Failed to get bookings: aesthetician_id=%s, error=%v",
				aestheticianIDStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /aestheticians/{id}/bookings - Bookings retrieved successfully: aesthetician_id=%d, count=%d",
		serviceReq.AestheticianID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
