package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/glowbook-gateway/internal/api/handlers"
	"github.com/m04kA/glowbook-gateway/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/glowbook-gateway/internal/usecase/get_available_slots"
)

const (
	msgMissingDate           = "date is required"
	msgInvalidDate           = "invalid date format, expected YYYY-MM-DD"
	msgInvalidAestheticianID = "invalid aesthetician ID"
	msgDateNotBookable       = "Please select a date from tomorrow onwards"
)

var errInvalidAestheticianID = errors.New("invalid aesthetician ID")

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), aestheticianId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(token, dateStr, query.Get("aestheticianId"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid query: %v", err)
		if errors.Is(err, errInvalidAestheticianID) {
			handlers.RespondBadRequest(w, msgInvalidAestheticianID)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Date not bookable: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAestheticianID)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: date=%s, slots_count=%d, degraded=%t",
		dateStr, len(result.Slots), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, response)
}
