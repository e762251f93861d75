package get_aestheticians

import (
	"errors"
	"net/http"

	"github.com/m04kA/glowbook-gateway/internal/api/handlers"
	"github.com/m04kA/glowbook-gateway/internal/api/middleware"
	"github.com/m04kA/glowbook-gateway/internal/service/catalog"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/aestheticians
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.service.ListAestheticians(r.Context(), token)
	if err != nil {
		if errors.Is(err, catalog.ErrUnauthorized) {
			handlers.RespondUnauthorized(w)
			return
		}
		h.logger.Error("GET /aestheticians - Failed to get aestheticians: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /aestheticians - Aestheticians retrieved successfully: count=%d", len(result.Aestheticians))
	handlers.RespondJSON(w, http.StatusOK, result)
}
