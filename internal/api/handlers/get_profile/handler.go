package get_profile

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

// Handle GET /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), token)
	if err != nil {
		if errors.Is(err, catalog.ErrUnauthorized) {
			handlers.RespondUnauthorized(w)
			return
		}
		h.logger.Error("GET /profile - Failed to get profile: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /profile - Profile retrieved successfully: user_id=%d, role=%s", profile.ID, profile.Role)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
