package logout

import (
	"net/http"

	"github.com/m04kA/glowbook-gateway/internal/api/handlers"
	"github.com/m04kA/glowbook-gateway/internal/api/middleware"
)

const msgLoggedOut = "Logged out"

// LogoutResponse HTTP response model
type LogoutResponse struct {
	Message string `json:"message"`
}

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

// Handle POST /api/v1/logout
// Отвечает 200 даже при ошибке бэкенда: клиент удаляет токен в любом случае
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.TokenFromContext(r.Context()); ok {
		h.service.Logout(r.Context(), token)
	}

	h.logger.Info("POST /logout - Session closed")
	handlers.RespondJSON(w, http.StatusOK, LogoutResponse{Message: msgLoggedOut})
}
