package middleware

import (
	"errors"
	"net/http"

	"github.com/m04kA/glowbook-gateway/internal/api/handlers"
	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
)

const (
	msgAccessDenied       = "Access denied"
	msgProfileUnavailable = "Unable to load user profile"
)

// RequireRole загружает профиль владельца токена и пропускает только указанные роли
// Без ролей пропускается любой аутентифицированный пользователь.
// Должен стоять после Auth.
func RequireRole(profiles ProfileFetcher, logger Logger, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := TokenFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w)
				return
			}

			user, err := profiles.GetProfile(r.Context(), token)
			if err != nil {
				if errors.Is(err, salonapi.ErrUnauthorized) {
					logger.Warn("%s %s - session rejected by backend", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w)
					return
				}
				logger.Error("%s %s - failed to load profile: %v", r.Method, r.URL.Path, err)
				handlers.RespondError(w, http.StatusBadGateway, msgProfileUnavailable)
				return
			}

			if len(roles) > 0 && !user.HasRole(roles...) {
				logger.Warn("%s %s - access denied: user_id=%d, role=%s", r.Method, r.URL.Path, user.ID, user.Role)
				handlers.RespondForbidden(w, msgAccessDenied)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
