package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/glowbook-gateway/internal/api/handlers"
)

const bearerPrefix = "bearer "

// Auth требует заголовок Authorization: Bearer <token> и кладет токен в контекст
// Сам токен не проверяется: его проверяет бэкенд при каждом обращении
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			handlers.RespondUnauthorized(w)
			return
		}

		token := strings.TrimSpace(header[len(bearerPrefix):])
		if token == "" {
			handlers.RespondUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
	})
}
