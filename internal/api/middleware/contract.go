package middleware

import (
	"context"
	"time"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// ProfileFetcher получает профиль владельца токена
type ProfileFetcher interface {
	GetProfile(ctx context.Context, token string) (*domain.User, error)
}

// HTTPMetrics приемник метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
