package catalog

import (
	"context"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// CatalogGateway справочные данные REST бэкенда
type CatalogGateway interface {
	GetProfile(ctx context.Context, token string) (*domain.User, error)
	ListServices(ctx context.Context, token string) ([]*domain.Service, error)
	ListAestheticians(ctx context.Context, token string) ([]*domain.Aesthetician, error)
	Logout(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
