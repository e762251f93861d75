package get_services

import (
	"context"

	"github.com/m04kA/glowbook-gateway/internal/service/catalog/models"
)

type CatalogService interface {
	ListActiveServices(ctx context.Context, token string) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
