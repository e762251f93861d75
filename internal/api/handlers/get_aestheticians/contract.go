package get_aestheticians

import (
	"context"

	"github.com/m04kA/glowbook-gateway/internal/service/catalog/models"
)

type CatalogService interface {
	ListAestheticians(ctx context.Context, token string) (*models.AestheticianListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
