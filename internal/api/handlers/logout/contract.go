package logout

import (
	"context"
)

type CatalogService interface {
	Logout(ctx context.Context, token string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
