package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
	"github.com/m04kA/glowbook-gateway/internal/service/catalog/models"
)

// Service справочные данные для дашбордов: профиль, услуги, косметологи
type Service struct {
	gateway    CatalogGateway
	storageURL string
	logger     Logger
}

// NewService создает новый экземпляр сервиса
func NewService(gateway CatalogGateway, storageURL string, logger Logger) *Service {
	return &Service{
		gateway:    gateway,
		storageURL: storageURL,
		logger:     logger,
	}
}

// GetProfile получает профиль владельца токена
func (s *Service) GetProfile(ctx context.Context, token string) (*models.ProfileResponse, error) {
	user, err := s.gateway.GetProfile(ctx, token)
	if err != nil {
		return nil, s.mapGatewayError("GetProfile", err)
	}

	s.logger.Info("GetProfile: user id=%d, role=%s", user.ID, user.Role)
	return models.FromDomainUser(user), nil
}

// ListActiveServices получает активные услуги каталога
func (s *Service) ListActiveServices(ctx context.Context, token string) (*models.ServiceListResponse, error) {
	services, err := s.gateway.ListServices(ctx, token)
	if err != nil {
		return nil, s.mapGatewayError("ListActiveServices", err)
	}

	resp := models.FromDomainServices(services, s.storageURL)
	s.logger.Info("ListActiveServices: %d of %d services are active", len(resp.Services), len(services))
	return resp, nil
}

// ListAestheticians получает список косметологов
func (s *Service) ListAestheticians(ctx context.Context, token string) (*models.AestheticianListResponse, error) {
	list, err := s.gateway.ListAestheticians(ctx, token)
	if err != nil {
		return nil, s.mapGatewayError("ListAestheticians", err)
	}

	s.logger.Info("ListAestheticians: fetched %d aestheticians", len(list))
	return models.FromDomainAestheticians(list), nil
}

// Logout завершает сессию на бэкенде
// Ошибка бэкенда только логируется: токен на стороне клиента удаляется в любом случае
func (s *Service) Logout(ctx context.Context, token string) {
	if err := s.gateway.Logout(ctx, token); err != nil {
		s.logger.Warn("Logout: backend logout failed: %v", err)
		return
	}
	s.logger.Info("Logout: session closed")
}

func (s *Service) mapGatewayError(op string, err error) error {
	if errors.Is(err, salonapi.ErrUnauthorized) {
		s.logger.Warn("%s: token rejected by backend", op)
		return ErrUnauthorized
	}
	s.logger.Error("%s: backend error: %v", op, err)
	return fmt.Errorf("%w: %s - backend error: %v", ErrInternal, op, err)
}
