package models

import (
	"strings"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// DefaultServiceImagePath путь картинки услуги по умолчанию относительно storage URL
const DefaultServiceImagePath = "/storage/services/default_service.png"

// ProfileResponse профиль текущего пользователя
type ProfileResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	ImageURL        string  `json:"imageUrl"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// AestheticianResponse косметолог для выбора при бронировании
type AestheticianResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
}

// AestheticianListResponse ответ со списком косметологов
type AestheticianListResponse struct {
	Aestheticians []AestheticianResponse `json:"aestheticians"`
}

// FromDomainUser конвертирует профиль в DTO
func FromDomainUser(u *domain.User) *ProfileResponse {
	return &ProfileResponse{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Role:        string(u.Role),
		DisplayName: u.DisplayName(),
	}
}

// FromDomainServices оставляет только активные услуги
// Услугам без картинки подставляется картинка по умолчанию из storageURL
func FromDomainServices(services []*domain.Service, storageURL string) *ServiceListResponse {
	defaultImage := strings.TrimRight(storageURL, "/") + DefaultServiceImagePath

	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		if s == nil || !s.IsActive {
			continue
		}

		image := s.ImageURL
		if image == "" {
			image = defaultImage
		}

		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			ImageURL:        image,
		})
	}
	return resp
}

// FromDomainAestheticians конвертирует список косметологов в DTO
func FromDomainAestheticians(list []*domain.Aesthetician) *AestheticianListResponse {
	resp := &AestheticianListResponse{Aestheticians: make([]AestheticianResponse, 0, len(list))}
	for _, a := range list {
		if a == nil {
			continue
		}
		resp.Aestheticians = append(resp.Aestheticians, AestheticianResponse{
			ID:          a.ID,
			FirstName:   a.FirstName,
			LastName:    a.LastName,
			DisplayName: a.FullName(),
		})
	}
	return resp
}
