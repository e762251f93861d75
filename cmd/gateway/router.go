package main

import (
	"net/http"
	"net/netip"

	"github.com/gorilla/mux"

	"github.com/m04kA/glowbook-gateway/internal/api/middleware"
	"github.com/m04kA/glowbook-gateway/internal/config"
	"github.com/m04kA/glowbook-gateway/internal/domain"
	"github.com/m04kA/glowbook-gateway/pkg/metrics"
)

// routes обработчики API, по одному на маршрут
type routes struct {
	availableSlots       http.HandlerFunc
	createBooking        http.HandlerFunc
	cancelBooking        http.HandlerFunc
	myBookings           http.HandlerFunc
	aestheticianBookings http.HandlerFunc
	updateBookingStatus  http.HandlerFunc
	profile              http.HandlerFunc
	services             http.HandlerFunc
	aestheticians        http.HandlerFunc
	logout               http.HandlerFunc
}

// newRouter собирает маршруты с middleware и разграничением по ролям
func newRouter(
	cfg *config.Config,
	h routes,
	profiles middleware.ProfileFetcher,
	metricsCollector *metrics.Metrics,
	trustedProxies []netip.Prefix,
	log middleware.Logger,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute,
			cfg.RateLimit.Burst,
			middleware.WithTrustedProxies(trustedProxies),
		)
		r.Use(limiter.Middleware)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix: все маршруты требуют bearer токен
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// Выход доступен и с истекшей сессией, поэтому профиль не загружается
	api.HandleFunc("/logout", h.logout).Methods(http.MethodPost)

	// ============================================================
	// ANY ROLE
	// ============================================================

	anyRole := api.PathPrefix("").Subrouter()
	anyRole.Use(middleware.RequireRole(profiles, log))

	anyRole.HandleFunc("/profile", h.profile).Methods(http.MethodGet)
	anyRole.HandleFunc("/services", h.services).Methods(http.MethodGet)
	anyRole.HandleFunc("/aestheticians", h.aestheticians).Methods(http.MethodGet)
	anyRole.HandleFunc("/aestheticians/{aestheticianId}/bookings", h.aestheticianBookings).Methods(http.MethodGet)
	anyRole.HandleFunc("/bookings", h.myBookings).Methods(http.MethodGet)

	// ============================================================
	// CLIENT
	// ============================================================

	client := api.PathPrefix("").Subrouter()
	client.Use(middleware.RequireRole(profiles, log, domain.RoleClient))

	client.HandleFunc("/available-slots", h.availableSlots).Methods(http.MethodGet)
	client.HandleFunc("/bookings", h.createBooking).Methods(http.MethodPost)
	client.HandleFunc("/bookings/{bookingId}/cancel", h.cancelBooking).Methods(http.MethodPost)

	// ============================================================
	// AESTHETICIAN
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.RequireRole(profiles, log, domain.RoleAesthetician))

	staff.HandleFunc("/bookings/{bookingId}/status", h.updateBookingStatus).Methods(http.MethodPut)

	return r
}
