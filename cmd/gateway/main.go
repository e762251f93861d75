package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cancelBookingHandler "github.com/m04kA/glowbook-gateway/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/glowbook-gateway/internal/api/handlers/create_booking"
	getAestheticianBookingsHandler "github.com/m04kA/glowbook-gateway/internal/api/handlers/get_aesthetician_bookings"
	getAestheticiansHandler "github.com/m04kA/glowbook-gateway/internal/api/handlers/get_aestheticians"
	getAvailableSlotsHandler "github.com/m04kA/glowbook-gateway/internal/api/handlers/get_available_slots"
	getMyBookingsHandler "github.com/m04kA/glowbook-gateway/internal/api/handlers/get_my_bookings"
	getProfileHandler "github.com/m04kA/glowbook-gateway/internal/api/handlers/get_profile"
	getServicesHandler "github.com/m04kA/glowbook-gateway/internal/api/handlers/get_services"
	logoutHandler "github.com/m04kA/glowbook-gateway/internal/api/handlers/logout"
	updateBookingStatusHandler "github.com/m04kA/glowbook-gateway/internal/api/handlers/update_booking_status"
	"github.com/m04kA/glowbook-gateway/internal/config"
	"github.com/m04kA/glowbook-gateway/internal/integrations/salonapi"
	bookingsService "github.com/m04kA/glowbook-gateway/internal/service/bookings"
	catalogService "github.com/m04kA/glowbook-gateway/internal/service/catalog"
	createBookingUC "github.com/m04kA/glowbook-gateway/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/glowbook-gateway/internal/usecase/get_available_slots"
	"github.com/m04kA/glowbook-gateway/pkg/logger"
	"github.com/m04kA/glowbook-gateway/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting glowbook-gateway...")

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load time zone: %v", err)
	}

	// Метрики собираются всегда, endpoint публикуется только если включен
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	// Инициализируем клиента бэкенда салона
	salonClient := salonapi.NewClient(
		cfg.SalonAPI.URL,
		time.Duration(cfg.SalonAPI.Timeout)*time.Second,
		log,
		salonapi.WithMetrics(metricsCollector),
	)
	log.Info("Salon API client initialized (url=%s, timeout=%ds)", cfg.SalonAPI.URL, cfg.SalonAPI.Timeout)

	template := cfg.ScheduleTemplate()
	log.Info("Schedule template: open=%d, close=%d, breaks=%v, time_zone=%s",
		template.OpenHour, template.CloseHour, template.BreakHours, location)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(salonClient, log)
	catalogSvc := catalogService.NewService(salonClient, cfg.SalonAPI.StorageURL, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		salonClient,
		template,
		metricsCollector,
		&getAvailableSlotsUC.RealTimeProvider{Location: location},
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		salonClient,
		template,
		&createBookingUC.RealTimeProvider{Location: location},
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getMyBookings := getMyBookingsHandler.NewHandler(bookingSvc, log)
	getAestheticianBookings := getAestheticianBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getProfile := getProfileHandler.NewHandler(catalogSvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getAestheticians := getAestheticiansHandler.NewHandler(catalogSvc, log)
	logout := logoutHandler.NewHandler(catalogSvc, log)

	trustedProxies, err := cfg.TrustedProxies()
	if err != nil {
		log.Fatal("Failed to parse trusted proxies: %v", err)
	}

	r := newRouter(cfg, routes{
		availableSlots:       getAvailableSlots.Handle,
		createBooking:        createBooking.Handle,
		cancelBooking:        cancelBooking.Handle,
		myBookings:           getMyBookings.Handle,
		aestheticianBookings: getAestheticianBookings.Handle,
		updateBookingStatus:  updateBookingStatus.Handle,
		profile:              getProfile.Handle,
		services:             getServices.Handle,
		aestheticians:        getAestheticians.Handle,
		logout:               logout.Handle,
	}, salonClient, metricsCollector, trustedProxies, log)

	if cfg.Metrics.Enabled {
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	if cfg.RateLimit.Enabled {
		log.Info("Rate limit enabled: %d requests/min, burst=%d, trusted_proxies=%v",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
