package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/glowbook-gateway/internal/domain"
)

// EnvConfigPath переменная окружения с путем к альтернативному config.toml
const EnvConfigPath = "GLOWBOOK_CONFIG"

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	SalonAPI  SalonAPIConfig  `toml:"salon_api"`
	Schedule  ScheduleConfig  `toml:"schedule"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SalonAPIConfig адрес REST бэкенда салона
type SalonAPIConfig struct {
	URL        string `toml:"url"`         // например http://127.0.0.1:8000/api
	StorageURL string `toml:"storage_url"` // база для картинок услуг, например http://127.0.0.1:8000
	Timeout    int    `toml:"timeout"`     // секунды
}

// ScheduleConfig шаблон рабочего дня: часовые слоты [OpenHour, CloseHour) без BreakHours
type ScheduleConfig struct {
	OpenHour   int    `toml:"open_hour"`
	CloseHour  int    `toml:"close_hour"`
	BreakHours []int  `toml:"break_hours"`
	TimeZone   string `toml:"time_zone"` // IANA имя; пусто = локальная зона процесса
}

type RateLimitConfig struct {
	Enabled           bool     `toml:"enabled"`
	RequestsPerMinute int      `toml:"requests_per_minute"`
	Burst             int      `toml:"burst"`
	TrustedProxies    []string `toml:"trusted_proxies"` // CIDR прокси, чьему X-Forwarded-For можно верить
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "glowbook_gateway",
		},
		SalonAPI: SalonAPIConfig{
			URL:        "http://127.0.0.1:8000/api",
			StorageURL: "http://127.0.0.1:8000",
			Timeout:    5,
		},
		Schedule: ScheduleConfig{
			OpenHour:   9,
			CloseHour:  17,
			BreakHours: []int{12},
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 200,
			Burst:             50,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
// Если задана переменная окружения GLOWBOOK_CONFIG, используется указанный в ней путь
func Load(path string) (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		path = envPath
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.SalonAPI.URL == "" {
		return fmt.Errorf("%w: salon_api.url is required", ErrInvalidConfig)
	}
	if c.SalonAPI.Timeout <= 0 {
		return fmt.Errorf("%w: salon_api.timeout must be positive", ErrInvalidConfig)
	}
	if c.Schedule.OpenHour < 0 || c.Schedule.CloseHour > 24 || c.Schedule.OpenHour >= c.Schedule.CloseHour {
		return fmt.Errorf("%w: schedule hours [%d, %d) are invalid",
			ErrInvalidConfig, c.Schedule.OpenHour, c.Schedule.CloseHour)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: schedule.time_zone: %v", ErrInvalidConfig, err)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}
	if _, err := c.TrustedProxies(); err != nil {
		return fmt.Errorf("%w: rate_limit.trusted_proxies: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Location часовой пояс, в котором вычисляется "сегодня"
func (c *Config) Location() (*time.Location, error) {
	if c.Schedule.TimeZone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Schedule.TimeZone)
}

// TrustedProxies разобранные CIDR из [rate_limit] trusted_proxies
// Одиночный адрес без маски трактуется как /32 (/128 для IPv6)
func (c *Config) TrustedProxies() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.RateLimit.TrustedProxies))
	for _, raw := range c.RateLimit.TrustedProxies {
		if prefix, err := netip.ParsePrefix(raw); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy %q", raw)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// ScheduleTemplate шаблон рабочего дня из секции [schedule]
func (c *Config) ScheduleTemplate() domain.ScheduleTemplate {
	return domain.ScheduleTemplate{
		OpenHour:   c.Schedule.OpenHour,
		CloseHour:  c.Schedule.CloseHour,
		BreakHours: append([]int(nil), c.Schedule.BreakHours...),
	}
}
