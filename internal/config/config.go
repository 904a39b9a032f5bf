package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из TOML-файла
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Session  SessionConfig  `toml:"session"`
	Redis    RedisConfig    `toml:"redis"`
	WhatsApp WhatsAppConfig `toml:"whatsapp"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки прометеус-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// SessionConfig настройки хранилища сессий диалога
type SessionConfig struct {
	// Backend одно из "memory" или "redis"
	Backend    string `toml:"backend"`
	TTLMinutes int    `toml:"ttl_minutes"`
}

// RedisConfig настройки Redis (используется при session.backend = "redis")
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// WhatsAppConfig настройки клиента WhatsApp Business API
type WhatsAppConfig struct {
	BaseURL              string `toml:"base_url"`
	Token                string `toml:"token"`
	PhoneNumberID        string `toml:"phone_number_id"`
	ConfirmationTemplate string `toml:"confirmation_template"`
	CancellationTemplate string `toml:"cancellation_template"`
	// DefaultCountryCode подставляется к номерам без международного префикса
	DefaultCountryCode string `toml:"default_country_code"`
	Timeout            int    `toml:"timeout"` // секунды
}

// BookingConfig параметры расписания приема
type BookingConfig struct {
	SlotDurationMinutes int `toml:"slot_duration_minutes"`
	HorizonDays         int `toml:"horizon_days"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Session.Backend == "" {
		cfg.Session.Backend = "memory"
	}
	if cfg.Session.TTLMinutes == 0 {
		cfg.Session.TTLMinutes = 60
	}
	if cfg.WhatsApp.Timeout == 0 {
		cfg.WhatsApp.Timeout = 10
	}
	if cfg.WhatsApp.ConfirmationTemplate == "" {
		cfg.WhatsApp.ConfirmationTemplate = "appointment_confirmation"
	}
	if cfg.WhatsApp.CancellationTemplate == "" {
		cfg.WhatsApp.CancellationTemplate = "appointment_cancellation"
	}
	if cfg.WhatsApp.DefaultCountryCode == "" {
		cfg.WhatsApp.DefaultCountryCode = "+91"
	}
	if cfg.Booking.SlotDurationMinutes == 0 {
		cfg.Booking.SlotDurationMinutes = 20
	}
	if cfg.Booking.HorizonDays == 0 {
		cfg.Booking.HorizonDays = 7
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	switch cfg.Session.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: unknown session.backend %q", cfg.Session.Backend)
	}
	if cfg.Session.Backend == "redis" && cfg.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required for session.backend = redis")
	}
	if cfg.Booking.SlotDurationMinutes < 0 {
		return fmt.Errorf("config: booking.slot_duration_minutes must be positive")
	}
	return nil
}
