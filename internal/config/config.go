package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP-сервера
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig бизнес-параметры бронирования
type BookingConfig struct {
	// HoldTTLMinutes время жизни HOLD-бронирования до истечения
	HoldTTLMinutes int `toml:"hold_ttl_minutes"`
	// HorizonDays горизонт бронирования (0 = без ограничения)
	HorizonDays int `toml:"horizon_days"`
	// LeadTimeMinutes минимальное время до начала слота
	LeadTimeMinutes int `toml:"lead_time_minutes"`
	// ReaperIntervalMinutes интервал запуска reaper для истекших HOLD (0 = выключен)
	ReaperIntervalMinutes int `toml:"reaper_interval_minutes"`
}

// Дефолтные значения бизнес-параметров
const (
	DefaultHoldTTLMinutes        = 15
	DefaultHorizonDays           = 30
	DefaultLeadTimeMinutes       = 60
	DefaultReaperIntervalMinutes = 5
)

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Booking.HoldTTLMinutes <= 0 {
		cfg.Booking.HoldTTLMinutes = DefaultHoldTTLMinutes
	}
	if cfg.Booking.HorizonDays < 0 {
		return nil, fmt.Errorf("config: booking.horizon_days must be >= 0")
	}
	if cfg.Booking.HorizonDays == 0 {
		cfg.Booking.HorizonDays = DefaultHorizonDays
	}
	if cfg.Booking.LeadTimeMinutes < 0 {
		return nil, fmt.Errorf("config: booking.lead_time_minutes must be >= 0")
	}
	if cfg.Booking.ReaperIntervalMinutes < 0 {
		return nil, fmt.Errorf("config: booking.reaper_interval_minutes must be >= 0")
	}

	return &cfg, nil
}
