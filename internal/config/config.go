package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// Драйверы хранилища сессий
const (
	SessionDriverMemory   = "memory"
	SessionDriverPostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Backend   BackendConfig   `toml:"backend"`
	Arena     ArenaConfig     `toml:"arena"`
	Sessions  SessionsConfig  `toml:"sessions"`
	Database  DatabaseConfig  `toml:"database"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Sports    []domain.Sport  `toml:"sports"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BackendConfig адрес API арены (расчёт цены, занятые слоты, создание брони)
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// ArenaConfig операционное окно и правила бронирования
type ArenaConfig struct {
	OpenHour          int    `toml:"open_hour"`
	CloseHour         int    `toml:"close_hour"`
	BookingWindowDays int    `toml:"booking_window_days"`
	PhoneRegion       string `toml:"phone_region"`
	Timezone          string `toml:"timezone"`
	RequireEmail      bool   `toml:"require_email"`
}

type SessionsConfig struct {
	Driver string `toml:"driver"` // memory | postgres
	TTL    int    `toml:"ttl"`    // минуты
}

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

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// SessionTTL время жизни черновика
func (s SessionsConfig) SessionTTL() time.Duration {
	return time.Duration(s.TTL) * time.Minute
}

// Location часовой пояс арены (для "сегодня" в окне бронирования)
func (a ArenaConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(a.Timezone)
}

// Default конфигурация по умолчанию (значения исходной арены)
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "arena-booking",
		},
		Backend: BackendConfig{
			URL:     "http://localhost:5000",
			Timeout: 10,
		},
		Arena: ArenaConfig{
			OpenHour:          domain.DefaultOpenHour,
			CloseHour:         domain.DefaultCloseHour,
			BookingWindowDays: domain.DefaultBookingWindowDays,
			PhoneRegion:       "PK",
			Timezone:          "Asia/Karachi",
			RequireEmail:      true,
		},
		Sessions: SessionsConfig{
			Driver: SessionDriverMemory,
			TTL:    60,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "arena_booking",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 20,
			Burst:             40,
		},
		Sports: domain.DefaultSports(),
	}
}

// Load читает .env рядом с конфигом, затем TOML поверх значений по умолчанию
func Load(configPath string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := Default()

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ARENA_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("SESSIONS_DRIVER"); v != "" {
		c.Sessions.Driver = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server http_port is required")
	}
	if c.Backend.URL == "" {
		return fmt.Errorf("backend url is required")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive")
	}
	if _, err := domain.NewGrid(c.Arena.OpenHour, c.Arena.CloseHour); err != nil {
		return err
	}
	if c.Arena.BookingWindowDays < 0 {
		return fmt.Errorf("arena booking_window_days must not be negative")
	}
	if _, err := c.Arena.Location(); err != nil {
		return fmt.Errorf("arena timezone: %w", err)
	}
	if _, err := domain.NewCatalog(c.Sports); err != nil {
		return err
	}
	if c.Sessions.TTL <= 0 {
		return fmt.Errorf("sessions ttl must be positive")
	}

	switch c.Sessions.Driver {
	case SessionDriverMemory:
	case SessionDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("database host and dbname are required for postgres sessions")
		}
	default:
		return fmt.Errorf("unsupported sessions driver: %s", c.Sessions.Driver)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit requests_per_second and burst must be positive")
	}

	return nil
}
