// Package config loads server settings from defaults, an optional TOML
// file, a .env file and the environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/mmynk/financehelper/internal/notify"
)

// DefaultJWTSecret is only suitable for local development.
const DefaultJWTSecret = "financehelper-dev-secret"

// Config holds all server configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Auth      AuthConfig      `toml:"auth"`
	Log       LogConfig       `toml:"log"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	SMTP      notify.Config   `toml:"smtp"`
	Tracing   TracingConfig   `toml:"tracing"`
}

// ServerConfig holds HTTP and storage settings.
type ServerConfig struct {
	Port   int    `toml:"port"`
	DBPath string `toml:"db_path"`

	// StaticPath, when set, is served for every non-API route.
	StaticPath string `toml:"static_path,omitempty"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret string        `toml:"jwt_secret"`
	TokenTTL  time.Duration `toml:"token_ttl"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// SchedulerConfig holds the cron expression for refreshing derived figures.
// An empty schedule disables the job.
type SchedulerConfig struct {
	RefreshSchedule string `toml:"refresh_schedule"`
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	Endpoint    string `toml:"endpoint,omitempty"`
	ServiceName string `toml:"service_name"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:   8080,
			DBPath: "./data/finance.db",
		},
		Auth: AuthConfig{
			JWTSecret: DefaultJWTSecret,
			TokenTTL:  24 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
		Scheduler: SchedulerConfig{
			// Midnight on the first day of every month.
			RefreshSchedule: "0 0 1 * *",
		},
		SMTP: notify.Config{
			Port: "587",
		},
		Tracing: TracingConfig{
			ServiceName: "financehelper",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "financehelper")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "financehelper")
}

// ConfigPath returns the config file path, honoring FINANCE_CONFIG.
func ConfigPath() string {
	if path := os.Getenv("FINANCE_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load builds the configuration. A missing config file or .env file is not
// an error.
func Load() (Config, error) {
	// .env only fills variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := LoadFile(ConfigPath())
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFile reads a TOML file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Server.DBPath == "" {
		return errors.New("db_path is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("jwt_secret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var err error
	if cfg.Server.Port, err = getEnvInt("PORT", cfg.Server.Port); err != nil {
		return err
	}
	if cfg.Auth.TokenTTL, err = getEnvDuration("TOKEN_TTL", cfg.Auth.TokenTTL); err != nil {
		return err
	}

	cfg.Server.DBPath = getEnv("DB_PATH", cfg.Server.DBPath)
	cfg.Server.StaticPath = getEnv("STATIC_PATH", cfg.Server.StaticPath)
	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Scheduler.RefreshSchedule = getEnv("REFRESH_SCHEDULE", cfg.Scheduler.RefreshSchedule)
	cfg.SMTP.Host = getEnv("SMTP_HOST", cfg.SMTP.Host)
	cfg.SMTP.Port = getEnv("SMTP_PORT", cfg.SMTP.Port)
	cfg.SMTP.Username = getEnv("SMTP_USERNAME", cfg.SMTP.Username)
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", cfg.SMTP.Password)
	cfg.SMTP.From = getEnv("SMTP_FROM", cfg.SMTP.From)
	cfg.Tracing.Endpoint = getEnv("OTEL_ENDPOINT", cfg.Tracing.Endpoint)
	cfg.Tracing.ServiceName = getEnv("OTEL_SERVICE_NAME", cfg.Tracing.ServiceName)
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
