// Package config carga la configuración del servicio desde un YAML opcional
// más overrides por variables de entorno.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"goat-tracker/internal/domain/alerts"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort             = "8080"
	DefaultReadTimeout      = 5 * time.Second
	DefaultWriteTimeout     = 10 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultRecentWindowDays = 30
	DefaultAuthTimeout      = 5 * time.Second
)

// Modos de autenticación.
const (
	AuthModeDev    = "dev"    // X-Debug-User-ID, sin verifier
	AuthModeJWT    = "jwt"    // HS256 con secreto compartido
	AuthModeRemote = "remote" // servicio IAM externo
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Auth      AuthConfig      `yaml:"auth"`
	Alerts    alerts.Rules    `yaml:"alerts"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig: DSN vacío = store en memoria.
type DatabaseConfig struct {
	DSN     string `yaml:"dsn"`
	Migrate bool   `yaml:"migrate"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type AuthConfig struct {
	Mode string `yaml:"mode"`

	JWTSecret string `yaml:"jwt_secret"`
	JWTIssuer string `yaml:"jwt_issuer"`

	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key"`
	APIKeyHeader string        `yaml:"api_key_header"`
	Timeout      time.Duration `yaml:"timeout"`
}

type AnalyticsConfig struct {
	RecentWindowDays int `yaml:"recent_window_days"`
}

func (a AnalyticsConfig) RecentWindow() time.Duration {
	return time.Duration(a.RecentWindowDays) * 24 * time.Hour
}

// Load lee path (si no está vacío), aplica env y valida.
// Sin archivo se usan defaults + env.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            DefaultPort,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "goat-tracker",
		},
		Auth: AuthConfig{
			Mode:    AuthModeDev,
			Timeout: DefaultAuthTimeout,
		},
		Alerts: alerts.DefaultRules,
		Analytics: AnalyticsConfig{
			RecentWindowDays: DefaultRecentWindowDays,
		},
	}
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("PORT", &cfg.Server.Port)
	str("DB_DSN", &cfg.Database.DSN)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("APP_NAME", &cfg.Log.App)
	str("AUTH_MODE", &cfg.Auth.Mode)
	str("JWT_SECRET", &cfg.Auth.JWTSecret)
	str("JWT_ISSUER", &cfg.Auth.JWTIssuer)
	str("AUTH_BASE_URL", &cfg.Auth.BaseURL)
	str("AUTH_API_KEY", &cfg.Auth.APIKey)

	if v, ok := lookup("DB_MIGRATE"); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("DB_MIGRATE: %w", err)
		}
		cfg.Database.Migrate = b
	}
	return nil
}

func validate(cfg *Config) error {
	port, err := strconv.Atoi(strings.TrimPrefix(cfg.Server.Port, ":"))
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("server.port %q is not a valid port", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 || cfg.Server.WriteTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Log.Level)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Log.Format)
	}

	switch cfg.Auth.Mode {
	case AuthModeDev:
	case AuthModeJWT:
		if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
			return errors.New("auth.jwt_secret is required when auth.mode is jwt")
		}
	case AuthModeRemote:
		if strings.TrimSpace(cfg.Auth.BaseURL) == "" || strings.TrimSpace(cfg.Auth.APIKey) == "" {
			return errors.New("auth.base_url and auth.api_key are required when auth.mode is remote")
		}
	default:
		return fmt.Errorf("auth.mode: unknown mode %q", cfg.Auth.Mode)
	}

	if err := cfg.Alerts.Validate(); err != nil {
		return fmt.Errorf("alerts: %w", err)
	}
	if cfg.Analytics.RecentWindowDays < 1 {
		return errors.New("analytics.recent_window_days must be >= 1")
	}
	return nil
}

// Addr devuelve la dirección de escucha (":8080").
func (s ServerConfig) Addr() string {
	return ":" + strings.TrimPrefix(s.Port, ":")
}
