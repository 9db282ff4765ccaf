package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, storage endpoints, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	CORS     CORSConfig
	Log      LogConfig
	Checkout CheckoutConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type StorageConfig struct {
	Backend   string        `envconfig:"STORAGE_BACKEND" default:"memory"`
	KeyPrefix string        `envconfig:"STORAGE_KEY_PREFIX" default:"profiles"`
	Timeout   time.Duration `envconfig:"STORAGE_TIMEOUT" default:"3s"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	PostgresDSN string `envconfig:"POSTGRES_DSN"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Profile-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tashkent"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"18000"` // 5*60*60
}

type CheckoutConfig struct {
	ProcessingDelay time.Duration `envconfig:"CHECKOUT_PROCESSING_DELAY" default:"2s"`
	RateLimitRPS    float64       `envconfig:"CHECKOUT_RATE_LIMIT_RPS" default:"1"`
	RateLimitBurst  int           `envconfig:"CHECKOUT_RATE_LIMIT_BURST" default:"3"`
	LimiterExpiry   time.Duration `envconfig:"CHECKOUT_LIMITER_EXPIRY" default:"10m"`
}

type SessionConfig struct {
	MaxProfiles int `envconfig:"SESSION_MAX_PROFILES" default:"10000"`
}

// Validate rejects an empty PORT; envconfig's required only checks that the
// variable is set.
func (c ServerConfig) Validate() error {
	port, err := strconv.Atoi(strings.TrimSpace(c.Port))
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	return nil
}

func (c StorageConfig) Validate() error {
	switch c.Backend {
	case BackendMemory:
		return nil
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the %q backend", c.Backend)
		}
		return nil
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the %q backend", c.Backend)
		}
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Backend)
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Server.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid server config: %w", err)
	}
	if err := cfg.Storage.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid storage config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Backend:   BackendMemory,
			KeyPrefix: "profiles",
			Timeout:   time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Profile-ID"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tashkent",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 18000,
		},
		Checkout: CheckoutConfig{
			ProcessingDelay: 0,
			RateLimitRPS:    100,
			RateLimitBurst:  100,
			LimiterExpiry:   time.Minute,
		},
		Session: SessionConfig{
			MaxProfiles: 100,
		},
	}
}
