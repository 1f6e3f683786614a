package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, public URLs, etc.)
// - default: Values common across all environments (intervals, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Log         LogConfig
	Checkout    CheckoutConfig
	Session     SessionConfig
	Idempotency IdempotencyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type CheckoutConfig struct {
	DefaultCurrency    string `envconfig:"CHECKOUT_DEFAULT_CURRENCY" default:"usd"`
	OrderPermalinkBase string `envconfig:"CHECKOUT_ORDER_PERMALINK_BASE" default:"https://checkout.example.com/orders"`
}

type SessionConfig struct {
	// TTL is the lifetime of a checkout session from creation.
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"6h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`
}

type IdempotencyConfig struct {
	// ClearInterval is how often the replay cache is cleared wholesale.
	// There is deliberately no per-key TTL.
	ClearInterval time.Duration `envconfig:"IDEMPOTENCY_CLEAR_INTERVAL" default:"10m"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Checkout: CheckoutConfig{
			DefaultCurrency:    "usd",
			OrderPermalinkBase: "https://checkout.example.com/orders",
		},
		Session: SessionConfig{
			TTL:           6 * time.Hour,
			SweepInterval: time.Minute,
		},
		Idempotency: IdempotencyConfig{
			ClearInterval: 10 * time.Minute,
		},
	}
}
