package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT,             default=5000"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=15s"`
	OrderWorkers    int           `env:"ORDER_WORKERS,    default=8"`

	// StaffJWTSecret enables the staff-only routes when set.
	StaffJWTSecret string `env:"STAFF_JWT_SECRET"`

	Payment  PaymentConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	RabbitMQ RabbitMQConfig
}

// PaymentConfig holds the Stripe settings. Without a secret key payments are
// disabled and the rest of the API keeps working.
type PaymentConfig struct {
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	Currency            string `env:"PAYMENT_CURRENCY, default=usd"`
}

// RedisConfig enables webhook event dedup when Addr is set.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// MongoConfig enables the payment event audit trail when URI is set.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=storefront"`
}

// RabbitMQConfig enables order status broadcasting when URL is set.
type RabbitMQConfig struct {
	URL string `env:"AMQP_URL"`
}

// PaymentsEnabled reports whether a payment provider is configured.
func (c *Config) PaymentsEnabled() bool { return c.Payment.StripeSecretKey != "" }

// StaffRoutesEnabled reports whether staff-only routes are mounted.
func (c *Config) StaffRoutesEnabled() bool { return c.StaffJWTSecret != "" }

// IsDevelopment reports whether the service runs in a development environment.
func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if cfg.OrderWorkers < 1 {
		return nil, fmt.Errorf("ORDER_WORKERS must be at least 1, got %d", cfg.OrderWorkers)
	}
	return &cfg, nil
}
