package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	CORSOrigins     []string      `env:"CORS_ORIGINS,     default=*"`
	UploadLimit     string        `env:"UPLOAD_LIMIT,     default=5M"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Identity IdentityConfig
	Stripe   StripeConfig
	Sentry   SentryConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=doctors_portal"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASS"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IdentityConfig selects the bearer token verifier. The Firebase service
// account wins when both are set.
type IdentityConfig struct {
	FirebaseServiceAccount string `env:"FIREBASE_SERVICE_ACCOUNT"`
	JWTSecret              string `env:"AUTH_JWT_SECRET"`
}

type StripeConfig struct {
	SecretKey string `env:"STRIPE_SECRET_KEY"`
}

type SentryConfig struct {
	DSN string `env:"SENTRY_DSN"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through the given lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every missing required setting at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Stripe.SecretKey) == "" {
		errs = append(errs, errors.New("STRIPE_SECRET_KEY is required"))
	}
	if c.Identity.FirebaseServiceAccount == "" && c.Identity.JWTSecret == "" {
		errs = append(errs, errors.New("one of FIREBASE_SERVICE_ACCOUNT or AUTH_JWT_SECRET is required"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

// IsDevelopment reports whether the process runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}
