package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const devJWTSecret = "dev-secret-change-in-production"

const (
	StorageMySQL  = "mysql"
	StorageMemory = "memory"
)

var (
	ErrDevSecretInProduction = errors.New("JWT_SECRET must be set in production environment")
	ErrUnknownStorage        = errors.New("STORAGE must be one of: mysql, memory")
	ErrInvalidJWTExpiry      = errors.New("JWT_EXPIRY must be positive")
)

type Config struct {
	Port        string        `env:"PORT" env-default:"3333"`
	Env         string        `env:"ENV" env-default:"development"`
	Storage     string        `env:"STORAGE" env-default:"mysql"`
	DatabaseDSN string        `env:"DATABASE_DSN" env-default:"root:password@tcp(127.0.0.1:3306)/linkstash?parseTime=true"`
	Migrate     bool          `env:"DB_MIGRATE" env-default:"true"`
	JWTSecret   string        `env:"JWT_SECRET" env-default:"dev-secret-change-in-production"`
	JWTExpiry   time.Duration `env:"JWT_EXPIRY" env-default:"15m"`

	AuthRateRPS   float64 `env:"AUTH_RATE_RPS" env-default:"5"`
	AuthRateBurst int     `env:"AUTH_RATE_BURST" env-default:"10"`

	CORSOrigins string `env:"CORS_ORIGINS" env-default:"*"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.IsProduction() && c.JWTSecret == devJWTSecret {
		return ErrDevSecretInProduction
	}
	if c.Storage != StorageMySQL && c.Storage != StorageMemory {
		return ErrUnknownStorage
	}
	if c.JWTExpiry <= 0 {
		return ErrInvalidJWTExpiry
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins splits CORS_ORIGINS on commas, dropping blanks.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
