// Package config reads the application settings from the environment,
// after loading a .env file when one is present.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go-booking/utils"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

const devJWTSecret = "dev-only-secret"

// Config holds every setting the server needs
type Config struct {
	Port string

	StoreDriver       string
	MongoURI          string
	DBName            string
	MongoTransactions bool

	JWTSecret      string
	TokenTTL       time.Duration
	AdminSecretKey string

	RedisURL     string
	ShopCacheTTL time.Duration

	CORSAllowedOrigins []string
	Email              utils.EmailConfig
	Location           *time.Location

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads .env (if any) and the environment into a Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		MongoURI:       os.Getenv("MONGO_URI"),
		DBName:         getEnv("DB_NAME", "beauty_wellness"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminSecretKey: os.Getenv("ADMIN_SECRET_KEY"),
		RedisURL:       os.Getenv("REDIS_URL"),
		Email: utils.EmailConfig{
			Provider:      strings.ToLower(getEnv("EMAIL_PROVIDER", utils.EmailNone)),
			Sender:        os.Getenv("EMAIL_SENDER"),
			PostmarkToken: os.Getenv("POSTMARK_API_TOKEN"),
			SendGridKey:   os.Getenv("SENDGRID_API_KEY"),
			SMTPHost:      os.Getenv("SMTP_HOST"),
			SMTPUsername:  os.Getenv("SMTP_USERNAME"),
			SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		},
	}

	var err error
	if cfg.MongoTransactions, err = getBool("MONGO_TRANSACTIONS", false); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ShopCacheTTL, err = getDuration("SHOP_CACHE_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Email.SMTPPort, err = getInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 20); err != nil {
		return nil, err
	}
	if cfg.Location, err = time.LoadLocation(getEnv("APP_TIMEZONE", "Local")); err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	switch cfg.StoreDriver {
	case DriverMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI is required for the %s store", DriverMongo)
		}
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET is required")
		}
	case DriverMemory:
		if cfg.JWTSecret == "" {
			log.Println("JWT_SECRET not set, using an insecure development secret")
			cfg.JWTSecret = devJWTSecret
		}
	default:
		return nil, fmt.Errorf("STORE_DRIVER: unknown driver %q", cfg.StoreDriver)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
