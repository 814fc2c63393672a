package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "STORE_DRIVER", "MONGO_URI", "DB_NAME", "MONGO_TRANSACTIONS", "JWT_SECRET",
		"TOKEN_TTL", "ADMIN_SECRET_KEY", "REDIS_URL", "SHOP_CACHE_TTL", "CORS_ALLOWED_ORIGINS",
		"EMAIL_PROVIDER", "EMAIL_SENDER", "POSTMARK_API_TOKEN", "SENDGRID_API_KEY", "SMTP_HOST",
		"SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "APP_TIMEZONE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "beauty_wellness", cfg.DBName)
	assert.False(t, cfg.MongoTransactions)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.ShopCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "none", cfg.Email.Provider)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("PORT", ":9000")
	t.Setenv("MONGO_TRANSACTIONS", "true")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("EMAIL_PROVIDER", "SMTP")
	t.Setenv("SMTP_PORT", "2525")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.True(t, cfg.MongoTransactions)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, "smtp", cfg.Email.Provider)
	assert.Equal(t, 2525, cfg.Email.SMTPPort)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"mongo without uri", map[string]string{"JWT_SECRET": "x"}},
		{"mongo without secret", map[string]string{"MONGO_URI": "mongodb://localhost"}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "postgres"}},
		{"bad bool", map[string]string{"STORE_DRIVER": "memory", "MONGO_TRANSACTIONS": "maybe"}},
		{"bad duration", map[string]string{"STORE_DRIVER": "memory", "TOKEN_TTL": "forever"}},
		{"negative ttl", map[string]string{"STORE_DRIVER": "memory", "TOKEN_TTL": "-1h"}},
		{"bad timezone", map[string]string{"STORE_DRIVER": "memory", "APP_TIMEZONE": "Mars/Olympus"}},
		{"zero burst", map[string]string{"STORE_DRIVER": "memory", "RATE_LIMIT_BURST": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
