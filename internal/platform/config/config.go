package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	RedisURL     string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Finqle webhook verification. Empty secret disables signature checks
	// (development only).
	FinqleWebhookSecret string

	// Platform rules
	MinUurtarief decimal.Decimal

	// Background work
	ComplianceSweepInterval time.Duration
	OutboxPollInterval      time.Duration

	// Dashboard query cache
	CacheTTL  time.Duration
	CacheSize int

	// API analytics (PostHog); empty key disables tracking.
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "securyflex-backend")
	viper.SetDefault("FINQLE_WEBHOOK_SECRET", "")
	viper.SetDefault("MIN_UURTARIEF", "15.00")
	viper.SetDefault("COMPLIANCE_SWEEP_INTERVAL", "1h")
	viper.SetDefault("OUTBOX_POLL_INTERVAL", "5s")
	viper.SetDefault("CACHE_TTL", "60s")
	viper.SetDefault("CACHE_SIZE", 1024)
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set. Live broadcast updates are disabled.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.FinqleWebhookSecret = viper.GetString("FINQLE_WEBHOOK_SECRET")
	if cfg.FinqleWebhookSecret == "" {
		log.Println("Warning: FINQLE_WEBHOOK_SECRET not set. Webhook signatures will not be verified.")
	}

	minTarief, err := decimal.NewFromString(viper.GetString("MIN_UURTARIEF"))
	if err != nil {
		minTarief = decimal.NewFromInt(15)
		log.Printf("Warning: Invalid value for MIN_UURTARIEF. Defaulting to %s.\n", minTarief)
	}
	cfg.MinUurtarief = minTarief

	cfg.ComplianceSweepInterval = durationOrDefault("COMPLIANCE_SWEEP_INTERVAL", time.Hour)
	cfg.OutboxPollInterval = durationOrDefault("OUTBOX_POLL_INTERVAL", 5*time.Second)
	cfg.CacheTTL = durationOrDefault("CACHE_TTL", time.Minute)
	cfg.CacheSize = viper.GetInt("CACHE_SIZE")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return fallback
	}
	return d
}
