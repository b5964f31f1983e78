package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig holds application configuration.
type AppConfig struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	AllowedOrigins []string
	RateLimit      string

	// PostingTimeout bounds a single ledger write end to end.
	PostingTimeout time.Duration
	// QueryTimeout bounds read paths (summary, listings).
	QueryTimeout time.Duration
	// RateLookback is how far back an FX observation may lie to still count
	// as the current rate.
	RateLookback time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*AppConfig, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-H")
	viper.SetDefault("POSTING_TIMEOUT", "10s")
	viper.SetDefault("QUERY_TIMEOUT", "15s")
	viper.SetDefault("RATE_LOOKBACK", "168h")

	viper.AutomaticEnv()

	cfg := &AppConfig{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.PostingTimeout = parseDurationOr("POSTING_TIMEOUT", 10*time.Second)
	cfg.QueryTimeout = parseDurationOr("QUERY_TIMEOUT", 15*time.Second)
	cfg.RateLookback = parseDurationOr("RATE_LOOKBACK", 7*24*time.Hour)

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
