package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Snapshot store
	SnapshotDBPath string
	SnapshotName   string

	// Summary advisor (Gemini). An absent key is not fatal: the summary
	// endpoint degrades to a fixed "key missing" message.
	GeminiAPIKey string
	GeminiModel  string

	// Reminder messaging
	WACountryCode string

	// Requests per minute per client IP
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SNAPSHOT_DB_PATH", "khata.db")
	viper.SetDefault("SNAPSHOT_NAME", "osho_credit_data")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-3-flash-preview")
	viper.SetDefault("WA_COUNTRY_CODE", "91")
	viper.SetDefault("RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SnapshotDBPath = viper.GetString("SNAPSHOT_DB_PATH")
	cfg.SnapshotName = viper.GetString("SNAPSHOT_NAME")
	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")
	cfg.WACountryCode = viper.GetString("WA_COUNTRY_CODE")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY environment variable not set. AI summaries will be unavailable.")
	}

	return cfg, nil
}
