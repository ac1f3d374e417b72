package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// WhatsApp gateway (reply delivery)
	WhatsAppAPIURL   string
	WhatsAppAPIKey   string
	WhatsAppInstance string

	// Dashboard service account used by the link-management API
	DashboardUser         string
	DashboardPasswordHash string // bcrypt hash of the dashboard password

	// Analytics
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "financas-bot")
	viper.SetDefault("WHATSAPP_API_URL", "")
	viper.SetDefault("WHATSAPP_API_KEY", "")
	viper.SetDefault("WHATSAPP_INSTANCE", "")
	viper.SetDefault("DASHBOARD_USER", "")
	viper.SetDefault("DASHBOARD_PASSWORD_HASH", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable is required")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "financas-bot"
	}

	// The gateway credentials are required: without them every reply send
	// fails, which the user sees as a silent bot.
	cfg.WhatsAppAPIURL = viper.GetString("WHATSAPP_API_URL")
	if cfg.WhatsAppAPIURL == "" {
		return nil, fmt.Errorf("WHATSAPP_API_URL environment variable is required")
	}
	cfg.WhatsAppAPIKey = viper.GetString("WHATSAPP_API_KEY")
	if cfg.WhatsAppAPIKey == "" {
		return nil, fmt.Errorf("WHATSAPP_API_KEY environment variable is required")
	}
	cfg.WhatsAppInstance = viper.GetString("WHATSAPP_INSTANCE")
	if cfg.WhatsAppInstance == "" {
		return nil, fmt.Errorf("WHATSAPP_INSTANCE environment variable is required")
	}

	cfg.DashboardUser = viper.GetString("DASHBOARD_USER")
	cfg.DashboardPasswordHash = viper.GetString("DASHBOARD_PASSWORD_HASH")
	if cfg.DashboardUser == "" || cfg.DashboardPasswordHash == "" {
		log.Println("Warning: DASHBOARD_USER / DASHBOARD_PASSWORD_HASH not set. Dashboard login will be rejected.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
