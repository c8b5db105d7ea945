package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DefaultTableName is the Airtable table used when AIRTABLE_TABLE_NAME is unset.
const DefaultTableName = "Contact Forms"

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"8080"`
	SiteURL        string   `env:"SITE_URL" envDefault:"https://lifecycle.cloud"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Logging Configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Airtable Configuration
	Airtable AirtableConfig `envPrefix:"AIRTABLE_"`

	// Contact form sessions
	FormSessionTTL   time.Duration `env:"FORM_SESSION_TTL" envDefault:"30m"`
	FormSweepEvery   time.Duration `env:"FORM_SESSION_SWEEP" envDefault:"5m"`
	ContactRateRPS   float64       `env:"CONTACT_RATE_RPS" envDefault:"1"`
	ContactRateBurst int           `env:"CONTACT_RATE_BURST" envDefault:"5"`

	// Telemetry Configuration
	OTLPEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelServiceName string  `env:"OTEL_SERVICE_NAME" envDefault:"lifecycle-web"`
	OTelSampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`

	// Notifications
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`

	// reCAPTCHA (JSON API only)
	RecaptchaSecretKey string  `env:"RECAPTCHA_SECRET_KEY"`
	RecaptchaMinScore  float64 `env:"RECAPTCHA_MIN_SCORE" envDefault:"0.5"`
}

// AirtableConfig holds the record-store credentials and endpoint.
type AirtableConfig struct {
	Token     string        `env:"TOKEN"`
	BaseID    string        `env:"BASE_ID"`
	TableName string        `env:"TABLE_NAME" envDefault:"Contact Forms"`
	APIURL    string        `env:"API_URL" envDefault:"https://api.airtable.com/v0"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv.Load never overrides variables already set in the process
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Airtable.TableName == "" {
		cfg.Airtable.TableName = DefaultTableName
	}
	cfg.SiteURL = strings.TrimSuffix(cfg.SiteURL, "/")

	return cfg, nil
}
