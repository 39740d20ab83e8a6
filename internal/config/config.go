package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port             string
	LogLevel         string
	RulesPath        string
	RandomSeed       int64
	RatesURL         string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SenderEmail      string
	NotifyEmail      string
	AutoSaveSchedule string
	RateLimit        float64
	RateBurst        int
	Rules            Rules
}

// NewConfig loads configuration from environment variables. A .env file in
// the working directory is read first when present.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		RulesPath:        getEnv("RULES_PATH", ""),
		RatesURL:         getEnv("RATES_URL", ""),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		SenderEmail:      getEnv("SENDER_EMAIL", "noreply@saveeasy.africa"),
		NotifyEmail:      getEnv("NOTIFY_EMAIL", ""),
		AutoSaveSchedule: getEnv("AUTOSAVE_SCHEDULE", "0 8 * * *"),
	}

	var err error
	if cfg.RandomSeed, err = strconv.ParseInt(getEnv("RANDOM_SEED", "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid RANDOM_SEED: %w", err)
	}
	if cfg.RateLimit, err = strconv.ParseFloat(getEnv("RATE_LIMIT", "20"), 64); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}
	if cfg.RateBurst, err = strconv.Atoi(getEnv("RATE_BURST", "40")); err != nil {
		return nil, fmt.Errorf("invalid RATE_BURST: %w", err)
	}

	cfg.Rules = DefaultRules()
	if cfg.RulesPath != "" {
		rules, err := LoadRules(cfg.RulesPath)
		if err != nil {
			return nil, err
		}
		cfg.Rules = *rules
	}
	if v, ok := os.LookupEnv("LATENCY_SCALE"); ok {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid LATENCY_SCALE: %w", err)
		}
		cfg.Rules.LatencyScale = scale
	}
	if v, ok := os.LookupEnv("TRANSACTION_PIN_HASH"); ok {
		cfg.Rules.PinHash = v
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EmailEnabled reports whether SMTP delivery is configured
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.NotifyEmail != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
