package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment   string
	IsProduction  bool
	IsDevelopment bool

	// Discord Bot Configuration
	DiscordToken  string
	DiscordGuild  string
	CommandPrefix string

	// MongoDB Configuration
	MongoDBURI string

	// Discord Channels
	DigestChannelID string

	// Food catalogue crawler
	CrawlIntervalMinutes int

	// Recommendation digest sizes
	DailyDigestSize      int
	ContextualDigestSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Environment:     getEnv("ENVIRONMENT", "development"),
		DiscordToken:    getEnv("DISCORD_TOKEN", ""),
		DiscordGuild:    getEnv("DISCORD_GUILD", ""),
		CommandPrefix:   getEnv("COMMAND_PREFIX", "!"),
		MongoDBURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017/nutribot"),
		DigestChannelID: getEnv("DIGEST_CHANNEL_ID", ""),
	}

	// Derived properties
	cfg.IsProduction = cfg.Environment == "production"
	cfg.IsDevelopment = !cfg.IsProduction

	// Parse numeric values
	cfg.CrawlIntervalMinutes = getEnvInt("CRAWL_INTERVAL_MINUTES", 720)
	cfg.DailyDigestSize = getEnvInt("DAILY_DIGEST_SIZE", 10)
	cfg.ContextualDigestSize = getEnvInt("CONTEXTUAL_DIGEST_SIZE", 5)

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN environment variable is required")
	}

	if c.DailyDigestSize <= 0 || c.ContextualDigestSize <= 0 {
		return fmt.Errorf("digest sizes must be positive")
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
