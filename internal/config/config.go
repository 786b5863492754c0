package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Search     SearchConfig
	Ranking    RankingConfig
	Intent     IntentConfig
	Catalog    CatalogConfig
	PostgreSQL PostgreSQLConfig
	Reply      ReplyConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	DefaultTopK int
	MaxTopK     int
}

// RankingConfig holds ranking policy and score weights. Policy is
// "additive" (ranked OR-filter, the default) or "strict" (hard AND-filter);
// catalog revisions genuinely disagree on which behavior is wanted, so it
// stays a flag rather than a hardcoded choice.
type RankingConfig struct {
	Policy        string
	WeightCity    int
	WeightType    int
	WeightKeyword int
	WeightBudget  int
}

// IntentConfig holds query-interpretation configuration.
// ImplicitBudgetCrores is the ceiling assumed for a bare "under ... crore"
// phrase with no explicit number; 0 disables the assumption.
type IntentConfig struct {
	ImplicitBudgetCrores float64
}

// CatalogConfig selects where listings are loaded from: "seed" (built-in)
// or "postgres".
type CatalogConfig struct {
	Source string
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// ReplyConfig holds configuration for the optional reply-phrasing
// collaborator (an OpenAI-compatible chat endpoint). Disabled unless an API
// key is set; its failures never affect search results.
type ReplyConfig struct {
	APIKey      string
	APIBase     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     int
	Enabled     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Search: SearchConfig{
			DefaultTopK: getEnvAsInt("SEARCH_DEFAULT_TOP_K", 5),
			MaxTopK:     getEnvAsInt("SEARCH_MAX_TOP_K", 50),
		},
		Ranking: RankingConfig{
			Policy:        getEnv("RANK_POLICY", "additive"),
			WeightCity:    getEnvAsInt("RANK_WEIGHT_CITY", 3),
			WeightType:    getEnvAsInt("RANK_WEIGHT_TYPE", 2),
			WeightKeyword: getEnvAsInt("RANK_WEIGHT_KEYWORD", 1),
			WeightBudget:  getEnvAsInt("RANK_WEIGHT_BUDGET", 2),
		},
		Intent: IntentConfig{
			ImplicitBudgetCrores: getEnvAsFloat("INTENT_IMPLICIT_BUDGET_CRORES", 2),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", "seed"),
		},
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "estate_search"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Reply: ReplyConfig{
			APIKey:      getEnv("REPLY_API_KEY", ""),
			APIBase:     getEnv("REPLY_API_BASE", "https://api.openai.com/v1"),
			Model:       getEnv("REPLY_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat("REPLY_TEMPERATURE", 0.3),
			MaxTokens:   getEnvAsInt("REPLY_MAX_TOKENS", 256),
			Timeout:     getEnvAsInt("REPLY_TIMEOUT", 10),
			Enabled:     getEnv("REPLY_API_KEY", "") != "",
		},
	}

	if cfg.Ranking.Policy != "additive" && cfg.Ranking.Policy != "strict" {
		return nil, fmt.Errorf("invalid RANK_POLICY %q: must be additive or strict", cfg.Ranking.Policy)
	}

	return cfg, nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
