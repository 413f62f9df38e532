package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/evanhearne/ds-serverlessREST-lab/pkg/utils"
)

// Cast response modes
const (
	CastModeLegacy = "legacy"
	CastModeStrict = "strict"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string `validate:"required"`

	// AWS configuration
	AWSRegion        string `validate:"required"`
	MoviesTable      string `validate:"required"`
	CastTable        string `validate:"required"`
	CastIndexName    string // optional index for the cast query
	DynamoDBEndpoint string // DynamoDB Local or other override

	// Cast query tuning. A zero limit leaves page size to DynamoDB.
	CastQueryLimit     int32 `validate:"min=0,max=1000"`
	CastConsistentRead bool

	// Response shaping
	CastResponseMode string `validate:"oneof=legacy strict"`

	// Logging
	LogLevel string `validate:"oneof=debug info warn error"`

	// Feature flags
	EnableTracing bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	castQueryLimit, err := getEnvInt32("CAST_QUERY_LIMIT", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg := &Config{
		ServerAddress:    getEnv("SERVER_ADDRESS", ":8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AWSRegion:        getEnv("REGION", getEnv("AWS_REGION", "eu-west-1")),
		MoviesTable:      getEnv("TABLE_NAME", ""),
		CastTable:        getEnv("CAST_TABLE_NAME", ""),
		CastIndexName:    getEnv("CAST_INDEX_NAME", ""),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		CastResponseMode: strings.ToLower(getEnv("CAST_RESPONSE_MODE", CastModeLegacy)),

		CastQueryLimit:     castQueryLimit,
		CastConsistentRead: getEnvBool("CAST_CONSISTENT_READ", false),

		// Logging and features
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.CastConsistentRead && c.CastIndexName != "" {
		return fmt.Errorf("invalid configuration: consistent reads are not available on cast index %s", c.CastIndexName)
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// StrictCast reports whether cast results are rendered as lists only
func (c *Config) StrictCast() bool {
	return c.CastResponseMode == CastModeStrict
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt32 parses an integer environment variable with a default value
func getEnvInt32(key string, defaultValue int32) (int32, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", strings.ToLower(key), err)
	}
	return int32(n), nil
}
