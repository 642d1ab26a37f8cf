package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Humanizer  HumanizerConfig
	Classifier InferenceConfig
	Rewriter   InferenceConfig
	Database   DatabaseConfig
	Logging    LoggingConfig
	Cache      CacheConfig
	Features   FeaturesConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxUploadBytes int64
}

// HumanizerConfig holds the default pipeline probabilities and input limit
type HumanizerConfig struct {
	SynonymRate    float64
	TransitionRate float64
	MaxInputBytes  int
}

// InferenceConfig holds the settings for one external inference endpoint
type InferenceConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// DatabaseConfig holds PostgreSQL configuration for the analysis history
type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// CacheConfig holds the detection result cache configuration
type CacheConfig struct {
	Enabled         bool
	MaxSize         int
	CleanupInterval time.Duration
	DefaultTTL      time.Duration
}

// FeaturesConfig holds feature flag configuration
type FeaturesConfig struct {
	EnableRewriter bool
	EnableHistory  bool
	MetricsEnabled bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:    getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
			MaxUploadBytes: getInt64Env("SERVER_MAX_UPLOAD_BYTES", 200<<20),
		},
		Humanizer: HumanizerConfig{
			SynonymRate:    getFloatEnv("HUMANIZER_SYNONYM_RATE", 0.2),
			TransitionRate: getFloatEnv("HUMANIZER_TRANSITION_RATE", 0.2),
			MaxInputBytes:  getIntEnv("HUMANIZER_MAX_INPUT_BYTES", 1<<20),
		},
		Classifier: InferenceConfig{
			Endpoint: getEnv("CLASSIFIER_ENDPOINT", ""),
			APIKey:   getEnv("CLASSIFIER_API_KEY", ""),
			Timeout:  getDurationEnv("CLASSIFIER_TIMEOUT", 60*time.Second),
		},
		Rewriter: InferenceConfig{
			Endpoint: getEnv("REWRITER_ENDPOINT", ""),
			APIKey:   getEnv("REWRITER_API_KEY", ""),
			Timeout:  getDurationEnv("REWRITER_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getIntEnv("DB_PORT", 5432),
			Database: getEnv("DB_NAME", "postgres"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			SSLMode:  getEnv("DB_SSLMODE", "prefer"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Cache: CacheConfig{
			Enabled:         getBoolEnv("CACHE_ENABLED", true),
			MaxSize:         getIntEnv("CACHE_MAX_SIZE", 100),
			CleanupInterval: getDurationEnv("CACHE_CLEANUP_INTERVAL", 5*time.Minute),
			DefaultTTL:      getDurationEnv("CACHE_DEFAULT_TTL", 30*time.Minute),
		},
		Features: FeaturesConfig{
			EnableRewriter: getBoolEnv("FEATURE_REWRITER", false),
			EnableHistory:  getBoolEnv("FEATURE_HISTORY", false),
			MetricsEnabled: getBoolEnv("METRICS_ENABLED", true),
		},
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets duration from environment variable with default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getIntEnv gets integer from environment variable with default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64Env gets int64 from environment variable with default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getFloatEnv gets float from environment variable with default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getBoolEnv gets boolean from environment variable with default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Humanizer.SynonymRate < 0 || c.Humanizer.SynonymRate > 1 {
		return &ConfigError{Field: "HUMANIZER_SYNONYM_RATE", Message: "must be in [0, 1]"}
	}
	if c.Humanizer.TransitionRate < 0 || c.Humanizer.TransitionRate > 1 {
		return &ConfigError{Field: "HUMANIZER_TRANSITION_RATE", Message: "must be in [0, 1]"}
	}
	if c.Classifier.Endpoint == "" {
		return &ConfigError{Field: "CLASSIFIER_ENDPOINT", Message: "classifier endpoint is required"}
	}
	if c.Features.EnableRewriter && c.Rewriter.Endpoint == "" {
		return &ConfigError{Field: "REWRITER_ENDPOINT", Message: "rewriter endpoint is required when FEATURE_REWRITER is enabled"}
	}
	if c.Features.EnableHistory && c.Database.Host == "" {
		return &ConfigError{Field: "DB_HOST", Message: "database host is required when FEATURE_HISTORY is enabled"}
	}
	return nil
}

// ConfigError represents configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
