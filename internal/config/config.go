package config

import (
	"os"
	"strconv"
	"time"

	"resume-parser-api/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort    string
	LogLevel      string
	MaxFileSize   int64
	SupabaseURL   string
	SupabaseKey   string
	StorageBucket string
	GeminiAPIKey  string
	GeminiModel   string
	AITimeoutSecs int64
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:    getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		MaxFileSize:   getEnvInt64OrDefault("MAX_FILE_SIZE", 5*1024*1024), // 5MiB default
		SupabaseURL:   getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:   getEnvOrDefault("SUPABASE_SERVICE_KEY", ""),
		StorageBucket: getEnvOrDefault("SUPABASE_BUCKET", "resumes"),
		GeminiAPIKey:  getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		AITimeoutSecs: getEnvInt64OrDefault("AI_TIMEOUT_SECONDS", 60),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetSupabaseURL returns the Supabase project URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase service key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetStorageBucket returns the storage bucket resumes are uploaded to
func (c *AppConfig) GetStorageBucket() string {
	return c.StorageBucket
}

// GetGeminiAPIKey returns the Gemini API key
func (c *AppConfig) GetGeminiAPIKey() string {
	return c.GeminiAPIKey
}

// GetGeminiModel returns the Gemini model name
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// GetAITimeout returns the per-request deadline for completion calls
func (c *AppConfig) GetAITimeout() time.Duration {
	return time.Duration(c.AITimeoutSecs) * time.Second
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
