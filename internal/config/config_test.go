package config

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "SERVER_PORT", "LOG_LEVEL", "MAX_FILE_SIZE",
		"SUPABASE_BUCKET", "GEMINI_MODEL", "AI_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "info" {
		t.Errorf("expected default log level info, got %q", cfg.GetLogLevel())
	}
	if cfg.GetMaxFileSize() != 5*1024*1024 {
		t.Errorf("expected 5MiB default max file size, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetStorageBucket() != "resumes" {
		t.Errorf("expected default bucket resumes, got %q", cfg.GetStorageBucket())
	}
	if cfg.GetGeminiModel() != "gemini-2.0-flash" {
		t.Errorf("unexpected default model %q", cfg.GetGeminiModel())
	}
	if cfg.GetAITimeout() != 60*time.Second {
		t.Errorf("expected 60s default AI timeout, got %v", cfg.GetAITimeout())
	}
}

func TestNewConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")
	t.Setenv("SUPABASE_BUCKET", "cv-files")
	t.Setenv("GEMINI_API_KEY", "api-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("AI_TIMEOUT_SECONDS", "15")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Errorf("unexpected port %q", cfg.GetServerPort())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Errorf("unexpected log level %q", cfg.GetLogLevel())
	}
	if cfg.GetMaxFileSize() != 1048576 {
		t.Errorf("unexpected max file size %d", cfg.GetMaxFileSize())
	}
	if cfg.GetSupabaseURL() != "https://proj.supabase.co" {
		t.Errorf("unexpected supabase url %q", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseKey() != "service-key" {
		t.Errorf("unexpected supabase key %q", cfg.GetSupabaseKey())
	}
	if cfg.GetStorageBucket() != "cv-files" {
		t.Errorf("unexpected bucket %q", cfg.GetStorageBucket())
	}
	if cfg.GetGeminiAPIKey() != "api-key" {
		t.Errorf("unexpected api key %q", cfg.GetGeminiAPIKey())
	}
	if cfg.GetGeminiModel() != "gemini-1.5-pro" {
		t.Errorf("unexpected model %q", cfg.GetGeminiModel())
	}
	if cfg.GetAITimeout() != 15*time.Second {
		t.Errorf("unexpected AI timeout %v", cfg.GetAITimeout())
	}
}

func TestPortFallsBackToServerPort(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "3000")

	cfg := NewConfig()
	if cfg.GetServerPort() != "3000" {
		t.Errorf("expected SERVER_PORT fallback, got %q", cfg.GetServerPort())
	}
}

func TestInvalidMaxFileSizeFallsBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	cfg := NewConfig()
	if cfg.GetMaxFileSize() != 5*1024*1024 {
		t.Errorf("invalid value must fall back to default, got %d", cfg.GetMaxFileSize())
	}
}
