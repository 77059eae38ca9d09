package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_AlphaOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultAlpha = 1.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for alpha above 1")
	}
}

func TestValidate_DefaultTopKOverMax(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultTopK = 50
	cfg.Search.MaxTopK = 20

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for default top_k above max")
	}
}

func TestValidate_EncoderModelRequired(t *testing.T) {
	cfg := validConfig()
	cfg.Encoder.APIKey = "k"
	cfg.Encoder.Model = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for encoder key without model")
	}
}

func TestValidate_GatewayNeedsBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Insights.Gateway.APIKey = "k"
	cfg.Insights.Gateway.BaseURL = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for gateway key without base URL")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Catalog.ArtifactPath != "data/clean_titles.parquet" {
		t.Errorf("catalog path = %q", cfg.Catalog.ArtifactPath)
	}
	if cfg.Search.DefaultTopK != 5 || cfg.Search.MaxTopK != 20 {
		t.Errorf("top_k defaults = %d/%d", cfg.Search.DefaultTopK, cfg.Search.MaxTopK)
	}
	if cfg.Search.DefaultAlpha != 0.8 {
		t.Errorf("alpha default = %v", cfg.Search.DefaultAlpha)
	}
	if cfg.Insights.ProviderTimeoutSec != 20 {
		t.Errorf("provider timeout = %d", cfg.Insights.ProviderTimeoutSec)
	}
	if cfg.Insights.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("gemini model = %q", cfg.Insights.Gemini.Model)
	}
	if cfg.Telemetry.KeyPrefix != "adscout:" {
		t.Errorf("key prefix = %q", cfg.Telemetry.KeyPrefix)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("ADSCOUT_TEST_VALUE", "from-env")

	tests := []struct {
		in   string
		want string
	}{
		{"key: ${ADSCOUT_TEST_VALUE}", "key: from-env"},
		{"key: ${ADSCOUT_TEST_UNSET}", "key: "},
		{"key: ${ADSCOUT_TEST_UNSET:-fallback}", "key: fallback"},
		{"key: ${ADSCOUT_TEST_VALUE:-fallback}", "key: from-env"},
		{"key: plain", "key: plain"},
	}
	for _, tt := range tests {
		if got := string(expandEnvVars([]byte(tt.in))); got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := `
http:
  port: 9090
catalog:
  artifact_path: ${ADSCOUT_TEST_CATALOG:-data/test.parquet}
search:
  default_top_k: 3
`
	if err := os.WriteFile(filepath.Join(dir, "config", "custom.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Load("custom")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
	if cfg.Catalog.ArtifactPath != "data/test.parquet" {
		t.Errorf("catalog path = %q, env default not expanded", cfg.Catalog.ArtifactPath)
	}
	if cfg.Search.DefaultTopK != 3 {
		t.Errorf("top_k = %d", cfg.Search.DefaultTopK)
	}
	// Unset fields still receive defaults.
	if cfg.Search.MaxTopK != 20 {
		t.Errorf("max top_k = %d, defaults not applied", cfg.Search.MaxTopK)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load("absent"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}
