package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the adscout API configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Search    SearchConfig    `yaml:"search"`
	Encoder   EncoderConfig   `yaml:"encoder"`
	Insights  InsightsConfig  `yaml:"insights"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Auth      AuthConfig      `yaml:"auth"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CatalogConfig holds paths to the precomputed data artifacts.
type CatalogConfig struct {
	ArtifactPath       string `yaml:"artifact_path"`
	EmbeddingsPath     string `yaml:"embeddings_path"`
	EmbeddingsMetaPath string `yaml:"embeddings_meta_path"`
}

// SearchConfig holds ranking defaults and bounds.
type SearchConfig struct {
	DefaultTopK  int     `yaml:"default_top_k"`
	MaxTopK      int     `yaml:"max_top_k"`
	DefaultAlpha float64 `yaml:"default_alpha"`
}

// EncoderConfig holds the query-encoder (OpenAI-compatible embeddings API)
// settings. An empty api_key means the embedding engine is unavailable and
// retrieval falls back to the lexical index.
type EncoderConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// ProviderConfig holds one content-generation provider's settings.
// An empty api_key means the provider is skipped, not attempted.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// InsightsConfig holds the provider chain settings, in priority order:
// gateway, then gemini, then openai.
type InsightsConfig struct {
	Gateway            ProviderConfig `yaml:"gateway"`
	Gemini             ProviderConfig `yaml:"gemini"`
	OpenAI             ProviderConfig `yaml:"openai"`
	ProviderTimeoutSec int            `yaml:"provider_timeout_sec"`
}

// TelemetryConfig holds the optional Redis-backed event counter settings.
// Empty addrs means telemetry is recorded in memory only.
type TelemetryConfig struct {
	Addrs     []string `yaml:"addrs"`
	Password  string   `yaml:"password"`
	KeyPrefix string   `yaml:"key_prefix"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Catalog.ArtifactPath == "" {
		c.Catalog.ArtifactPath = "data/clean_titles.parquet"
	}
	if c.Catalog.EmbeddingsPath == "" {
		c.Catalog.EmbeddingsPath = "data/embeddings.f32"
	}
	if c.Catalog.EmbeddingsMetaPath == "" {
		c.Catalog.EmbeddingsMetaPath = "data/embeddings_meta.json"
	}
	if c.Search.DefaultTopK <= 0 {
		c.Search.DefaultTopK = 5
	}
	if c.Search.MaxTopK <= 0 {
		c.Search.MaxTopK = 20
	}
	if c.Search.DefaultAlpha <= 0 {
		c.Search.DefaultAlpha = 0.8
	}
	if c.Encoder.BaseURL == "" {
		c.Encoder.BaseURL = "https://api.openai.com/v1"
	}
	if c.Insights.ProviderTimeoutSec <= 0 {
		c.Insights.ProviderTimeoutSec = 20
	}
	if c.Insights.Gateway.Model == "" {
		c.Insights.Gateway.Model = "gpt-4o-mini"
	}
	if c.Insights.OpenAI.Model == "" {
		c.Insights.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Insights.OpenAI.BaseURL == "" {
		c.Insights.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.Insights.Gemini.Model == "" {
		c.Insights.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Telemetry.KeyPrefix == "" {
		c.Telemetry.KeyPrefix = "adscout:"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Catalog.ArtifactPath == "" {
		return fmt.Errorf("catalog.artifact_path is required")
	}
	if c.Search.DefaultAlpha < 0 || c.Search.DefaultAlpha > 1 {
		return fmt.Errorf("search.default_alpha must be within [0,1], got %v", c.Search.DefaultAlpha)
	}
	if c.Search.DefaultTopK > c.Search.MaxTopK {
		return fmt.Errorf("search.default_top_k %d exceeds search.max_top_k %d",
			c.Search.DefaultTopK, c.Search.MaxTopK)
	}
	if c.Encoder.APIKey != "" && c.Encoder.Model == "" {
		return fmt.Errorf("encoder.model is required when encoder.api_key is set")
	}
	if c.Insights.Gateway.APIKey != "" && c.Insights.Gateway.BaseURL == "" {
		return fmt.Errorf("insights.gateway.base_url is required when insights.gateway.api_key is set")
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
