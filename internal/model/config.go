package model

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration. Defaults are overridden by
// config file, environment (BUYERSCOPE_*), then flags, in that order.
type Config struct {
	Provider    ProviderConfig    `yaml:"provider"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// ProviderConfig configures the external people-provider API client.
type ProviderConfig struct {
	BaseURL           string        `yaml:"base_url"`
	APIKey            string        `yaml:"api_key"`
	Timeout           time.Duration `yaml:"timeout"`
	MaxRetries        int           `yaml:"max_retries"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	HTTPProxy         string        `yaml:"http_proxy"`
	HTTPSProxy        string        `yaml:"https_proxy"`
	NoProxy           string        `yaml:"no_proxy"`
}

// CacheConfig configures roster response caching. An empty Dir keeps the
// cache in memory only; with a Dir set, responses persist across runs.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
	Dir     string        `yaml:"dir,omitempty"`
}

// ConcurrencyConfig bounds how many companies are processed in flight.
type ConcurrencyConfig struct {
	Companies int `yaml:"companies"`
}

// LLMConfig configures the optional playbook summarizer. The summary is
// generated after scoring and never affects scores.
type LLMConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	MaxTokens int    `yaml:"max_tokens"`
	TimeoutS  int    `yaml:"timeout_seconds"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Dir           string `yaml:"dir"`
	Verbose       bool   `yaml:"verbose"`
	IncludeFooter bool   `yaml:"include_footer"`
	JSONLogs      bool   `yaml:"json_logs"`
}

// LoadConfig reads a Config from a YAML file, applied on top of defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			BaseURL:           "https://api.peopledata.example.com",
			Timeout:           30 * time.Second,
			MaxRetries:        3,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     6 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Companies: 4,
		},
		LLM: LLMConfig{
			Enabled:   false,
			Provider:  "openai",
			Model:     "gpt-4o-mini",
			MaxTokens: 1000,
			TimeoutS:  30,
		},
		Output: OutputConfig{
			Dir:           "./buyerscope-reports",
			IncludeFooter: true,
		},
	}
}
