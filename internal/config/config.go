// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// LLM backend names accepted in llm.backend.
const (
	BackendOllama       = "ollama"
	BackendAnthropic    = "anthropic"
	BackendOpenAICompat = "openai_compat"
	BackendHeuristic    = "heuristic"
)

var backends = []string{BackendOllama, BackendAnthropic, BackendOpenAICompat, BackendHeuristic}

// Config is the top-level application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Marketplace MarketplaceConfig `yaml:"marketplace"`
	LLM         LLMConfig         `yaml:"llm"`
	Images      ImagesConfig      `yaml:"images"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Addr returns the host:port the server listens on.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// MarketplaceConfig defines the upstream marketplace backend settings.
type MarketplaceConfig struct {
	BaseURL   string          `yaml:"base_url"`
	Token     string          `yaml:"token"`
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines outbound request rate limiting.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// LLMConfig defines the price suggestion backend settings.
type LLMConfig struct {
	Backend      string             `yaml:"backend"` // ollama, anthropic, openai_compat, heuristic
	Ollama       OllamaConfig       `yaml:"ollama"`
	Anthropic    AnthropicConfig    `yaml:"anthropic"`
	OpenAICompat OpenAICompatConfig `yaml:"openai_compat"`
	Temperature  float64            `yaml:"temperature"`
	MaxTokens    int                `yaml:"max_tokens"`
	Timeout      time.Duration      `yaml:"timeout"`
}

// OllamaConfig defines Ollama-specific settings.
type OllamaConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// AnthropicConfig defines Anthropic API settings. The key defaults to
// ANTHROPIC_API_KEY when empty.
type AnthropicConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key"`
}

// OpenAICompatConfig defines OpenAI-compatible endpoint settings.
type OpenAICompatConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// ImagesConfig defines where listing images are uploaded. Uploads are
// disabled when Bucket is empty.
type ImagesConfig struct {
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	Prefix        string `yaml:"prefix"`
	Endpoint      string `yaml:"endpoint"`
	PublicBaseURL string `yaml:"public_base_url"`
	MaxFileSize   int64  `yaml:"max_file_size"`
}

// Enabled reports whether an upload bucket is configured.
func (i *ImagesConfig) Enabled() bool {
	return i.Bucket != ""
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse expands environment variables in data, decodes it and applies
// defaults and validation.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyMarketplaceDefaults(&cfg.Marketplace)
	applyLLMDefaults(&cfg.LLM)
	applyImagesDefaults(&cfg.Images)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyMarketplaceDefaults(m *MarketplaceConfig) {
	if m.Timeout == 0 {
		m.Timeout = 15 * time.Second
	}
	if m.RateLimit.PerSecond == 0 {
		m.RateLimit.PerSecond = 10.0
	}
	if m.RateLimit.Burst == 0 {
		m.RateLimit.Burst = 20
	}
}

func applyLLMDefaults(l *LLMConfig) {
	if l.Backend == "" {
		l.Backend = BackendHeuristic
	}
	if l.Temperature == 0 {
		l.Temperature = 0.2
	}
	if l.MaxTokens == 0 {
		l.MaxTokens = 64
	}
	if l.Timeout == 0 {
		l.Timeout = 30 * time.Second
	}
	if l.Ollama.Model == "" {
		l.Ollama.Model = "mistral"
	}
}

func applyImagesDefaults(i *ImagesConfig) {
	if i.Region == "" {
		i.Region = "ap-southeast-1"
	}
	if i.Prefix == "" {
		i.Prefix = "listings/"
	}
	if i.MaxFileSize == 0 {
		i.MaxFileSize = 10 << 20
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Marketplace.BaseURL == "" {
		errs = append(errs, errors.New("marketplace.base_url is required"))
	} else if u, err := url.Parse(cfg.Marketplace.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("marketplace.base_url must be an absolute URL (got %q)", cfg.Marketplace.BaseURL))
	}
	if cfg.Marketplace.RateLimit.PerSecond < 0 {
		errs = append(errs, errors.New("marketplace.rate_limit.per_second must not be negative"))
	}

	switch cfg.LLM.Backend {
	case BackendOllama:
		if cfg.LLM.Ollama.Endpoint == "" {
			errs = append(
				errs,
				errors.New("llm.ollama.endpoint is required when backend is ollama"),
			)
		}
	case BackendAnthropic:
		// API key may come from env, model must be set.
		if cfg.LLM.Anthropic.Model == "" {
			errs = append(
				errs,
				errors.New("llm.anthropic.model is required when backend is anthropic"),
			)
		}
	case BackendOpenAICompat:
		if cfg.LLM.OpenAICompat.Endpoint == "" {
			errs = append(
				errs,
				errors.New("llm.openai_compat.endpoint is required when backend is openai_compat"),
			)
		}
	case BackendHeuristic:
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"llm.backend must be one of: ollama, anthropic, openai_compat, heuristic (got %q)",
				cfg.LLM.Backend,
			),
		)
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm.temperature must be between 0 and 2 (got %v)", cfg.LLM.Temperature))
	}

	if cfg.Images.Enabled() && cfg.Images.PublicBaseURL != "" {
		if u, err := url.Parse(cfg.Images.PublicBaseURL); err != nil || u.Scheme == "" {
			errs = append(errs, fmt.Errorf("images.public_base_url must be an absolute URL (got %q)", cfg.Images.PublicBaseURL))
		}
	}

	if !slices.Contains([]string{"text", "json"}, cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be text or json (got %q)", cfg.Logging.Format))
	}

	return errors.Join(errs...)
}

// Backends lists the accepted llm.backend values.
func Backends() []string {
	return slices.Clone(backends)
}
