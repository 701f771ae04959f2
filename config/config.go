package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"maya-nlp/internal/nlp"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Extraction backends
	NLP      NLPConfig
	Duckling DucklingConfig
	GoogleNL GoogleNLConfig
	Prose    ProseConfig
	Cache    CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// Rotating file output, disabled when FilePath is empty.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NLPConfig selects the extraction backend and its fallbacks.
type NLPConfig struct {
	Implementation  string
	Fallback        []string
	FallbackEnabled bool
}

type DucklingConfig struct {
	BaseURL       string
	ParseEndpoint string
	Locale        string
	Timeout       time.Duration
}

type GoogleNLConfig struct {
	// Empty CredentialsPath uses Application Default Credentials.
	CredentialsPath string
	Timeout         time.Duration
}

type ProseConfig struct {
	Enabled bool
	Timeout time.Duration
}

// CacheConfig sizes the span cache in front of remote backends. Size 0 disables it.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/maya-nlp/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/maya-nlp/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// NLP
	cfg.NLP.Implementation = strings.ToLower(strings.TrimSpace(viper.GetString("nlp.implementation")))
	cfg.NLP.Fallback = splitList(viper.Get("nlp.fallback"))
	cfg.NLP.FallbackEnabled = viper.GetBool("nlp.fallback_enabled")

	cfg.Duckling.BaseURL = viper.GetString("duckling.base_url")
	cfg.Duckling.ParseEndpoint = viper.GetString("duckling.parse_endpoint")
	cfg.Duckling.Locale = viper.GetString("duckling.locale")
	cfg.Duckling.Timeout = viper.GetDuration("duckling.timeout")
	if ducklingURL := viper.GetString("duckling_url"); ducklingURL != "" {
		cfg.Duckling.BaseURL = ducklingURL
	}

	cfg.GoogleNL.CredentialsPath = viper.GetString("google_nl.credentials_path")
	cfg.GoogleNL.Timeout = viper.GetDuration("google_nl.timeout")
	if googleCreds := viper.GetString("google_application_credentials"); googleCreds != "" && cfg.GoogleNL.CredentialsPath == "" {
		cfg.GoogleNL.CredentialsPath = googleCreds
	}

	cfg.Prose.Enabled = viper.GetBool("prose.enabled")
	cfg.Prose.Timeout = viper.GetDuration("prose.timeout")

	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects unknown backends and nonsensical limits.
func (c *Config) Validate() error {
	if !nlp.IsKnownBackend(c.NLP.Implementation) {
		return fmt.Errorf("nlp.implementation %q: %w", c.NLP.Implementation, nlp.ErrUnknownBackend)
	}
	for _, name := range c.NLP.Fallback {
		if !nlp.IsKnownBackend(name) {
			return fmt.Errorf("nlp.fallback %q: %w", name, nlp.ErrUnknownBackend)
		}
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if c.RateLimit.PerMin < 0 {
		return fmt.Errorf("rate_limit.per_min must not be negative")
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative")
	}
	return nil
}

// Backends returns the implementation followed by its fallbacks, without duplicates.
func (c *Config) Backends() []string {
	names := []string{c.NLP.Implementation}
	seen := map[string]bool{c.NLP.Implementation: true}
	for _, name := range c.NLP.Fallback {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.max_size_mb", 100)
	viper.SetDefault("logger.max_backups", 3)
	viper.SetDefault("logger.max_age_days", 28)
	viper.SetDefault("rate_limit.per_min", 120)

	// NLP defaults
	viper.SetDefault("nlp.implementation", nlp.BackendPattern)
	viper.SetDefault("nlp.fallback", []string{})
	viper.SetDefault("nlp.fallback_enabled", true)
	viper.SetDefault("duckling.base_url", "http://localhost:8000")
	viper.SetDefault("duckling.parse_endpoint", "/parse")
	viper.SetDefault("duckling.locale", "en_US")
	viper.SetDefault("duckling.timeout", "5s")
	viper.SetDefault("google_nl.timeout", "10s")
	viper.SetDefault("prose.enabled", true)
	viper.SetDefault("prose.timeout", "2s")
	viper.SetDefault("cache.size", 1000)
	viper.SetDefault("cache.ttl", "10m")
}

// splitList accepts a YAML list or a comma separated string (from env).
func splitList(raw any) []string {
	var items []string
	switch v := raw.(type) {
	case string:
		items = strings.Split(v, ",")
	case []string:
		items = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			out = append(out, item)
		}
	}
	return out
}
