package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all Arogya configuration.
type Config struct {
	Listen          string          `yaml:"listen"`
	DBPath          string          `yaml:"db_path"`
	LogInteractions bool            `yaml:"log_interactions"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	Cache           CacheConfig     `yaml:"cache"`
	Security        SecurityConfig  `yaml:"security"`
	Languages       LanguageConfig  `yaml:"languages"`
}

// RateLimitConfig controls the sliding-window limiter and the ban store.
// A zero BanTTL means bans persist until an explicit administrative clear.
type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
	BanTTL   time.Duration `yaml:"ban_ttl"`
}

// CacheConfig controls the response cache and the normalizer memo.
type CacheConfig struct {
	Capacity       int `yaml:"capacity"`
	NormalizerSize int `yaml:"normalizer_size"`
}

// SecurityConfig controls message validation and the security event log.
type SecurityConfig struct {
	MaxMessageLength  int           `yaml:"max_message_length"`
	MaxSenderIDLength int           `yaml:"max_sender_id_length"`
	EventLogSize      int           `yaml:"event_log_size"`
	SlowRequest       time.Duration `yaml:"slow_request"`
}

// LanguageConfig lists the supported language codes and the default.
type LanguageConfig struct {
	Supported []string `yaml:"supported"`
	Default   string   `yaml:"default"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Listen:          ":8080",
		DBPath:          "arogya.db",
		LogInteractions: true,
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   time.Minute,
			BanTTL:   0,
		},
		Cache: CacheConfig{
			Capacity:       1000,
			NormalizerSize: 1000,
		},
		Security: SecurityConfig{
			MaxMessageLength:  1000,
			MaxSenderIDLength: 100,
			EventLogSize:      1000,
			SlowRequest:       5 * time.Second,
		},
		Languages: LanguageConfig{
			Supported: []string{"en", "hi", "or"},
			Default:   "en",
		},
	}
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit: requests and window must be positive")
	}
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache: capacity must be positive")
	}
	if len(c.Languages.Supported) == 0 {
		return fmt.Errorf("languages: at least one supported language required")
	}
	if !c.SupportedLanguage(c.Languages.Default) {
		return fmt.Errorf("languages: default %q is not in supported set", c.Languages.Default)
	}
	return nil
}

// SupportedLanguage reports whether code is in the supported set.
func (c *Config) SupportedLanguage(code string) bool {
	for _, l := range c.Languages.Supported {
		if l == code {
			return true
		}
	}
	return false
}
