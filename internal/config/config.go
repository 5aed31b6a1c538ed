// Package config loads runtime settings from SPELLBOOK_* environment variables
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/spellbook/internal/clients/external"
	"github.com/KirkDiggler/spellbook/internal/errors"
)

// Log levels accepted by SPELLBOOK_LOG_LEVEL
var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Config holds the spellbook settings
type Config struct {
	APIBaseURL    string        `env:"SPELLBOOK_API_BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	HTTPTimeout   time.Duration `env:"SPELLBOOK_HTTP_TIMEOUT" envDefault:"30s"`
	CacheTTL      time.Duration `env:"SPELLBOOK_CACHE_TTL" envDefault:"24h"`
	RedisAddrs    []string      `env:"SPELLBOOK_REDIS_ADDR" envSeparator:","`
	RedisPassword string        `env:"SPELLBOOK_REDIS_PASSWORD"`
	RedisDB       int           `env:"SPELLBOOK_REDIS_DB"`
	LogLevel      string        `env:"SPELLBOOK_LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the process environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom is Load over an explicit environment instead of the process one
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values and normalises the log level and Redis addresses
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.APIBaseURL == "" {
		c.APIBaseURL = external.DefaultBaseURL
	}
	errors.ValidateAbsoluteURL("SPELLBOOK_API_BASE_URL", c.APIBaseURL, vb)

	if c.HTTPTimeout <= 0 {
		vb.InvalidField("SPELLBOOK_HTTP_TIMEOUT", "must be positive")
	}
	if c.CacheTTL <= 0 {
		vb.InvalidField("SPELLBOOK_CACHE_TTL", "must be positive")
	}
	if c.RedisDB < 0 {
		vb.InvalidField("SPELLBOOK_REDIS_DB", "must not be negative")
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if !logLevels[c.LogLevel] {
		vb.Fieldf("SPELLBOOK_LOG_LEVEL", "unknown level %q", c.LogLevel)
	}

	addrs := c.RedisAddrs[:0]
	for _, addr := range c.RedisAddrs {
		if addr = strings.TrimSpace(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	c.RedisAddrs = addrs

	return vb.Build()
}

// UseRedis reports whether a Redis cache is configured
func (c *Config) UseRedis() bool {
	return len(c.RedisAddrs) > 0
}

// ExternalConfig builds the spell API client config
func (c *Config) ExternalConfig() *external.Config {
	return &external.Config{
		BaseURL:     c.APIBaseURL,
		HTTPTimeout: c.HTTPTimeout,
		CacheTTL:    c.CacheTTL,
	}
}
