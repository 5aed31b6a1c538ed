package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook/internal/config"
	"github.com/KirkDiggler/spellbook/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.LoadFrom(map[string]string{})

	s.Require().NoError(err)
	s.Equal("https://www.dnd5eapi.co/api/2014/", cfg.APIBaseURL)
	s.Equal(30*time.Second, cfg.HTTPTimeout)
	s.Equal(24*time.Hour, cfg.CacheTTL)
	s.Equal("warn", cfg.LogLevel)
	s.False(cfg.UseRedis())
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg, err := config.LoadFrom(map[string]string{
		"SPELLBOOK_API_BASE_URL": "http://localhost:3000/api/2014/",
		"SPELLBOOK_HTTP_TIMEOUT": "5s",
		"SPELLBOOK_CACHE_TTL":    "10m",
		"SPELLBOOK_REDIS_ADDR":   "localhost:6379, ,localhost:6380",
		"SPELLBOOK_LOG_LEVEL":    " DEBUG ",
	})

	s.Require().NoError(err)
	s.Equal("http://localhost:3000/api/2014/", cfg.APIBaseURL)
	s.Equal(5*time.Second, cfg.HTTPTimeout)
	s.Equal(10*time.Minute, cfg.CacheTTL)
	s.Equal([]string{"localhost:6379", "localhost:6380"}, cfg.RedisAddrs)
	s.Equal("debug", cfg.LogLevel)
	s.True(cfg.UseRedis())

	ext := cfg.ExternalConfig()
	s.Equal(cfg.APIBaseURL, ext.BaseURL)
	s.Equal(cfg.HTTPTimeout, ext.HTTPTimeout)
	s.Equal(cfg.CacheTTL, ext.CacheTTL)
}

func (s *ConfigTestSuite) TestInvalid() {
	testCases := []struct {
		name    string
		environ map[string]string
		field   string
	}{
		{
			name:    "relative base url",
			environ: map[string]string{"SPELLBOOK_API_BASE_URL": "api/2014"},
			field:   "SPELLBOOK_API_BASE_URL",
		},
		{
			name:    "zero timeout",
			environ: map[string]string{"SPELLBOOK_HTTP_TIMEOUT": "0s"},
			field:   "SPELLBOOK_HTTP_TIMEOUT",
		},
		{
			name:    "negative ttl",
			environ: map[string]string{"SPELLBOOK_CACHE_TTL": "-1m"},
			field:   "SPELLBOOK_CACHE_TTL",
		},
		{
			name:    "unknown log level",
			environ: map[string]string{"SPELLBOOK_LOG_LEVEL": "loud"},
			field:   "SPELLBOOK_LOG_LEVEL",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.LoadFrom(tc.environ)

			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestUnparseableDuration() {
	_, err := config.LoadFrom(map[string]string{"SPELLBOOK_HTTP_TIMEOUT": "soon"})

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}
