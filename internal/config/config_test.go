package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRateLimit(t *testing.T) {
	testCases := []struct {
		in         string
		rps, burst int
	}{
		{"10", 10, 10},
		{"10rps", 10, 10},
		{"5:20", 5, 20},
		{" 7 RPS : 9 ", 7, 9},
		{"fast", 0, 0},
		{"", 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			rps, burst := parseRateLimit(tc.in)
			assert.Equal(t, tc.rps, rps)
			assert.Equal(t, tc.burst, burst)
		})
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"PORT", "BASE_URL", "MAX_BATCH", "RATE_LIMIT", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 10, cfg.MaxBatch)
	assert.Equal(t, 10, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("BASE_URL", "https://boxes.example/ ")
	t.Setenv("MAX_BATCH", "25")
	t.Setenv("RATE_LIMIT", "20:5")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "https://boxes.example", cfg.BaseURL)
	assert.Equal(t, 25, cfg.MaxBatch)
	assert.Equal(t, 20, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst) // burst never below rps
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}
