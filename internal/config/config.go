// Package config provides configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration with sensible defaults for local dev.
type Config struct {
	Port           int      // HTTP port (default 8080)
	BaseURL        string   // e.g., http://localhost:8080 (no trailing slash)
	MaxBatch       int      // numbers per generate request (default 10)
	RateLimitRPS   int      // requests per second for POST /api/generate (default 10)
	RateLimitBurst int      // burst tokens (default = RateLimitRPS)
	CORSOrigins    []string // allowed origins; "*" allows any
	LogLevel       string   // zerolog level name (default info)
	LogFormat      string   // "json" or "console"
}

// FromEnv loads configuration from an optional config.yaml, a local ".env"
// file and environment variables, in increasing order of precedence.
// Recognized: PORT, BASE_URL, MAX_BATCH, RATE_LIMIT, CORS_ORIGINS,
// LOG_LEVEL, LOG_FORMAT.
func FromEnv() (Config, error) {
	// Missing .env is fine; real environment variables are never overridden.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := Config{
		Port:           v.GetInt("port"),
		BaseURL:        sanitizeBaseURL(v.GetString("base_url")),
		MaxBatch:       v.GetInt("max_batch"),
		RateLimitRPS:   10,
		RateLimitBurst: 10,
		CORSOrigins:    splitList(v.GetString("cors_origins")),
		LogLevel:       strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		LogFormat:      strings.ToLower(strings.TrimSpace(v.GetString("log_format"))),
	}

	if rl := strings.TrimSpace(v.GetString("rate_limit")); rl != "" {
		rps, burst := parseRateLimit(rl)
		if rps > 0 {
			cfg.RateLimitRPS = rps
		}
		if burst > 0 {
			cfg.RateLimitBurst = burst
		} else {
			cfg.RateLimitBurst = cfg.RateLimitRPS
		}
	}

	if cfg.RateLimitBurst < cfg.RateLimitRPS {
		cfg.RateLimitBurst = cfg.RateLimitRPS
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = 10
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("max_batch", 10)
	v.SetDefault("rate_limit", "")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

func sanitizeBaseURL(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	if s == "" {
		return "http://localhost:8080"
	}
	return s
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var rateRe = regexp.MustCompile(`^\s*(\d+)\s*(?:rps)?\s*(?::\s*(\d+)\s*)?$`)

// parseRateLimit accepts "10", "10rps", or "10:20" (rps:burst).
func parseRateLimit(s string) (rps, burst int) {
	s = strings.ToLower(strings.TrimSpace(s))
	m := rateRe.FindStringSubmatch(s)
	if len(m) == 0 {
		return 0, 0
	}
	rps, _ = strconv.Atoi(m[1])
	if len(m) >= 3 && m[2] != "" {
		burst, _ = strconv.Atoi(m[2])
	} else {
		burst = rps
	}
	return rps, burst
}
