package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	APIPrefix   string `json:"api_prefix"`
	LogLevel    string `json:"log_level"`

	// CORS
	CORSOrigins []string `json:"cors_origins"`

	// Rate limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// Backend collaborator
	BackendURL            string `json:"backend_url"`
	BackendTimeoutSeconds int    `json:"backend_timeout_seconds"`

	// Uploads
	MaxUploadBytes int64 `json:"max_upload_bytes"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:                  DefaultHost,
		Port:                  DefaultPort,
		Environment:           DefaultEnvironment,
		APIPrefix:             DefaultAPIPrefix,
		LogLevel:              DefaultLogLevel,
		CORSOrigins:           DefaultCORSOrigins,
		RateLimitPerMinute:    DefaultRateLimitPerMinute,
		BackendURL:            DefaultBackendURL,
		BackendTimeoutSeconds: DefaultBackendTimeoutSeconds,
		MaxUploadBytes:        DefaultMaxUploadBytes,
	}

	// Load from JSON config file if specified
	if path := getEnv("TABLETALK_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("TABLETALK_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("TABLETALK_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("TABLETALK_ENV", ""); v != "" {
		cfg.Environment = v
	}
	if v := getEnv("TABLETALK_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("TABLETALK_CORS_ORIGINS", ""); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
	if v := getEnv("TABLETALK_BACKEND_URL", ""); v != "" {
		cfg.BackendURL = v
	}
	if v := getEnv("TABLETALK_BACKEND_TIMEOUT", ""); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			cfg.BackendTimeoutSeconds = t
		}
	}
	if v := getEnv("TABLETALK_MAX_UPLOAD_BYTES", ""); v != "" {
		if b, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxUploadBytes = b
		}
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = r
		}
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
