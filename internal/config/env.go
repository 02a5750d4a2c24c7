package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the process environment. A .env file
// in the working directory is loaded first when present; real environment
// variables win over .env entries (godotenv does not override existing vars).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("HUB_URL"); v != "" {
		cfg.HubURL = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("RUNNER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RunnerTimeout = d
		}
	}
	if v := os.Getenv("RUNNER_OUTPUT_LIMIT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.RunnerOutputLimit = n
		}
	}
	if v := os.Getenv("HISTORY_DSN"); v != "" {
		cfg.HistoryDSN = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
