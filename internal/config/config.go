package config

import "time"

// DefaultBaseURL points at the hosted backend instance, matching the
// dashboard's default. Override with API_BASE_URL or -a.
const DefaultBaseURL = "https://falcore-backend-production-4bc7.up.railway.app"

// Config holds runtime settings shared by all entry points.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the backend REST API, no trailing slash.
//   - HubURL: websocket endpoint of the notifications hub; derived from
//     BaseURL when left empty.
//   - RequestTimeout: per-request timeout for backend calls.
//   - RunnerTimeout: wall-clock limit for one out-of-process harness run.
//   - RunnerOutputLimit: cap, in bytes, on captured runner output.
//   - HistoryDSN: SQLite DSN for the run-history store.
//   - ListenAddr: bind address of the test-runner HTTP service.
//   - LogLevel: minimum log level ("debug", "info", "warn", "error").
type Config struct {
	BaseURL           string
	HubURL            string
	RequestTimeout    time.Duration
	RunnerTimeout     time.Duration
	RunnerOutputLimit int64
	HistoryDSN        string
	ListenAddr        string
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = DefaultBaseURL
	c.HubURL = ""
	c.RequestTimeout = 30 * time.Second
	c.RunnerTimeout = 2 * time.Minute
	c.RunnerOutputLimit = 5 * 1024 * 1024
	c.HistoryDSN = "runs.db"
	c.ListenAddr = ":8080"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
