package config

import (
	"encoding/json"
	"os"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/flagx"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be given as strings like "30s" or as integer nanoseconds.
type jsonConfig struct {
	BaseURL           string         `json:"base_url"`
	HubURL            string         `json:"hub_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	RunnerTimeout     timex.Duration `json:"runner_timeout"`
	RunnerOutputLimit int64          `json:"runner_output_limit"`
	HistoryDSN        string         `json:"history_dsn"`
	ListenAddr        string         `json:"listen_addr"`
	LogLevel          string         `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file given via -c/-config.
// Absent file path means the stage is skipped. Read or unmarshal errors panic;
// a broken config file should stop the program before it talks to anything.
// Zero-valued fields in the file leave the current value untouched.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.HubURL != "" {
		cfg.HubURL = jc.HubURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RunnerTimeout.Duration != 0 {
		cfg.RunnerTimeout = jc.RunnerTimeout.Duration
	}
	if jc.RunnerOutputLimit != 0 {
		cfg.RunnerOutputLimit = jc.RunnerOutputLimit
	}
	if jc.HistoryDSN != "" {
		cfg.HistoryDSN = jc.HistoryDSN
	}
	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
