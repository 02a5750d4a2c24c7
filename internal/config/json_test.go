package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_OverlaysValues(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := writeTempConfig(t, `{
		"base_url": "http://json:5000",
		"request_timeout": "12s",
		"runner_timeout": "3m",
		"listen_addr": ":9090",
		"log_level": "warn"
	}`)
	os.Args = []string{"app", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, "http://json:5000", cfg.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3*time.Minute, cfg.RunnerTimeout)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Untouched fields keep their defaults.
	assert.Equal(t, "runs.db", cfg.HistoryDSN)
}

func TestParseJSON_NoFileFlag_LeavesDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"app"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestParseJSON_BrokenFile_Panics(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	path := writeTempConfig(t, `{not json`)
	os.Args = []string{"app", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJSON(cfg) })
}
