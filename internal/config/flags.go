package config

import (
	"flag"
	"os"
	"time"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string    base URL of the backend REST API
//	-l string    listen address of the test-runner service
//	-d string    SQLite DSN of the run-history store
//	-t int       backend request timeout in seconds
//
// The function filters os.Args to the flags it owns (flagx.FilterArgs) so it
// does not interfere with flags parsed by other stages or by the test binary.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "listen address")
	fs.StringVar(&cfg.HistoryDSN, "d", cfg.HistoryDSN, "run-history SQLite DSN")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
