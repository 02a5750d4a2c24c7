// Command testserver exposes the harness over HTTP: GET /api/tests/run runs
// a suite through the bounded runner and records the outcome in the
// run-history database.
//
// Suite runs are delegated to the apitest binary, which must be on PATH.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/config"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/harness"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/history"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/runner"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/web"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	store, err := history.Open(ctx, cfg.HistoryDSN)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer store.Close()

	command := []string{"apitest", "-a", cfg.BaseURL, "-s"}
	r, err := runner.New(command, cfg.RunnerTimeout, cfg.RunnerOutputLimit, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	handler := web.New(r, store, harness.SuiteNames(), logger)
	logger.Info(ctx, "test server listening", "addr", cfg.ListenAddr, "backend", cfg.BaseURL)
	if err := http.ListenAndServe(cfg.ListenAddr, handler.Router()); err != nil {
		log.Printf("%v", err)
	}
}
