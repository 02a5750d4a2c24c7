// Command admincli starts the interactive console for the vehicle-tracking
// backend.
package main

import (
	"context"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/cli"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/config"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)
}
