// Command apitest runs harness suites against a backend instance and prints
// per-step results. It exits non-zero when any suite fails.
//
// Usage:
//
//	apitest [-a baseURL] [-t timeoutSeconds] [-s suite]
//
// With -s omitted (or "all") every registered suite runs in order.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/config"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/flagx"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/harness"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.LoadConfig()
	log := logging.NewDefault(cfg.LogLevel)

	suite := suiteFlag()
	client := api.New(cfg.BaseURL, cfg.RequestTimeout, log)
	runner := harness.NewRunner(log)
	ctx := context.Background()

	var suites []harness.Suite
	if suite == "" || suite == "all" {
		suites = harness.BuildAll(client, log)
	} else {
		s, ok := harness.Build(suite, client, log)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown suite %q; runnable suites: %s\n",
				suite, strings.Join(harness.SuiteNames(), ", "))
			return 2
		}
		suites = []harness.Suite{s}
	}

	failed := false
	for _, res := range runner.RunAll(ctx, suites) {
		fmt.Printf("=== %s\n%s\n", res.Suite, res.Output())
		if !res.Passed {
			failed = true
		}
	}
	if failed {
		return 1
	}
	return 0
}

// suiteFlag parses -s, ignoring the flags owned by the config stages. The
// last positional argument also names a suite so the binary composes with
// the bounded runner, which appends the suite name to its argv.
func suiteFlag() string {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-suite"})

	var suite string
	fs := flag.NewFlagSet("suite", flag.ContinueOnError)
	fs.StringVar(&suite, "s", "", "suite to run (default: all)")
	fs.StringVar(&suite, "suite", "", "suite to run (default: all)")
	_ = fs.Parse(args)

	if suite == "" {
		if last := os.Args[len(os.Args)-1]; len(os.Args) > 1 && !strings.HasPrefix(last, "-") {
			for _, name := range harness.SuiteNames() {
				if last == name || last == "all" {
					suite = last
					break
				}
			}
		}
	}
	return suite
}
