// Package runner executes the test harness out of process with a wall-clock
// timeout and a cap on captured output. A run that times out or fails to
// start is a failed run, never a crash of the calling service.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

const (
	DefaultTimeout     = 2 * time.Minute
	DefaultOutputLimit = 5 << 20
)

// passedLine matches harness summary lines such as "12 passed (tenants)".
var passedLine = regexp.MustCompile(`\d+ passed`)

// Report is the outcome of one bounded run.
type Report struct {
	Suite    string        `json:"suite"`
	Passed   bool          `json:"passed"`
	Summary  string        `json:"summary"`
	Output   string        `json:"output"`
	Duration time.Duration `json:"-"`
}

// Runner launches an external command per run, appending the suite name to
// the configured argv.
type Runner struct {
	command     []string
	timeout     time.Duration
	outputLimit int64
	log         logging.Logger
}

// New builds a Runner around the given argv. Zero timeout and output limit
// fall back to the defaults.
func New(command []string, timeout time.Duration, outputLimit int64, log logging.Logger) (*Runner, error) {
	if len(command) == 0 {
		return nil, errors.New("runner: empty command")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if outputLimit <= 0 {
		outputLimit = DefaultOutputLimit
	}
	return &Runner{command: command, timeout: timeout, outputLimit: outputLimit, log: log}, nil
}

// Run executes one suite and always returns a usable Report; process-level
// failures (non-zero exit, timeout, unstartable binary) are reported as a
// failed run. The returned error is reserved for programming mistakes and is
// currently always nil.
func (r *Runner) Run(ctx context.Context, suite string) (Report, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	argv := append(append([]string(nil), r.command...), suite)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	buf := newCappedBuffer(r.outputLimit)
	cmd.Stdout = buf
	cmd.Stderr = buf

	start := time.Now()
	r.log.Info(ctx, "run started", "suite", suite, "command", strings.Join(argv, " "))
	err := cmd.Run()
	duration := time.Since(start)

	report := Report{
		Suite:    suite,
		Passed:   err == nil,
		Output:   buf.String(),
		Duration: duration,
	}
	if ctx.Err() == context.DeadlineExceeded {
		report.Passed = false
		report.Output += fmt.Sprintf("\nrun timed out after %s\n", r.timeout)
	} else if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The process never started (missing binary, permission).
			report.Output += fmt.Sprintf("\nfailed to start: %v\n", err)
		}
	}
	report.Summary = Summarize(report.Output, report.Passed)

	r.log.Info(ctx, "run finished",
		"suite", suite, "passed", report.Passed, "duration", duration, "summary", report.Summary)
	return report, nil
}

// Summarize derives a one-line summary from captured output: the last line
// containing an "N passed" count, else a generic verdict.
func Summarize(output string, passed bool) string {
	lines := strings.Split(output, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if passedLine.MatchString(line) {
			return line
		}
	}
	if passed {
		return "All passed"
	}
	return "Failed"
}

// cappedBuffer accepts writes up to a byte limit and silently discards the
// rest, recording that truncation happened.
type cappedBuffer struct {
	mu        sync.Mutex
	limit     int64
	written   int64
	truncated bool
	b         strings.Builder
}

func newCappedBuffer(limit int64) *cappedBuffer {
	return &cappedBuffer{limit: limit}
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	remaining := c.limit - c.written
	if remaining <= 0 {
		c.truncated = true
		return len(p), nil
	}
	take := int64(len(p))
	if take > remaining {
		take = remaining
		c.truncated = true
	}
	c.b.Write(p[:take])
	c.written += take
	return len(p), nil
}

func (c *cappedBuffer) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.truncated {
		return c.b.String() + "\n[output truncated]\n"
	}
	return c.b.String()
}
