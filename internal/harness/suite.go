package harness

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// Step is one named unit of work inside a suite.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Suite is a fixed sequence of dependent steps sharing mutable state (ids
// and payloads captured in the step closures), an order-independent group of
// self-contained error-case steps, and a teardown that runs unconditionally.
type Suite struct {
	Name       string
	Steps      []Step
	ErrorCases []Step
	Teardown   func(ctx context.Context)
}

// StepResult records one step's outcome. Skipped steps carry no error.
type StepResult struct {
	Name     string
	Err      error
	Skipped  bool
	Duration time.Duration
}

// Result is the outcome of one suite run.
type Result struct {
	Suite    string
	Steps    []StepResult
	Passed   bool
	Started  time.Time
	Finished time.Time
}

// Summary renders a one-line outcome in the "N passed" form the run
// endpoint's summary scraping expects.
func (r Result) Summary() string {
	var passed, failed, skipped int
	for _, s := range r.Steps {
		switch {
		case s.Skipped:
			skipped++
		case s.Err != nil:
			failed++
		default:
			passed++
		}
	}
	parts := []string{fmt.Sprintf("%d passed", passed)}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skipped))
	}
	return fmt.Sprintf("%s (%s)", strings.Join(parts, ", "), r.Suite)
}

// Output renders per-step lines plus the summary.
func (r Result) Output() string {
	var b strings.Builder
	for _, s := range r.Steps {
		switch {
		case s.Skipped:
			fmt.Fprintf(&b, "  skip %s\n", s.Name)
		case s.Err != nil:
			fmt.Fprintf(&b, "  FAIL %s: %v\n", s.Name, s.Err)
		default:
			fmt.Fprintf(&b, "  ok   %s (%s)\n", s.Name, s.Duration.Round(time.Millisecond))
		}
	}
	b.WriteString(r.Summary() + "\n")
	return b.String()
}

// Runner executes suites. Suites run strictly one at a time: fixtures are
// suite-scoped, so concurrent suites could corrupt each other's teardown.
type Runner struct {
	log logging.Logger
}

func NewRunner(log logging.Logger) *Runner {
	return &Runner{log: log}
}

// RunSuite executes one suite. Serial steps run in declaration order; after
// the first failure the remaining serial steps are skipped. Error-case steps
// are independent and all run regardless. Teardown runs last, always, even
// when earlier steps failed or panicked.
func (r *Runner) RunSuite(ctx context.Context, s Suite) Result {
	res := Result{Suite: s.Name, Started: time.Now()}
	r.log.Info(ctx, "suite started", "suite", s.Name)

	if s.Teardown != nil {
		defer s.Teardown(ctx)
	}

	failed := false
	for _, step := range s.Steps {
		if failed {
			res.Steps = append(res.Steps, StepResult{Name: step.Name, Skipped: true})
			continue
		}
		sr := r.runStep(ctx, step)
		if sr.Err != nil {
			failed = true
		}
		res.Steps = append(res.Steps, sr)
	}

	for _, step := range s.ErrorCases {
		res.Steps = append(res.Steps, r.runStep(ctx, step))
	}

	res.Passed = true
	for _, sr := range res.Steps {
		if sr.Err != nil || sr.Skipped {
			res.Passed = false
			break
		}
	}
	res.Finished = time.Now()
	r.log.Info(ctx, "suite finished", "suite", s.Name, "passed", res.Passed)
	return res
}

func (r *Runner) runStep(ctx context.Context, step Step) (sr StepResult) {
	sr.Name = step.Name
	start := time.Now()
	defer func() {
		sr.Duration = time.Since(start)
		if p := recover(); p != nil {
			sr.Err = fmt.Errorf("step panicked: %v", p)
		}
		if sr.Err != nil {
			r.log.Warn(ctx, "step failed", "step", step.Name, "error", sr.Err)
		}
	}()
	sr.Err = step.Run(ctx)
	return sr
}

// RunAll executes the given suites sequentially and returns their results.
func (r *Runner) RunAll(ctx context.Context, suites []Suite) []Result {
	results := make([]Result, 0, len(suites))
	for _, s := range suites {
		results = append(results, r.RunSuite(ctx, s))
	}
	return results
}
