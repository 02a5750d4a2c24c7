package harness

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

func passStep(name string) Step {
	return Step{Name: name, Run: func(ctx context.Context) error { return nil }}
}

func failStep(name string) Step {
	return Step{Name: name, Run: func(ctx context.Context) error { return errors.New("boom") }}
}

func TestRunSuite_AllPass(t *testing.T) {
	r := NewRunner(logging.NewDefault("error"))
	res := r.RunSuite(context.Background(), Suite{
		Name:       "demo",
		Steps:      []Step{passStep("a"), passStep("b")},
		ErrorCases: []Step{passStep("c")},
	})

	assert.True(t, res.Passed)
	require.Len(t, res.Steps, 3)
	for _, sr := range res.Steps {
		assert.NoError(t, sr.Err)
		assert.False(t, sr.Skipped)
	}
	assert.Equal(t, "3 passed (demo)", res.Summary())
}

func TestRunSuite_FailureSkipsRemainingSerialSteps(t *testing.T) {
	var ranC, ranErrCase, ranTeardown bool
	r := NewRunner(logging.NewDefault("error"))
	res := r.RunSuite(context.Background(), Suite{
		Name: "demo",
		Steps: []Step{
			passStep("a"),
			failStep("b"),
			{Name: "c", Run: func(ctx context.Context) error { ranC = true; return nil }},
		},
		ErrorCases: []Step{
			{Name: "err-case", Run: func(ctx context.Context) error { ranErrCase = true; return nil }},
		},
		Teardown: func(ctx context.Context) { ranTeardown = true },
	})

	assert.False(t, res.Passed)
	assert.False(t, ranC, "serial step after a failure must not run")
	assert.True(t, ranErrCase, "error cases run even after a serial failure")
	assert.True(t, ranTeardown, "teardown runs unconditionally")

	require.Len(t, res.Steps, 4)
	assert.NoError(t, res.Steps[0].Err)
	assert.Error(t, res.Steps[1].Err)
	assert.True(t, res.Steps[2].Skipped)
	assert.NoError(t, res.Steps[3].Err)
	assert.Equal(t, "2 passed, 1 failed, 1 skipped (demo)", res.Summary())
}

func TestRunSuite_PanicIsAStepFailure(t *testing.T) {
	var ranTeardown bool
	r := NewRunner(logging.NewDefault("error"))
	res := r.RunSuite(context.Background(), Suite{
		Name: "demo",
		Steps: []Step{
			{Name: "panics", Run: func(ctx context.Context) error { panic("nope") }},
		},
		Teardown: func(ctx context.Context) { ranTeardown = true },
	})

	assert.False(t, res.Passed)
	require.Len(t, res.Steps, 1)
	assert.ErrorContains(t, res.Steps[0].Err, "nope")
	assert.True(t, ranTeardown)
}

func TestRunSuite_ErrorCaseFailureFailsSuite(t *testing.T) {
	r := NewRunner(logging.NewDefault("error"))
	res := r.RunSuite(context.Background(), Suite{
		Name:       "demo",
		Steps:      []Step{passStep("a")},
		ErrorCases: []Step{failStep("bad"), passStep("good")},
	})

	assert.False(t, res.Passed)
	require.Len(t, res.Steps, 3)
	// Error cases are independent: the one after the failure still ran.
	assert.NoError(t, res.Steps[2].Err)
	assert.False(t, res.Steps[2].Skipped)
}

func TestRunAll_PreservesOrder(t *testing.T) {
	var order []string
	mk := func(name string) Suite {
		return Suite{Name: name, Steps: []Step{
			{Name: "record", Run: func(ctx context.Context) error {
				order = append(order, name)
				return nil
			}},
		}}
	}
	r := NewRunner(logging.NewDefault("error"))
	results := r.RunAll(context.Background(), []Suite{mk("first"), mk("second"), mk("third")})

	require.Len(t, results, 3)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestResult_Output(t *testing.T) {
	r := NewRunner(logging.NewDefault("error"))
	res := r.RunSuite(context.Background(), Suite{
		Name:  "demo",
		Steps: []Step{passStep("a"), failStep("b"), passStep("c")},
	})

	out := res.Output()
	assert.Contains(t, out, "ok   a")
	assert.Contains(t, out, "FAIL b: boom")
	assert.Contains(t, out, "skip c")
	assert.Contains(t, out, "1 passed, 1 failed, 1 skipped (demo)")
}
