package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	calls []string
}

func (s *stubExec) record(name string) { s.calls = append(s.calls, name) }

func (s *stubExec) status() string { return "hub:up" }

func (s *stubExec) Tenants(ctx context.Context)                        { s.record("tenants") }
func (s *stubExec) AddTenant(ctx context.Context)                      { s.record("addtenant") }
func (s *stubExec) DeleteTenant(ctx context.Context, args []string)    { s.record("deltenant") }
func (s *stubExec) Vehicles(ctx context.Context, args []string)        { s.record("vehicles") }
func (s *stubExec) AddVehicle(ctx context.Context, args []string)      { s.record("addvehicle") }
func (s *stubExec) DeleteVehicle(ctx context.Context, args []string)   { s.record("delvehicle") }
func (s *stubExec) Notifications(ctx context.Context)                  { s.record("notifications") }
func (s *stubExec) MarkRead(ctx context.Context, args []string)        { s.record("read") }
func (s *stubExec) FuelLevel(ctx context.Context, args []string)       { s.record("fuel") }
func (s *stubExec) LastPosition(ctx context.Context, args []string)    { s.record("lastpos") }
func (s *stubExec) RunSuites(ctx context.Context, args []string)       { s.record("run") }
func (s *stubExec) Toasts()                                            { s.record("toasts") }
func (s *stubExec) Detail(args []string)                               { s.record("detail") }
func (s *stubExec) CloseDetail()                                       { s.record("close") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runInput(t *testing.T, a execIface, input string) {
	t.Helper()
	runREPL(context.Background(), a, bufio.NewScanner(strings.NewReader(input)))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}
	runInput(t, stub, "tenants\nvehicles 1\nfuel 2\nrun tenants\ntoasts\nexit\n")

	assert.Equal(t, []string{"tenants", "vehicles", "fuel", "run", "toasts"}, stub.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	out := captureOutput(t)
	runInput(t, &stubExec{}, "frobnicate\nquit\n")

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Unknown command: frobnicate")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_EmptyLinesSkipped(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}
	runInput(t, stub, "\n\n   \ntenants\n")

	assert.Equal(t, []string{"tenants"}, stub.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	captureOutput(t)
	stub := &stubExec{}
	runInput(t, stub, "notifications")

	assert.Equal(t, []string{"notifications"}, stub.calls)
}

func TestRunREPL_HelpShowsCommands(t *testing.T) {
	out := captureOutput(t)
	runInput(t, &stubExec{}, "help\nexit\n")

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "tenants")
	assert.Contains(t, joined, "run <suite>|all")
	assert.Contains(t, joined, "detail <toastId>")
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	out := captureOutput(t)
	runInput(t, &stubExec{}, "exit\n")

	assert.Contains(t, (*out)[0], "hub:up")
}
