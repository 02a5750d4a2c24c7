package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	status() string

	Tenants(ctx context.Context)
	AddTenant(ctx context.Context)
	DeleteTenant(ctx context.Context, args []string)

	Vehicles(ctx context.Context, args []string)
	AddVehicle(ctx context.Context, args []string)
	DeleteVehicle(ctx context.Context, args []string)

	Notifications(ctx context.Context)
	MarkRead(ctx context.Context, args []string)
	FuelLevel(ctx context.Context, args []string)
	LastPosition(ctx context.Context, args []string)

	RunSuites(ctx context.Context, args []string)

	Toasts()
	Detail(args []string)
	CloseDetail()
}

const helpText = `Available commands:
  tenants                     list tenants
  addtenant                   create a tenant with generated data
  deltenant <id>              delete a tenant
  vehicles [tenantId]         list vehicles, optionally scoped to a tenant
  addvehicle <tenantId>       create a vehicle with generated data
  delvehicle <id>             delete a vehicle
  notifications | n           list notifications, newest first
  read <id>                   mark a notification as read
  fuel <vehicleId>            show current fuel level
  lastpos <vehicleId>         show last known position
  run <suite>|all             run a harness suite against the backend
  suites                      list runnable suite names
  toasts                      list active toasts
  detail <toastId>            open toast error details
  close                       close the open detail view
  exit | quit                 leave the console`

// runREPL reads a line, parses the first token as the command, and dispatches
// to methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on scanner EOF or when the user types "exit" or "quit". Handlers
// surface their own failures through the toast pipeline, so the loop never
// inspects command errors.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vt %s> ", a.status()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "tenants":
			a.Tenants(ctx)

		case "addtenant":
			a.AddTenant(ctx)

		case "deltenant":
			a.DeleteTenant(ctx, args)

		case "vehicles":
			a.Vehicles(ctx, args)

		case "addvehicle":
			a.AddVehicle(ctx, args)

		case "delvehicle":
			a.DeleteVehicle(ctx, args)

		case "n", "notifications":
			a.Notifications(ctx)

		case "read":
			a.MarkRead(ctx, args)

		case "fuel":
			a.FuelLevel(ctx, args)

		case "lastpos":
			a.LastPosition(ctx, args)

		case "run":
			a.RunSuites(ctx, args)

		case "suites":
			a.RunSuites(ctx, nil)

		case "toasts":
			a.Toasts()

		case "detail":
			a.Detail(args)

		case "close":
			a.CloseDetail()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
