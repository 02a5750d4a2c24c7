package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/harness"
)

// fail routes a backend error through the toast pipeline and tells the user
// where to look.
func (a *App) fail(err error) {
	item := a.toasts.ShowError(err)
	printlnFn(fmt.Sprintf("error: %s (toast #%d, type 'detail %d' for more)", item.Message, item.ID, item.ID))
}

func parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		printlnFn("Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Usage:", usage)
		return 0, false
	}
	return id, true
}

func (a *App) Tenants(ctx context.Context) {
	tenants, err := a.client.ListTenants(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	for _, t := range tenants {
		printlnFn(fmt.Sprintf("#%d  %s  (%s)", t.ID, t.Name, t.Slug))
	}
	printlnFn(fmt.Sprintf("%d tenant(s)", len(tenants)))
}

func (a *App) AddTenant(ctx context.Context) {
	created, err := a.client.CreateTenant(ctx, harness.NewTenantPayload())
	if err != nil {
		a.fail(err)
		return
	}
	printlnFn(fmt.Sprintf("created tenant #%d %s", created.ID, created.Name))
}

func (a *App) DeleteTenant(ctx context.Context, args []string) {
	id, ok := parseID(args, "deltenant <id>")
	if !ok {
		return
	}
	if err := a.client.DeleteTenant(ctx, id); err != nil {
		a.fail(err)
		return
	}
	printlnFn(fmt.Sprintf("deleted tenant #%d", id))
}

func (a *App) Vehicles(ctx context.Context, args []string) {
	var (
		vehicles []api.Vehicle
		err      error
	)
	if len(args) > 0 {
		tenantID, ok := parseID(args, "vehicles [tenantId]")
		if !ok {
			return
		}
		vehicles, err = a.client.GetVehiclesByTenant(ctx, tenantID)
	} else {
		vehicles, err = a.client.ListVehicles(ctx)
	}
	if err != nil {
		a.fail(err)
		return
	}
	for _, v := range vehicles {
		printlnFn(fmt.Sprintf("#%d  %s  %s %s (%d)  tenant #%d", v.ID, v.PlateNumber, v.Make, v.Model, v.Year, v.TenantID))
	}
	printlnFn(fmt.Sprintf("%d vehicle(s)", len(vehicles)))
}

func (a *App) AddVehicle(ctx context.Context, args []string) {
	tenantID, ok := parseID(args, "addvehicle <tenantId>")
	if !ok {
		return
	}
	created, err := a.client.CreateVehicle(ctx, harness.NewVehiclePayload(tenantID))
	if err != nil {
		a.fail(err)
		return
	}
	printlnFn(fmt.Sprintf("created vehicle #%d %s", created.ID, created.PlateNumber))
}

func (a *App) DeleteVehicle(ctx context.Context, args []string) {
	id, ok := parseID(args, "delvehicle <id>")
	if !ok {
		return
	}
	if err := a.client.DeleteVehicle(ctx, id); err != nil {
		a.fail(err)
		return
	}
	printlnFn(fmt.Sprintf("deleted vehicle #%d", id))
}

// Notifications prints hub-delivered notifications first (newest on top),
// then the backend's stored list.
func (a *App) Notifications(ctx context.Context) {
	a.mu.Lock()
	live := make([]api.Notification, len(a.notifications))
	copy(live, a.notifications)
	a.mu.Unlock()

	for _, n := range live {
		printlnFn("live  " + formatNotification(n))
	}

	stored, err := a.client.ListNotifications(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	for _, n := range stored {
		printlnFn("      " + formatNotification(n))
	}
	printlnFn(fmt.Sprintf("%d live, %d stored notification(s)", len(live), len(stored)))
}

func formatNotification(n api.Notification) string {
	read := " "
	if n.IsRead {
		read = "r"
	}
	return fmt.Sprintf("#%d [%s] vehicle #%d: %s: %s", n.ID, read, n.VehicleID, n.Title, n.Message)
}

func (a *App) MarkRead(ctx context.Context, args []string) {
	id, ok := parseID(args, "read <id>")
	if !ok {
		return
	}
	if err := a.client.MarkNotificationAsRead(ctx, id); err != nil {
		a.fail(err)
		return
	}
	printlnFn(fmt.Sprintf("notification #%d marked as read", id))
}

func (a *App) FuelLevel(ctx context.Context, args []string) {
	vehicleID, ok := parseID(args, "fuel <vehicleId>")
	if !ok {
		return
	}
	level, err := a.client.GetFuelLevel(ctx, vehicleID)
	if err != nil {
		a.fail(err)
		return
	}
	printlnFn(fmt.Sprintf("vehicle #%d fuel level: %.1f l", vehicleID, level))
}

func (a *App) LastPosition(ctx context.Context, args []string) {
	vehicleID, ok := parseID(args, "lastpos <vehicleId>")
	if !ok {
		return
	}
	p, err := a.client.GetLastPosition(ctx, vehicleID)
	if err != nil {
		a.fail(err)
		return
	}
	printlnFn(fmt.Sprintf("vehicle #%d at %.5f, %.5f (%s)", vehicleID, p.Latitude, p.Longitude, p.TimestampUTC))
}

// RunSuites executes harness suites in process against the configured
// backend. With no arguments it lists the runnable suite names.
func (a *App) RunSuites(ctx context.Context, args []string) {
	if len(args) == 0 {
		printlnFn("Runnable suites:", strings.Join(harness.SuiteNames(), ", "))
		return
	}

	if args[0] == "all" {
		results := a.runner.RunAll(ctx, harness.BuildAll(a.client, a.log))
		for _, res := range results {
			printlnFn(res.Output())
		}
		return
	}

	suite, ok := harness.Build(args[0], a.client, a.log)
	if !ok {
		printlnFn(fmt.Sprintf("Unknown suite %q. Runnable suites: %s", args[0], strings.Join(harness.SuiteNames(), ", ")))
		return
	}
	printlnFn(a.runner.RunSuite(ctx, suite).Output())
}

func (a *App) Toasts() {
	active := a.toasts.Active()
	for _, item := range active {
		printlnFn(fmt.Sprintf("#%d  %s", item.ID, item.Message))
	}
	printlnFn(fmt.Sprintf("%d active toast(s)", len(active)))
}

func (a *App) Detail(args []string) {
	id, ok := parseID(args, "detail <toastId>")
	if !ok {
		return
	}
	for _, item := range a.toasts.Active() {
		if item.ID != id {
			continue
		}
		a.toasts.OpenDetail(item)
		printlnFn("message: " + item.Message)
		if d := item.Details; d != nil {
			printlnFn(fmt.Sprintf("request: %s %s", d.Method, d.URL))
			printlnFn(fmt.Sprintf("status:  %d %s", d.Status, d.StatusText))
			if d.RequestBody != "" {
				printlnFn("request body: " + d.RequestBody)
			}
			if d.ResponseBody != "" {
				printlnFn("response body: " + d.ResponseBody)
			}
			printlnFn("at: " + d.Timestamp.Format(time.RFC3339))
		}
		return
	}
	printlnFn(fmt.Sprintf("no active toast #%d", id))
}

func (a *App) CloseDetail() {
	a.toasts.CloseDetail()
	printlnFn("detail view closed")
}
