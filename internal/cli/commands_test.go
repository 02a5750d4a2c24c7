package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api/apitest"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/config"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/harness"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

func newTestApp(t *testing.T) (*App, *apitest.Server) {
	t.Helper()
	srv := apitest.New()
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		BaseURL:        srv.URL(),
		RequestTimeout: 5 * time.Second,
		LogLevel:       "error",
	}
	app := NewApp(cfg, logging.NewDefault("error"))
	t.Cleanup(app.close)
	return app, srv
}

func TestTenantsCommands_CreateListDelete(t *testing.T) {
	out := captureOutput(t)
	app, _ := newTestApp(t)
	ctx := context.Background()

	app.AddTenant(ctx)
	joined := strings.Join(*out, "\n")
	require.Contains(t, joined, "created tenant #")

	*out = nil
	app.Tenants(ctx)
	joined = strings.Join(*out, "\n")
	assert.Contains(t, joined, "1 tenant(s)")

	*out = nil
	app.DeleteTenant(ctx, []string{"1"})
	assert.Contains(t, strings.Join(*out, "\n"), "deleted tenant #1")
}

func TestFailureRoutesThroughToasts(t *testing.T) {
	out := captureOutput(t)
	app, _ := newTestApp(t)
	ctx := context.Background()

	app.DeleteTenant(ctx, []string{"999999"})

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "toast #")

	active := app.toasts.Active()
	require.Len(t, active, 1)
	require.NotNil(t, active[0].Details)
	assert.Equal(t, 404, active[0].Details.Status)
}

func TestDetailAndClose(t *testing.T) {
	out := captureOutput(t)
	app, _ := newTestApp(t)
	ctx := context.Background()

	app.DeleteTenant(ctx, []string{"999999"})
	active := app.toasts.Active()
	require.Len(t, active, 1)

	*out = nil
	app.Detail([]string{"1"})
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "status:  404")
	assert.Contains(t, joined, "request: DELETE")

	_, open := app.toasts.Detail()
	assert.True(t, open)

	app.CloseDetail()
	_, open = app.toasts.Detail()
	assert.False(t, open)
}

func TestDetail_UnknownToast(t *testing.T) {
	out := captureOutput(t)
	app, _ := newTestApp(t)

	app.Detail([]string{"42"})
	assert.Contains(t, strings.Join(*out, "\n"), "no active toast #42")
}

func TestVehicleAndFuelCommands(t *testing.T) {
	out := captureOutput(t)
	app, _ := newTestApp(t)
	ctx := context.Background()

	tenant, err := app.client.CreateTenant(ctx, harness.NewTenantPayload())
	require.NoError(t, err)
	vehicle, err := app.client.CreateVehicle(ctx, harness.NewVehiclePayload(tenant.ID))
	require.NoError(t, err)
	_, err = app.client.CreateGpsPosition(ctx, harness.NewGpsPositionPayload(vehicle.ID))
	require.NoError(t, err)

	*out = nil
	app.Vehicles(ctx, nil)
	assert.Contains(t, strings.Join(*out, "\n"), "1 vehicle(s)")

	*out = nil
	app.FuelLevel(ctx, []string{"2"})
	assert.Contains(t, strings.Join(*out, "\n"), "fuel level")

	*out = nil
	app.LastPosition(ctx, []string{"2"})
	assert.Contains(t, strings.Join(*out, "\n"), "vehicle #2 at")
}

func TestNotifications_LiveEntriesFirst(t *testing.T) {
	out := captureOutput(t)
	app, _ := newTestApp(t)
	ctx := context.Background()

	app.prepend(api.Notification{ID: 100, VehicleID: 5, Title: "Geofence exit", Message: "left zone"})

	app.Notifications(ctx)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "live")
	assert.Contains(t, joined, "Geofence exit")
	assert.Contains(t, joined, "1 live, 0 stored")
}

func TestRunSuites_ListUnknownAndRun(t *testing.T) {
	out := captureOutput(t)
	app, _ := newTestApp(t)
	ctx := context.Background()

	app.RunSuites(ctx, nil)
	assert.Contains(t, strings.Join(*out, "\n"), "tenants")

	*out = nil
	app.RunSuites(ctx, []string{"nope"})
	assert.Contains(t, strings.Join(*out, "\n"), `Unknown suite "nope"`)

	*out = nil
	app.RunSuites(ctx, []string{"tenants"})
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "passed (tenants)")
	assert.NotContains(t, joined, "FAIL")
}

func TestParseID_Usage(t *testing.T) {
	out := captureOutput(t)
	app, _ := newTestApp(t)
	ctx := context.Background()

	app.FuelLevel(ctx, nil)
	app.MarkRead(ctx, []string{"abc"})

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Usage: fuel <vehicleId>")
	assert.Contains(t, joined, "Usage: read <id>")
}
