package harness

import (
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// Suite names form the allow-list the run endpoint accepts.
const (
	SuiteTenants           = "tenants"
	SuiteVehicles          = "vehicles"
	SuiteFuelAlerts        = "fuel-alerts"
	SuiteGeofences         = "geofences"
	SuiteGpsPositions      = "gps-positions"
	SuiteNotifications     = "notifications"
	SuiteVehicleInsurances = "vehicle-insurances"
	SuiteVehicleParts      = "vehicle-parts"
	SuiteInspections       = "vehicle-technical-inspections"
)

type suiteBuilder func(*api.Client, logging.Logger) Suite

var registry = []struct {
	name  string
	build suiteBuilder
}{
	{SuiteTenants, TenantsSuite},
	{SuiteVehicles, VehiclesSuite},
	{SuiteFuelAlerts, FuelAlertsSuite},
	{SuiteGeofences, GeofencesSuite},
	{SuiteGpsPositions, GpsPositionsSuite},
	{SuiteNotifications, NotificationsSuite},
	{SuiteVehicleInsurances, VehicleInsurancesSuite},
	{SuiteVehicleParts, VehiclePartsSuite},
	{SuiteInspections, VehicleTechnicalInspectionsSuite},
}

// SuiteNames returns the registered suite names in registration order.
func SuiteNames() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.name)
	}
	return names
}

// Build constructs the named suite. The second return value is false when the
// name is not registered.
func Build(name string, client *api.Client, log logging.Logger) (Suite, bool) {
	for _, e := range registry {
		if e.name == name {
			return e.build(client, log), true
		}
	}
	return Suite{}, false
}

// BuildAll constructs every registered suite in registration order.
func BuildAll(client *api.Client, log logging.Logger) []Suite {
	suites := make([]Suite, 0, len(registry))
	for _, e := range registry {
		suites = append(suites, e.build(client, log))
	}
	return suites
}
