package harness

import (
	"context"
	"fmt"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// Resource kinds tracked by Fixtures, named after the backend endpoints.
const (
	KindTenant     = "Tenants"
	KindVehicle    = "Vehicles"
	KindFuelAlert  = "FuelAlerts"
	KindGeofence   = "Geofences"
	KindInsurance  = "VehicleInsurances"
	KindPart       = "VehicleParts"
	KindInspection = "VehicleTechnicalInspections"
)

type fixtureRef struct {
	kind string
	id   int64
}

// Fixtures tracks every resource a suite creates so teardown can remove them
// in reverse-creation order. Creation order encodes the dependency chain
// (tenant before vehicle before child resource), so reversing it guarantees
// a child never outlives its vehicle and a vehicle never outlives its tenant.
type Fixtures struct {
	client  *api.Client
	log     logging.Logger
	created []fixtureRef
}

func NewFixtures(client *api.Client, log logging.Logger) *Fixtures {
	return &Fixtures{client: client, log: log}
}

// Track records a created resource for teardown.
func (f *Fixtures) Track(kind string, id int64) {
	f.created = append(f.created, fixtureRef{kind: kind, id: id})
}

// SetupTenant creates one tenant and returns its assigned id. Failures abort
// the calling suite; there is no partial-failure handling here.
func (f *Fixtures) SetupTenant(ctx context.Context) (int64, error) {
	tenant, err := f.client.CreateTenant(ctx, NewTenantPayload())
	if err != nil {
		return 0, fmt.Errorf("setup tenant: %w", err)
	}
	f.Track(KindTenant, tenant.ID)
	return tenant.ID, nil
}

// SetupTenantAndVehicle creates the tenant-then-vehicle parent chain a
// child-resource suite needs and returns both ids.
func (f *Fixtures) SetupTenantAndVehicle(ctx context.Context) (tenantID, vehicleID int64, err error) {
	tenantID, err = f.SetupTenant(ctx)
	if err != nil {
		return 0, 0, err
	}
	vehicle, err := f.client.CreateVehicle(ctx, NewVehiclePayload(tenantID))
	if err != nil {
		return 0, 0, fmt.Errorf("setup vehicle: %w", err)
	}
	f.Track(KindVehicle, vehicle.ID)
	return tenantID, vehicle.ID, nil
}

// Teardown deletes every tracked resource in reverse-creation order. Deletes
// are best-effort: a failed delete is logged and swallowed, and never stops
// the remaining cleanup calls.
func (f *Fixtures) Teardown(ctx context.Context) {
	for i := len(f.created) - 1; i >= 0; i-- {
		ref := f.created[i]
		if err := f.deleteByKind(ctx, ref.kind, ref.id); err != nil {
			f.log.Warn(ctx, "fixture cleanup failed", "kind", ref.kind, "id", ref.id, "error", err)
		}
	}
	f.created = nil
}

func (f *Fixtures) deleteByKind(ctx context.Context, kind string, id int64) error {
	switch kind {
	case KindTenant:
		return f.client.DeleteTenant(ctx, id)
	case KindVehicle:
		return f.client.DeleteVehicle(ctx, id)
	case KindFuelAlert:
		return f.client.DeleteFuelAlert(ctx, id)
	case KindGeofence:
		return f.client.DeleteGeofence(ctx, id)
	case KindInsurance:
		return f.client.DeleteVehicleInsurance(ctx, id)
	case KindPart:
		return f.client.DeleteVehiclePart(ctx, id)
	case KindInspection:
		return f.client.DeleteVehicleTechnicalInspection(ctx, id)
	default:
		return fmt.Errorf("unknown fixture kind %q", kind)
	}
}
