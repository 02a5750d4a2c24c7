package harness

import (
	"context"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// VehiclesSuite exercises CRUD on /api/Vehicles plus the derived fuel-level
// and last-position reads.
func VehiclesSuite(client *api.Client, log logging.Logger) Suite {
	fx := NewFixtures(client, log)
	var (
		tenantID int64
		created  api.Vehicle
		position api.GpsPosition
	)

	steps := []Step{
		{Name: "setup tenant", Run: func(ctx context.Context) error {
			var err error
			tenantID, err = fx.SetupTenant(ctx)
			return err
		}},
		{Name: "create vehicle", Run: func(ctx context.Context) error {
			payload := NewVehiclePayload(tenantID)
			got, err := client.CreateVehicle(ctx, payload)
			if err != nil {
				return err
			}
			fx.Track(KindVehicle, got.ID)
			if err := check(got.ID > 0, "created vehicle has no id"); err != nil {
				return err
			}
			if err := check(got.PlateNumber == payload.PlateNumber, "plateNumber = %q, want %q", got.PlateNumber, payload.PlateNumber); err != nil {
				return err
			}
			if err := check(got.TenantID == tenantID, "tenantId = %d, want %d", got.TenantID, tenantID); err != nil {
				return err
			}
			created = got
			return nil
		}},
		{Name: "list vehicles includes created", Run: func(ctx context.Context) error {
			vehicles, err := client.ListVehicles(ctx)
			if err != nil {
				return err
			}
			for _, v := range vehicles {
				if v.ID == created.ID {
					return nil
				}
			}
			return check(false, "vehicle %d missing from list of %d", created.ID, len(vehicles))
		}},
		{Name: "get vehicle by id", Run: func(ctx context.Context) error {
			got, err := client.GetVehicle(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.VIN == created.VIN, "vin = %q, want %q", got.VIN, created.VIN)
		}},
		{Name: "vehicles by tenant scoped to tenant", Run: func(ctx context.Context) error {
			vehicles, err := client.GetVehiclesByTenant(ctx, tenantID)
			if err != nil {
				return err
			}
			found := false
			for _, v := range vehicles {
				if v.TenantID != tenantID {
					return check(false, "vehicle %d belongs to tenant %d, want %d", v.ID, v.TenantID, tenantID)
				}
				if v.ID == created.ID {
					found = true
				}
			}
			return check(found, "vehicle %d missing from tenant listing", created.ID)
		}},
		{Name: "last position empty before any fix", Run: func(ctx context.Context) error {
			_, err := client.GetLastPosition(ctx, created.ID)
			return expectNotFound(err)
		}},
		{Name: "record position", Run: func(ctx context.Context) error {
			got, err := client.CreateGpsPosition(ctx, NewGpsPositionPayload(created.ID))
			if err != nil {
				return err
			}
			position = got
			return check(got.VehicleID == created.ID, "position vehicleId = %d, want %d", got.VehicleID, created.ID)
		}},
		{Name: "last position returns latest fix", Run: func(ctx context.Context) error {
			got, err := client.GetLastPosition(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.ID == position.ID, "last position id = %d, want %d", got.ID, position.ID)
		}},
		{Name: "fuel level derived from latest fix", Run: func(ctx context.Context) error {
			level, err := client.GetFuelLevel(ctx, created.ID)
			if err != nil {
				return err
			}
			if position.FuelLevelLiters == nil {
				return nil
			}
			return check(level == *position.FuelLevelLiters, "fuel level = %v, want %v", level, *position.FuelLevelLiters)
		}},
		{Name: "update vehicle", Run: func(ctx context.Context) error {
			created.Model = "UpdatedModel"
			created.TotalMileage += 500
			if err := client.UpdateVehicle(ctx, created); err != nil {
				return err
			}
			got, err := client.GetVehicle(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.Model == "UpdatedModel", "model = %q after update", got.Model)
		}},
		{Name: "delete vehicle", Run: func(ctx context.Context) error {
			extra, err := client.CreateVehicle(ctx, NewVehiclePayload(tenantID))
			if err != nil {
				return err
			}
			if err := client.DeleteVehicle(ctx, extra.ID); err != nil {
				return err
			}
			_, err = client.GetVehicle(ctx, extra.ID)
			return expectNotFound(err)
		}},
	}

	errorCases := []Step{
		{Name: "get unknown vehicle returns 404", Run: func(ctx context.Context) error {
			_, err := client.GetVehicle(ctx, unknownID)
			return expectNotFound(err)
		}},
		{Name: "update unknown vehicle returns 404", Run: func(ctx context.Context) error {
			v := NewVehiclePayload(1)
			v.ID = unknownID
			return expectNotFound(client.UpdateVehicle(ctx, v))
		}},
		{Name: "delete unknown vehicle returns 404", Run: func(ctx context.Context) error {
			return expectNotFound(client.DeleteVehicle(ctx, unknownID))
		}},
		{Name: "fuel level for unknown vehicle returns 404", Run: func(ctx context.Context) error {
			_, err := client.GetFuelLevel(ctx, unknownID)
			return expectNotFound(err)
		}},
		{Name: "last position for unknown vehicle returns 404", Run: func(ctx context.Context) error {
			_, err := client.GetLastPosition(ctx, unknownID)
			return expectNotFound(err)
		}},
		{Name: "create vehicle with empty payload returns 400", Run: func(ctx context.Context) error {
			_, err := client.CreateVehicle(ctx, api.Vehicle{})
			return expectBadRequest(err)
		}},
	}

	return Suite{Name: SuiteVehicles, Steps: steps, ErrorCases: errorCases, Teardown: fx.Teardown}
}
