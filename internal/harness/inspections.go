package harness

import (
	"context"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// VehicleTechnicalInspectionsSuite exercises CRUD on
// /api/VehicleTechnicalInspections.
func VehicleTechnicalInspectionsSuite(client *api.Client, log logging.Logger) Suite {
	fx := NewFixtures(client, log)
	var (
		vehicleID int64
		created   api.VehicleTechnicalInspection
	)

	steps := []Step{
		{Name: "setup tenant and vehicle", Run: func(ctx context.Context) error {
			var err error
			_, vehicleID, err = fx.SetupTenantAndVehicle(ctx)
			return err
		}},
		{Name: "create inspection", Run: func(ctx context.Context) error {
			payload := NewVehicleTechnicalInspectionPayload(vehicleID)
			got, err := client.CreateVehicleTechnicalInspection(ctx, payload)
			if err != nil {
				return err
			}
			fx.Track(KindInspection, got.ID)
			if err := check(got.ID > 0, "created inspection has no id"); err != nil {
				return err
			}
			if err := check(got.ExpiryDate == payload.ExpiryDate, "expiryDate = %q, want %q", got.ExpiryDate, payload.ExpiryDate); err != nil {
				return err
			}
			created = got
			return nil
		}},
		{Name: "list inspections includes created", Run: func(ctx context.Context) error {
			inspections, err := client.ListVehicleTechnicalInspections(ctx)
			if err != nil {
				return err
			}
			for _, i := range inspections {
				if i.ID == created.ID {
					return nil
				}
			}
			return check(false, "inspection %d missing from list of %d", created.ID, len(inspections))
		}},
		{Name: "get inspection by id", Run: func(ctx context.Context) error {
			got, err := client.GetVehicleTechnicalInspection(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.VehicleID == vehicleID, "vehicleId = %d, want %d", got.VehicleID, vehicleID)
		}},
		{Name: "inspections by vehicle includes created", Run: func(ctx context.Context) error {
			inspections, err := client.GetVehicleTechnicalInspectionsByVehicle(ctx, vehicleID)
			if err != nil {
				return err
			}
			for _, i := range inspections {
				if i.ID == created.ID {
					return nil
				}
			}
			return check(false, "inspection %d missing from vehicle listing", created.ID)
		}},
		{Name: "update inspection", Run: func(ctx context.Context) error {
			created.ExpiryDate = "2028-01-15"
			if err := client.UpdateVehicleTechnicalInspection(ctx, created); err != nil {
				return err
			}
			got, err := client.GetVehicleTechnicalInspection(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.ExpiryDate == "2028-01-15", "expiryDate = %q after update", got.ExpiryDate)
		}},
		{Name: "delete inspection", Run: func(ctx context.Context) error {
			extra, err := client.CreateVehicleTechnicalInspection(ctx, NewVehicleTechnicalInspectionPayload(vehicleID))
			if err != nil {
				return err
			}
			if err := client.DeleteVehicleTechnicalInspection(ctx, extra.ID); err != nil {
				return err
			}
			_, err = client.GetVehicleTechnicalInspection(ctx, extra.ID)
			return expectNotFound(err)
		}},
	}

	errorCases := []Step{
		{Name: "get unknown inspection returns 404", Run: func(ctx context.Context) error {
			_, err := client.GetVehicleTechnicalInspection(ctx, unknownID)
			return expectNotFound(err)
		}},
		{Name: "update unknown inspection returns 404", Run: func(ctx context.Context) error {
			i := NewVehicleTechnicalInspectionPayload(1)
			i.ID = unknownID
			return expectNotFound(client.UpdateVehicleTechnicalInspection(ctx, i))
		}},
		{Name: "delete unknown inspection returns 404", Run: func(ctx context.Context) error {
			return expectNotFound(client.DeleteVehicleTechnicalInspection(ctx, unknownID))
		}},
		{Name: "create inspection with empty payload returns 400", Run: func(ctx context.Context) error {
			_, err := client.CreateVehicleTechnicalInspection(ctx, api.VehicleTechnicalInspection{})
			return expectBadRequest(err)
		}},
	}

	return Suite{Name: SuiteInspections, Steps: steps, ErrorCases: errorCases, Teardown: fx.Teardown}
}
