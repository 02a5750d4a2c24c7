package harness

import (
	"context"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// VehiclePartsSuite exercises CRUD on /api/VehicleParts.
func VehiclePartsSuite(client *api.Client, log logging.Logger) Suite {
	fx := NewFixtures(client, log)
	var (
		vehicleID int64
		created   api.VehiclePart
	)

	steps := []Step{
		{Name: "setup tenant and vehicle", Run: func(ctx context.Context) error {
			var err error
			_, vehicleID, err = fx.SetupTenantAndVehicle(ctx)
			return err
		}},
		{Name: "create part", Run: func(ctx context.Context) error {
			payload := NewVehiclePartPayload(vehicleID)
			got, err := client.CreateVehiclePart(ctx, payload)
			if err != nil {
				return err
			}
			fx.Track(KindPart, got.ID)
			if err := check(got.ID > 0, "created part has no id"); err != nil {
				return err
			}
			if err := check(got.PartNumber == payload.PartNumber, "partNumber = %q, want %q", got.PartNumber, payload.PartNumber); err != nil {
				return err
			}
			if err := check(got.ServiceIntervalKm == payload.ServiceIntervalKm, "serviceIntervalKm = %d, want %d", got.ServiceIntervalKm, payload.ServiceIntervalKm); err != nil {
				return err
			}
			created = got
			return nil
		}},
		{Name: "list parts includes created", Run: func(ctx context.Context) error {
			parts, err := client.ListVehicleParts(ctx)
			if err != nil {
				return err
			}
			for _, p := range parts {
				if p.ID == created.ID {
					return nil
				}
			}
			return check(false, "part %d missing from list of %d", created.ID, len(parts))
		}},
		{Name: "get part by id", Run: func(ctx context.Context) error {
			got, err := client.GetVehiclePart(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.Name == created.Name, "name = %q, want %q", got.Name, created.Name)
		}},
		{Name: "parts by vehicle includes created", Run: func(ctx context.Context) error {
			parts, err := client.GetVehiclePartsByVehicle(ctx, vehicleID)
			if err != nil {
				return err
			}
			for _, p := range parts {
				if p.ID == created.ID {
					return nil
				}
			}
			return check(false, "part %d missing from vehicle listing", created.ID)
		}},
		{Name: "update part", Run: func(ctx context.Context) error {
			created.NextServiceOdometerKm = 20000
			if err := client.UpdateVehiclePart(ctx, created); err != nil {
				return err
			}
			got, err := client.GetVehiclePart(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.NextServiceOdometerKm == 20000, "nextServiceOdometerKm = %d after update", got.NextServiceOdometerKm)
		}},
		{Name: "delete part", Run: func(ctx context.Context) error {
			extra, err := client.CreateVehiclePart(ctx, NewVehiclePartPayload(vehicleID))
			if err != nil {
				return err
			}
			if err := client.DeleteVehiclePart(ctx, extra.ID); err != nil {
				return err
			}
			_, err = client.GetVehiclePart(ctx, extra.ID)
			return expectNotFound(err)
		}},
	}

	errorCases := []Step{
		{Name: "get unknown part returns 404", Run: func(ctx context.Context) error {
			_, err := client.GetVehiclePart(ctx, unknownID)
			return expectNotFound(err)
		}},
		{Name: "update unknown part returns 404", Run: func(ctx context.Context) error {
			p := NewVehiclePartPayload(1)
			p.ID = unknownID
			return expectNotFound(client.UpdateVehiclePart(ctx, p))
		}},
		{Name: "delete unknown part returns 404", Run: func(ctx context.Context) error {
			return expectNotFound(client.DeleteVehiclePart(ctx, unknownID))
		}},
		{Name: "create part with empty payload returns 400", Run: func(ctx context.Context) error {
			_, err := client.CreateVehiclePart(ctx, api.VehiclePart{})
			return expectBadRequest(err)
		}},
	}

	return Suite{Name: SuiteVehicleParts, Steps: steps, ErrorCases: errorCases, Teardown: fx.Teardown}
}
