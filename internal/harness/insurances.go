package harness

import (
	"context"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// VehicleInsurancesSuite exercises CRUD on /api/VehicleInsurances.
func VehicleInsurancesSuite(client *api.Client, log logging.Logger) Suite {
	fx := NewFixtures(client, log)
	var (
		vehicleID int64
		created   api.VehicleInsurance
	)

	steps := []Step{
		{Name: "setup tenant and vehicle", Run: func(ctx context.Context) error {
			var err error
			_, vehicleID, err = fx.SetupTenantAndVehicle(ctx)
			return err
		}},
		{Name: "create insurance", Run: func(ctx context.Context) error {
			payload := NewVehicleInsurancePayload(vehicleID)
			got, err := client.CreateVehicleInsurance(ctx, payload)
			if err != nil {
				return err
			}
			fx.Track(KindInsurance, got.ID)
			if err := check(got.ID > 0, "created insurance has no id"); err != nil {
				return err
			}
			if err := check(got.Provider == payload.Provider, "provider = %q, want %q", got.Provider, payload.Provider); err != nil {
				return err
			}
			created = got
			return nil
		}},
		{Name: "list insurances includes created", Run: func(ctx context.Context) error {
			insurances, err := client.ListVehicleInsurances(ctx)
			if err != nil {
				return err
			}
			for _, i := range insurances {
				if i.ID == created.ID {
					return nil
				}
			}
			return check(false, "insurance %d missing from list of %d", created.ID, len(insurances))
		}},
		{Name: "get insurance by id", Run: func(ctx context.Context) error {
			got, err := client.GetVehicleInsurance(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.VehicleID == vehicleID, "vehicleId = %d, want %d", got.VehicleID, vehicleID)
		}},
		{Name: "insurances by vehicle includes created", Run: func(ctx context.Context) error {
			insurances, err := client.GetVehicleInsurancesByVehicle(ctx, vehicleID)
			if err != nil {
				return err
			}
			for _, i := range insurances {
				if i.ID == created.ID {
					return nil
				}
			}
			return check(false, "insurance %d missing from vehicle listing", created.ID)
		}},
		{Name: "update insurance", Run: func(ctx context.Context) error {
			created.ExpiryDate = "2027-06-30"
			if err := client.UpdateVehicleInsurance(ctx, created); err != nil {
				return err
			}
			got, err := client.GetVehicleInsurance(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.ExpiryDate == "2027-06-30", "expiryDate = %q after update", got.ExpiryDate)
		}},
		{Name: "delete insurance", Run: func(ctx context.Context) error {
			extra, err := client.CreateVehicleInsurance(ctx, NewVehicleInsurancePayload(vehicleID))
			if err != nil {
				return err
			}
			if err := client.DeleteVehicleInsurance(ctx, extra.ID); err != nil {
				return err
			}
			_, err = client.GetVehicleInsurance(ctx, extra.ID)
			return expectNotFound(err)
		}},
	}

	errorCases := []Step{
		{Name: "get unknown insurance returns 404", Run: func(ctx context.Context) error {
			_, err := client.GetVehicleInsurance(ctx, unknownID)
			return expectNotFound(err)
		}},
		{Name: "update unknown insurance returns 404", Run: func(ctx context.Context) error {
			i := NewVehicleInsurancePayload(1)
			i.ID = unknownID
			return expectNotFound(client.UpdateVehicleInsurance(ctx, i))
		}},
		{Name: "delete unknown insurance returns 404", Run: func(ctx context.Context) error {
			return expectNotFound(client.DeleteVehicleInsurance(ctx, unknownID))
		}},
		{Name: "create insurance with empty payload returns 400", Run: func(ctx context.Context) error {
			_, err := client.CreateVehicleInsurance(ctx, api.VehicleInsurance{})
			return expectBadRequest(err)
		}},
	}

	return Suite{Name: SuiteVehicleInsurances, Steps: steps, ErrorCases: errorCases, Teardown: fx.Teardown}
}
