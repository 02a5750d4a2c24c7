package harness

import (
	"context"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// FuelAlertsSuite exercises CRUD on /api/FuelAlerts.
func FuelAlertsSuite(client *api.Client, log logging.Logger) Suite {
	fx := NewFixtures(client, log)
	var (
		vehicleID int64
		created   api.FuelAlert
	)

	steps := []Step{
		{Name: "setup tenant and vehicle", Run: func(ctx context.Context) error {
			var err error
			_, vehicleID, err = fx.SetupTenantAndVehicle(ctx)
			return err
		}},
		{Name: "create fuel alert", Run: func(ctx context.Context) error {
			payload := NewFuelAlertPayload(vehicleID)
			got, err := client.CreateFuelAlert(ctx, payload)
			if err != nil {
				return err
			}
			fx.Track(KindFuelAlert, got.ID)
			if err := check(got.ID > 0, "created fuel alert has no id"); err != nil {
				return err
			}
			if err := check(got.Name == payload.Name, "name = %q, want %q", got.Name, payload.Name); err != nil {
				return err
			}
			if err := check(got.ThresholdValue == payload.ThresholdValue, "threshold = %v, want %v", got.ThresholdValue, payload.ThresholdValue); err != nil {
				return err
			}
			if err := check(got.AlertType == payload.AlertType, "alertType = %d, want %d", got.AlertType, payload.AlertType); err != nil {
				return err
			}
			created = got
			return nil
		}},
		{Name: "get fuel alert by id", Run: func(ctx context.Context) error {
			got, err := client.GetFuelAlert(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.VehicleID == vehicleID, "vehicleId = %d, want %d", got.VehicleID, vehicleID)
		}},
		{Name: "fuel alerts by vehicle includes created", Run: func(ctx context.Context) error {
			alerts, err := client.GetFuelAlertsByVehicle(ctx, vehicleID)
			if err != nil {
				return err
			}
			for _, a := range alerts {
				if a.ID == created.ID {
					return nil
				}
			}
			return check(false, "fuel alert %d missing from vehicle listing", created.ID)
		}},
		{Name: "update fuel alert", Run: func(ctx context.Context) error {
			created.ThresholdValue = 5
			created.AlertType = api.FuelAlertCritical
			if err := client.UpdateFuelAlert(ctx, created); err != nil {
				return err
			}
			got, err := client.GetFuelAlert(ctx, created.ID)
			if err != nil {
				return err
			}
			if err := check(got.ThresholdValue == 5, "threshold = %v after update", got.ThresholdValue); err != nil {
				return err
			}
			return check(got.AlertType == api.FuelAlertCritical, "alertType = %d after update", got.AlertType)
		}},
		{Name: "delete fuel alert", Run: func(ctx context.Context) error {
			extra, err := client.CreateFuelAlert(ctx, NewFuelAlertPayload(vehicleID))
			if err != nil {
				return err
			}
			if err := client.DeleteFuelAlert(ctx, extra.ID); err != nil {
				return err
			}
			_, err = client.GetFuelAlert(ctx, extra.ID)
			return expectNotFound(err)
		}},
	}

	errorCases := []Step{
		{Name: "get unknown fuel alert returns 404", Run: func(ctx context.Context) error {
			_, err := client.GetFuelAlert(ctx, unknownID)
			return expectNotFound(err)
		}},
		{Name: "update unknown fuel alert returns 404", Run: func(ctx context.Context) error {
			a := NewFuelAlertPayload(1)
			a.ID = unknownID
			return expectNotFound(client.UpdateFuelAlert(ctx, a))
		}},
		{Name: "delete unknown fuel alert returns 404", Run: func(ctx context.Context) error {
			return expectNotFound(client.DeleteFuelAlert(ctx, unknownID))
		}},
		{Name: "create fuel alert with empty payload returns 400", Run: func(ctx context.Context) error {
			_, err := client.CreateFuelAlert(ctx, api.FuelAlert{})
			return expectBadRequest(err)
		}},
	}

	return Suite{Name: SuiteFuelAlerts, Steps: steps, ErrorCases: errorCases, Teardown: fx.Teardown}
}
