package harness

import (
	"context"
	"time"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// GpsPositionsSuite exercises position ingestion and the distance queries.
func GpsPositionsSuite(client *api.Client, log logging.Logger) Suite {
	fx := NewFixtures(client, log)
	var (
		vehicleID int64
		windowLo  = time.Now().UTC().Add(-time.Hour)
		windowHi  = time.Now().UTC().Add(time.Hour)
	)

	steps := []Step{
		{Name: "setup tenant and vehicle", Run: func(ctx context.Context) error {
			var err error
			_, vehicleID, err = fx.SetupTenantAndVehicle(ctx)
			return err
		}},
		{Name: "record first position", Run: func(ctx context.Context) error {
			payload := NewGpsPositionPayload(vehicleID)
			payload.Latitude = 40.1772
			payload.Longitude = 44.5035
			payload.TimestampUTC = time.Now().UTC().Add(-10 * time.Minute).Format(time.RFC3339)
			got, err := client.CreateGpsPosition(ctx, payload)
			if err != nil {
				return err
			}
			if err := check(got.ID > 0, "created position has no id"); err != nil {
				return err
			}
			if err := check(got.VehicleID == vehicleID, "vehicleId = %d, want %d", got.VehicleID, vehicleID); err != nil {
				return err
			}
			return check(got.FuelLevelLiters != nil, "fuelLevelLiters dropped on echo")
		}},
		{Name: "record second position further north", Run: func(ctx context.Context) error {
			payload := NewGpsPositionPayload(vehicleID)
			payload.Latitude = 40.1872
			payload.Longitude = 44.5035
			payload.TimestampUTC = time.Now().UTC().Add(-5 * time.Minute).Format(time.RFC3339)
			_, err := client.CreateGpsPosition(ctx, payload)
			return err
		}},
		{Name: "distance over window is positive", Run: func(ctx context.Context) error {
			km, err := client.GetDistance(ctx, vehicleID,
				windowLo.Format(time.RFC3339), windowHi.Format(time.RFC3339))
			if err != nil {
				return err
			}
			// 0.01 degrees of latitude is about 1.1 km.
			return check(km > 0.5 && km < 5, "distance = %v km, want about 1.1", km)
		}},
		{Name: "distance from last stop reports vehicle", Run: func(ctx context.Context) error {
			got, err := client.GetDistanceFromLastStop(ctx, vehicleID)
			if err != nil {
				return err
			}
			return check(got.VehicleID == vehicleID, "vehicleId = %d, want %d", got.VehicleID, vehicleID)
		}},
	}

	errorCases := []Step{
		{Name: "distance for unknown vehicle is zero not an error", Run: func(ctx context.Context) error {
			km, err := client.GetDistance(ctx, unknownID,
				windowLo.Format(time.RFC3339), windowHi.Format(time.RFC3339))
			if err != nil {
				return err
			}
			return check(km == 0, "distance = %v km for unknown vehicle", km)
		}},
		{Name: "distance from last stop for unknown vehicle succeeds", Run: func(ctx context.Context) error {
			got, err := client.GetDistanceFromLastStop(ctx, unknownID)
			if err != nil {
				return err
			}
			return check(got.DistanceKm == 0, "distance = %v km for unknown vehicle", got.DistanceKm)
		}},
		{Name: "distance with malformed window returns 400", Run: func(ctx context.Context) error {
			_, err := client.GetDistance(ctx, unknownID, "not-a-date", "also-not-a-date")
			return expectBadRequest(err)
		}},
		{Name: "create position with empty payload returns 400", Run: func(ctx context.Context) error {
			_, err := client.CreateGpsPosition(ctx, api.GpsPosition{})
			return expectBadRequest(err)
		}},
	}

	return Suite{Name: SuiteGpsPositions, Steps: steps, ErrorCases: errorCases, Teardown: fx.Teardown}
}
