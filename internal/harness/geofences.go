package harness

import (
	"context"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// GeofencesSuite exercises CRUD on /api/Geofences and the point-containment
// query.
func GeofencesSuite(client *api.Client, log logging.Logger) Suite {
	fx := NewFixtures(client, log)
	var (
		vehicleID int64
		created   api.Geofence
	)

	steps := []Step{
		{Name: "setup tenant and vehicle", Run: func(ctx context.Context) error {
			var err error
			_, vehicleID, err = fx.SetupTenantAndVehicle(ctx)
			return err
		}},
		{Name: "create geofence", Run: func(ctx context.Context) error {
			payload := NewGeofencePayload(vehicleID)
			got, err := client.CreateGeofence(ctx, payload)
			if err != nil {
				return err
			}
			fx.Track(KindGeofence, got.ID)
			if err := check(got.ID > 0, "created geofence has no id"); err != nil {
				return err
			}
			if err := check(got.Center == payload.Center, "center = %+v, want %+v", got.Center, payload.Center); err != nil {
				return err
			}
			if err := check(got.RadiusMeters == payload.RadiusMeters, "radius = %v, want %v", got.RadiusMeters, payload.RadiusMeters); err != nil {
				return err
			}
			created = got
			return nil
		}},
		{Name: "list geofences includes created", Run: func(ctx context.Context) error {
			fences, err := client.ListGeofences(ctx)
			if err != nil {
				return err
			}
			for _, g := range fences {
				if g.ID == created.ID {
					return nil
				}
			}
			return check(false, "geofence %d missing from list of %d", created.ID, len(fences))
		}},
		{Name: "get geofence by id", Run: func(ctx context.Context) error {
			got, err := client.GetGeofence(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.Name == created.Name, "name = %q, want %q", got.Name, created.Name)
		}},
		{Name: "geofences by vehicle includes created", Run: func(ctx context.Context) error {
			fences, err := client.GetGeofencesByVehicle(ctx, vehicleID)
			if err != nil {
				return err
			}
			for _, g := range fences {
				if g.ID == created.ID {
					return nil
				}
			}
			return check(false, "geofence %d missing from vehicle listing", created.ID)
		}},
		{Name: "contains query matches center point", Run: func(ctx context.Context) error {
			fences, err := client.GeofencesContaining(ctx, created.Center.Latitude, created.Center.Longitude)
			if err != nil {
				return err
			}
			for _, g := range fences {
				if g.ID == created.ID {
					return nil
				}
			}
			return check(false, "geofence %d does not contain its own center", created.ID)
		}},
		{Name: "contains query excludes distant point", Run: func(ctx context.Context) error {
			// Roughly 110 km north of the center, far outside any test radius.
			fences, err := client.GeofencesContaining(ctx, created.Center.Latitude+1.0, created.Center.Longitude)
			if err != nil {
				return err
			}
			for _, g := range fences {
				if g.ID == created.ID {
					return check(false, "geofence %d matched a point %v degrees away", created.ID, 1.0)
				}
			}
			return nil
		}},
		{Name: "update geofence", Run: func(ctx context.Context) error {
			created.RadiusMeters = 1200
			if err := client.UpdateGeofence(ctx, created); err != nil {
				return err
			}
			got, err := client.GetGeofence(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.RadiusMeters == 1200, "radius = %v after update", got.RadiusMeters)
		}},
		{Name: "delete geofence", Run: func(ctx context.Context) error {
			extra, err := client.CreateGeofence(ctx, NewGeofencePayload(vehicleID))
			if err != nil {
				return err
			}
			if err := client.DeleteGeofence(ctx, extra.ID); err != nil {
				return err
			}
			_, err = client.GetGeofence(ctx, extra.ID)
			return expectNotFound(err)
		}},
	}

	errorCases := []Step{
		{Name: "get unknown geofence returns 404", Run: func(ctx context.Context) error {
			_, err := client.GetGeofence(ctx, unknownID)
			return expectNotFound(err)
		}},
		{Name: "update unknown geofence returns 404", Run: func(ctx context.Context) error {
			g := NewGeofencePayload(1)
			g.ID = unknownID
			return expectNotFound(client.UpdateGeofence(ctx, g))
		}},
		{Name: "delete unknown geofence returns 404", Run: func(ctx context.Context) error {
			return expectNotFound(client.DeleteGeofence(ctx, unknownID))
		}},
		{Name: "create geofence with empty payload returns 400", Run: func(ctx context.Context) error {
			_, err := client.CreateGeofence(ctx, api.Geofence{})
			return expectBadRequest(err)
		}},
	}

	return Suite{Name: SuiteGeofences, Steps: steps, ErrorCases: errorCases, Teardown: fx.Teardown}
}
