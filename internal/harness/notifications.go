package harness

import (
	"context"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// NotificationsSuite exercises the sample-notification generators, the scoped
// listings, and mark-as-read.
func NotificationsSuite(client *api.Client, log logging.Logger) Suite {
	fx := NewFixtures(client, log)
	var (
		tenantID  int64
		vehicleID int64
		created   api.Notification
	)

	steps := []Step{
		{Name: "setup tenant and vehicle", Run: func(ctx context.Context) error {
			var err error
			tenantID, vehicleID, err = fx.SetupTenantAndVehicle(ctx)
			return err
		}},
		{Name: "create sample notification from payload", Run: func(ctx context.Context) error {
			payload := NewNotificationPayload(tenantID, vehicleID)
			got, err := client.CreateSampleNotification(ctx, payload)
			if err != nil {
				return err
			}
			if err := check(got.ID > 0, "created notification has no id"); err != nil {
				return err
			}
			if err := check(got.VehicleID == vehicleID, "vehicleId = %d, want %d", got.VehicleID, vehicleID); err != nil {
				return err
			}
			if err := check(!got.IsRead, "new notification is already read"); err != nil {
				return err
			}
			created = got
			return nil
		}},
		{Name: "create sample notification by ids", Run: func(ctx context.Context) error {
			got, err := client.CreateSampleNotificationFor(ctx, tenantID, vehicleID)
			if err != nil {
				return err
			}
			if err := check(got.TenantID != nil && *got.TenantID == tenantID, "tenantId not set on generated notification"); err != nil {
				return err
			}
			return check(got.VehicleID == vehicleID, "vehicleId = %d, want %d", got.VehicleID, vehicleID)
		}},
		{Name: "list notifications includes created", Run: func(ctx context.Context) error {
			notifications, err := client.ListNotifications(ctx)
			if err != nil {
				return err
			}
			for _, n := range notifications {
				if n.ID == created.ID {
					return nil
				}
			}
			return check(false, "notification %d missing from list of %d", created.ID, len(notifications))
		}},
		{Name: "notifications by tenant includes created", Run: func(ctx context.Context) error {
			notifications, err := client.GetNotificationsByTenant(ctx, tenantID)
			if err != nil {
				return err
			}
			for _, n := range notifications {
				if n.ID == created.ID {
					return nil
				}
			}
			return check(false, "notification %d missing from tenant listing", created.ID)
		}},
		{Name: "notifications by vehicle includes created", Run: func(ctx context.Context) error {
			notifications, err := client.GetNotificationsByVehicle(ctx, vehicleID)
			if err != nil {
				return err
			}
			for _, n := range notifications {
				if n.ID == created.ID {
					return nil
				}
			}
			return check(false, "notification %d missing from vehicle listing", created.ID)
		}},
		{Name: "mark as read", Run: func(ctx context.Context) error {
			if err := client.MarkNotificationAsRead(ctx, created.ID); err != nil {
				return err
			}
			got, err := client.GetNotification(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.IsRead, "notification %d still unread after mark-as-read", created.ID)
		}},
		{Name: "mark as read is idempotent", Run: func(ctx context.Context) error {
			return client.MarkNotificationAsRead(ctx, created.ID)
		}},
	}

	errorCases := []Step{
		{Name: "get unknown notification returns 404", Run: func(ctx context.Context) error {
			_, err := client.GetNotification(ctx, unknownID)
			return expectNotFound(err)
		}},
		{Name: "mark unknown notification as read returns 404", Run: func(ctx context.Context) error {
			return expectNotFound(client.MarkNotificationAsRead(ctx, unknownID))
		}},
		{Name: "create sample with empty payload returns 400", Run: func(ctx context.Context) error {
			_, err := client.CreateSampleNotification(ctx, api.Notification{})
			return expectBadRequest(err)
		}},
	}

	return Suite{Name: SuiteNotifications, Steps: steps, ErrorCases: errorCases, Teardown: fx.Teardown}
}
