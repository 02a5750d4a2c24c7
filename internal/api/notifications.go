package api

import (
	"context"
	"fmt"
)

func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	return get[[]Notification](ctx, c, "/api/Notifications")
}

func (c *Client) GetNotification(ctx context.Context, id int64) (Notification, error) {
	return get[Notification](ctx, c, fmt.Sprintf("/api/Notifications/%d", id))
}

func (c *Client) GetNotificationsByTenant(ctx context.Context, tenantID int64) ([]Notification, error) {
	return get[[]Notification](ctx, c, fmt.Sprintf("/api/Notifications/tenant/%d", tenantID))
}

func (c *Client) GetNotificationsByVehicle(ctx context.Context, vehicleID int64) ([]Notification, error) {
	return get[[]Notification](ctx, c, fmt.Sprintf("/api/Notifications/vehicle/%d", vehicleID))
}

// CreateSampleNotification asks the backend to generate a notification from a
// full payload.
func (c *Client) CreateSampleNotification(ctx context.Context, n Notification) (Notification, error) {
	return post[Notification](ctx, c, "/api/Notifications/sample", n)
}

// CreateSampleNotificationFor generates a sample notification keyed only by
// tenant and vehicle ids.
func (c *Client) CreateSampleNotificationFor(ctx context.Context, tenantID, vehicleID int64) (Notification, error) {
	return post[Notification](ctx, c, fmt.Sprintf("/api/Notifications/sample/%d/%d", tenantID, vehicleID), nil)
}

// MarkNotificationAsRead flips the read flag. The backend treats concurrent
// calls against the same id as idempotent; no version check is sent.
func (c *Client) MarkNotificationAsRead(ctx context.Context, id int64) error {
	return put(ctx, c, fmt.Sprintf("/api/Notifications/%d/mark-as-read", id), nil)
}
