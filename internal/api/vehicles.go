package api

import (
	"context"
	"fmt"
)

func (c *Client) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	return get[[]Vehicle](ctx, c, "/api/Vehicles")
}

func (c *Client) GetVehicle(ctx context.Context, id int64) (Vehicle, error) {
	return get[Vehicle](ctx, c, fmt.Sprintf("/api/Vehicles/%d", id))
}

func (c *Client) GetVehiclesByTenant(ctx context.Context, tenantID int64) ([]Vehicle, error) {
	return get[[]Vehicle](ctx, c, fmt.Sprintf("/api/Vehicles/tenant/%d", tenantID))
}

func (c *Client) CreateVehicle(ctx context.Context, v Vehicle) (Vehicle, error) {
	return post[Vehicle](ctx, c, "/api/Vehicles", v)
}

func (c *Client) UpdateVehicle(ctx context.Context, v Vehicle) error {
	return put(ctx, c, fmt.Sprintf("/api/Vehicles/%d", v.ID), v)
}

func (c *Client) DeleteVehicle(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/Vehicles/%d", id))
}

// GetFuelLevel returns the vehicle's current fuel level in liters, derived by
// the backend from its latest GPS position.
func (c *Client) GetFuelLevel(ctx context.Context, id int64) (float64, error) {
	return get[float64](ctx, c, fmt.Sprintf("/api/Vehicles/fuel-level/%d", id))
}

func (c *Client) GetLastPosition(ctx context.Context, id int64) (GpsPosition, error) {
	return get[GpsPosition](ctx, c, fmt.Sprintf("/api/Vehicles/%d/last-position", id))
}
