package api

import (
	"context"
	"fmt"
)

func (c *Client) GetFuelAlert(ctx context.Context, id int64) (FuelAlert, error) {
	return get[FuelAlert](ctx, c, fmt.Sprintf("/api/FuelAlerts/%d", id))
}

func (c *Client) GetFuelAlertsByVehicle(ctx context.Context, vehicleID int64) ([]FuelAlert, error) {
	return get[[]FuelAlert](ctx, c, fmt.Sprintf("/api/FuelAlerts/vehicle/%d", vehicleID))
}

func (c *Client) CreateFuelAlert(ctx context.Context, a FuelAlert) (FuelAlert, error) {
	return post[FuelAlert](ctx, c, "/api/FuelAlerts", a)
}

func (c *Client) UpdateFuelAlert(ctx context.Context, a FuelAlert) error {
	return put(ctx, c, fmt.Sprintf("/api/FuelAlerts/%d", a.ID), a)
}

func (c *Client) DeleteFuelAlert(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/FuelAlerts/%d", id))
}
