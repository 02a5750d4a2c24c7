package api

import (
	"context"
	"fmt"
)

func (c *Client) ListVehicleParts(ctx context.Context) ([]VehiclePart, error) {
	return get[[]VehiclePart](ctx, c, "/api/VehicleParts")
}

func (c *Client) GetVehiclePart(ctx context.Context, id int64) (VehiclePart, error) {
	return get[VehiclePart](ctx, c, fmt.Sprintf("/api/VehicleParts/%d", id))
}

func (c *Client) GetVehiclePartsByVehicle(ctx context.Context, vehicleID int64) ([]VehiclePart, error) {
	return get[[]VehiclePart](ctx, c, fmt.Sprintf("/api/VehicleParts/vehicle/%d", vehicleID))
}

func (c *Client) CreateVehiclePart(ctx context.Context, p VehiclePart) (VehiclePart, error) {
	return post[VehiclePart](ctx, c, "/api/VehicleParts", p)
}

func (c *Client) UpdateVehiclePart(ctx context.Context, p VehiclePart) error {
	return put(ctx, c, fmt.Sprintf("/api/VehicleParts/%d", p.ID), p)
}

func (c *Client) DeleteVehiclePart(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/VehicleParts/%d", id))
}
