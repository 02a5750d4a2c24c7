package api

import (
	"context"
	"fmt"
)

func (c *Client) ListVehicleTechnicalInspections(ctx context.Context) ([]VehicleTechnicalInspection, error) {
	return get[[]VehicleTechnicalInspection](ctx, c, "/api/VehicleTechnicalInspections")
}

func (c *Client) GetVehicleTechnicalInspection(ctx context.Context, id int64) (VehicleTechnicalInspection, error) {
	return get[VehicleTechnicalInspection](ctx, c, fmt.Sprintf("/api/VehicleTechnicalInspections/%d", id))
}

func (c *Client) GetVehicleTechnicalInspectionsByVehicle(ctx context.Context, vehicleID int64) ([]VehicleTechnicalInspection, error) {
	return get[[]VehicleTechnicalInspection](ctx, c, fmt.Sprintf("/api/VehicleTechnicalInspections/vehicle/%d", vehicleID))
}

func (c *Client) CreateVehicleTechnicalInspection(ctx context.Context, i VehicleTechnicalInspection) (VehicleTechnicalInspection, error) {
	return post[VehicleTechnicalInspection](ctx, c, "/api/VehicleTechnicalInspections", i)
}

func (c *Client) UpdateVehicleTechnicalInspection(ctx context.Context, i VehicleTechnicalInspection) error {
	return put(ctx, c, fmt.Sprintf("/api/VehicleTechnicalInspections/%d", i.ID), i)
}

func (c *Client) DeleteVehicleTechnicalInspection(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/VehicleTechnicalInspections/%d", id))
}
