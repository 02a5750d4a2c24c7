package api

import (
	"context"
	"fmt"
)

func (c *Client) ListVehicleInsurances(ctx context.Context) ([]VehicleInsurance, error) {
	return get[[]VehicleInsurance](ctx, c, "/api/VehicleInsurances")
}

func (c *Client) GetVehicleInsurance(ctx context.Context, id int64) (VehicleInsurance, error) {
	return get[VehicleInsurance](ctx, c, fmt.Sprintf("/api/VehicleInsurances/%d", id))
}

func (c *Client) GetVehicleInsurancesByVehicle(ctx context.Context, vehicleID int64) ([]VehicleInsurance, error) {
	return get[[]VehicleInsurance](ctx, c, fmt.Sprintf("/api/VehicleInsurances/vehicle/%d", vehicleID))
}

func (c *Client) CreateVehicleInsurance(ctx context.Context, i VehicleInsurance) (VehicleInsurance, error) {
	return post[VehicleInsurance](ctx, c, "/api/VehicleInsurances", i)
}

func (c *Client) UpdateVehicleInsurance(ctx context.Context, i VehicleInsurance) error {
	return put(ctx, c, fmt.Sprintf("/api/VehicleInsurances/%d", i.ID), i)
}

func (c *Client) DeleteVehicleInsurance(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/VehicleInsurances/%d", id))
}
