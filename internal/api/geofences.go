package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func (c *Client) ListGeofences(ctx context.Context) ([]Geofence, error) {
	return get[[]Geofence](ctx, c, "/api/Geofences")
}

func (c *Client) GetGeofence(ctx context.Context, id int64) (Geofence, error) {
	return get[Geofence](ctx, c, fmt.Sprintf("/api/Geofences/%d", id))
}

func (c *Client) GetGeofencesByVehicle(ctx context.Context, vehicleID int64) ([]Geofence, error) {
	return get[[]Geofence](ctx, c, fmt.Sprintf("/api/Geofences/vehicle/%d", vehicleID))
}

func (c *Client) CreateGeofence(ctx context.Context, g Geofence) (Geofence, error) {
	return post[Geofence](ctx, c, "/api/Geofences", g)
}

func (c *Client) UpdateGeofence(ctx context.Context, g Geofence) error {
	return put(ctx, c, fmt.Sprintf("/api/Geofences/%d", g.ID), g)
}

func (c *Client) DeleteGeofence(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/Geofences/%d", id))
}

// GeofencesContaining returns the geofences whose circle contains the point.
func (c *Client) GeofencesContaining(ctx context.Context, latitude, longitude float64) ([]Geofence, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	return get[[]Geofence](ctx, c, "/api/Geofences/contains?"+q.Encode())
}
