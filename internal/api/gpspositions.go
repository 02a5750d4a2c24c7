package api

import (
	"context"
	"net/url"
	"strconv"
)

func (c *Client) CreateGpsPosition(ctx context.Context, p GpsPosition) (GpsPosition, error) {
	return post[GpsPosition](ctx, c, "/api/GpsPositions", p)
}

// GetDistance returns the distance in kilometers a vehicle travelled between
// two ISO-8601 instants.
func (c *Client) GetDistance(ctx context.Context, vehicleID int64, start, end string) (float64, error) {
	q := url.Values{}
	q.Set("vehicleId", strconv.FormatInt(vehicleID, 10))
	q.Set("start", start)
	q.Set("end", end)
	return get[float64](ctx, c, "/api/GpsPositions/distance?"+q.Encode())
}

func (c *Client) GetDistanceFromLastStop(ctx context.Context, vehicleID int64) (DistanceFromLastStop, error) {
	q := url.Values{}
	q.Set("vehicleId", strconv.FormatInt(vehicleID, 10))
	return get[DistanceFromLastStop](ctx, c, "/api/GpsPositions/distance-from-last-stop?"+q.Encode())
}
