package api

import (
	"context"
	"fmt"
)

func (c *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	return get[[]Tenant](ctx, c, "/api/Tenants")
}

func (c *Client) GetTenant(ctx context.Context, id int64) (Tenant, error) {
	return get[Tenant](ctx, c, fmt.Sprintf("/api/Tenants/%d", id))
}

// CreateTenant posts the payload (ID ignored by the backend) and returns the
// stored record with its assigned id.
func (c *Client) CreateTenant(ctx context.Context, t Tenant) (Tenant, error) {
	return post[Tenant](ctx, c, "/api/Tenants", t)
}

// UpdateTenant issues a full PUT; the payload must carry the id.
func (c *Client) UpdateTenant(ctx context.Context, t Tenant) error {
	return put(ctx, c, fmt.Sprintf("/api/Tenants/%d", t.ID), t)
}

func (c *Client) DeleteTenant(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/Tenants/%d", id))
}
