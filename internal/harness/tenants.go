package harness

import (
	"context"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
)

// TenantsSuite exercises CRUD on /api/Tenants.
func TenantsSuite(client *api.Client, log logging.Logger) Suite {
	fx := NewFixtures(client, log)
	payload := NewTenantPayload()
	var created api.Tenant

	steps := []Step{
		{Name: "create tenant", Run: func(ctx context.Context) error {
			got, err := client.CreateTenant(ctx, payload)
			if err != nil {
				return err
			}
			fx.Track(KindTenant, got.ID)
			if err := check(got.ID > 0, "created tenant has no id"); err != nil {
				return err
			}
			if err := check(got.Name == payload.Name, "name = %q, want %q", got.Name, payload.Name); err != nil {
				return err
			}
			if err := check(got.Slug == payload.Slug, "slug = %q, want %q", got.Slug, payload.Slug); err != nil {
				return err
			}
			created = got
			return nil
		}},
		{Name: "list tenants includes created", Run: func(ctx context.Context) error {
			tenants, err := client.ListTenants(ctx)
			if err != nil {
				return err
			}
			for _, t := range tenants {
				if t.ID == created.ID {
					return nil
				}
			}
			return check(false, "tenant %d missing from list of %d", created.ID, len(tenants))
		}},
		{Name: "get tenant by id", Run: func(ctx context.Context) error {
			got, err := client.GetTenant(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.Name == created.Name, "name = %q, want %q", got.Name, created.Name)
		}},
		{Name: "update tenant", Run: func(ctx context.Context) error {
			created.Address = "456 Updated Ave " + uniqueTag()
			if err := client.UpdateTenant(ctx, created); err != nil {
				return err
			}
			got, err := client.GetTenant(ctx, created.ID)
			if err != nil {
				return err
			}
			return check(got.Address == created.Address, "address = %q, want %q", got.Address, created.Address)
		}},
		{Name: "delete tenant", Run: func(ctx context.Context) error {
			// Delete a second throwaway tenant so the one the read steps used
			// stays around until teardown.
			extra, err := client.CreateTenant(ctx, NewTenantPayload())
			if err != nil {
				return err
			}
			if err := client.DeleteTenant(ctx, extra.ID); err != nil {
				return err
			}
			_, err = client.GetTenant(ctx, extra.ID)
			return expectNotFound(err)
		}},
	}

	errorCases := []Step{
		{Name: "get unknown tenant returns 404", Run: func(ctx context.Context) error {
			_, err := client.GetTenant(ctx, unknownID)
			return expectNotFound(err)
		}},
		{Name: "update unknown tenant returns 404", Run: func(ctx context.Context) error {
			t := NewTenantPayload()
			t.ID = unknownID
			return expectNotFound(client.UpdateTenant(ctx, t))
		}},
		{Name: "delete unknown tenant returns 404", Run: func(ctx context.Context) error {
			return expectNotFound(client.DeleteTenant(ctx, unknownID))
		}},
		{Name: "create tenant with empty payload returns 400", Run: func(ctx context.Context) error {
			_, err := client.CreateTenant(ctx, api.Tenant{})
			return expectBadRequest(err)
		}},
	}

	return Suite{Name: SuiteTenants, Steps: steps, ErrorCases: errorCases, Teardown: fx.Teardown}
}
