package marketplace

import (
	"context"
	"fmt"
	"net/url"
)

// catalogRoutes are the admin endpoints of one catalog collection. The
// backend capitalizes the battery and vehicle paths differently.
type catalogRoutes struct {
	create, update, delete, approve string
}

var catalogPaths = map[Resource]catalogRoutes{
	ResourceBattery: {
		create:  "/api/Battery/Create",
		update:  "/api/Battery/update/",
		delete:  "/api/Battery/delete/",
		approve: "/api/Battery/Approve/",
	},
	ResourceVehicle: {
		create:  "/api/Vehicle/Create",
		update:  "/api/Vehicle/Update/",
		delete:  "/api/Vehicle/Delete/",
		approve: "/api/Vehicle/Approve/",
	},
}

func catalogRoutesFor(kind Resource) (catalogRoutes, error) {
	r, ok := catalogPaths[kind]
	if !ok {
		return catalogRoutes{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return r, nil
}

// CreateEntity adds a battery or vehicle to the catalog. The backend expects
// a list, so payload is sent as a single-element array.
func (c *Client) CreateEntity(ctx context.Context, kind Resource, payload any) (any, error) {
	r, err := catalogRoutesFor(kind)
	if err != nil {
		return nil, err
	}
	return c.post(ctx, "create_"+string(kind), r.create, []any{payload})
}

// UpdateEntity replaces catalog entity id with payload.
func (c *Client) UpdateEntity(ctx context.Context, kind Resource, id string, payload any) (any, error) {
	r, err := catalogRoutesFor(kind)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "update_"+string(kind), r.update+url.PathEscape(id), payload)
}

// DeleteEntity removes catalog entity id.
func (c *Client) DeleteEntity(ctx context.Context, kind Resource, id string) (any, error) {
	r, err := catalogRoutesFor(kind)
	if err != nil {
		return nil, err
	}
	return c.del(ctx, "delete_"+string(kind), r.delete+url.PathEscape(id))
}

// ApproveEntity marks catalog entity id as approved.
func (c *Client) ApproveEntity(ctx context.Context, kind Resource, id string) (any, error) {
	r, err := catalogRoutesFor(kind)
	if err != nil {
		return nil, err
	}
	return c.put(ctx, "approve_"+string(kind), r.approve+url.PathEscape(id), nil)
}
