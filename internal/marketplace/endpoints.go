package marketplace

import (
	"context"
	"fmt"
	"net/url"
)

// FetchBatteries returns the raw battery collection response.
func (c *Client) FetchBatteries(ctx context.Context) (any, error) {
	return c.get(ctx, "fetch_batteries", "/api/Battery/all")
}

// FetchVehicles returns the raw vehicle collection response.
func (c *Client) FetchVehicles(ctx context.Context) (any, error) {
	return c.get(ctx, "fetch_vehicles", "/api/Vehicle/GetAll")
}

// FetchListings returns the raw listing collection response.
func (c *Client) FetchListings(ctx context.Context) (any, error) {
	return c.get(ctx, "fetch_listings", "/api/Listing/all")
}

// FetchEntityByID returns the raw single-record response for id.
func (c *Client) FetchEntityByID(ctx context.Context, kind Resource, id string) (any, error) {
	var path string
	switch kind {
	case ResourceBattery:
		path = "/api/Battery/GetById/"
	case ResourceVehicle:
		path = "/api/Vehicle/GetById/"
	case ResourceListing:
		path = "/api/Listing/GetByListingById/"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return c.get(ctx, "fetch_"+string(kind), path+url.PathEscape(id))
}

// SubmitListing creates a listing from a composed payload.
func (c *Client) SubmitListing(ctx context.Context, payload any) (any, error) {
	return c.post(ctx, "create_listing", "/api/Listing/create", payload)
}

// UpdateListing replaces the listing id with payload.
func (c *Client) UpdateListing(ctx context.Context, id string, payload any) (any, error) {
	return c.put(ctx, "update_listing", "/api/Listing/update/"+url.PathEscape(id), payload)
}

// DeleteListing deletes the listing id.
func (c *Client) DeleteListing(ctx context.Context, id string) (any, error) {
	return c.del(ctx, "delete_listing", "/api/Listing/delete/"+url.PathEscape(id))
}
