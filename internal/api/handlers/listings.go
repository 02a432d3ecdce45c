package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/voltmarket/internal/aggregate"
	"github.com/donaldgifford/voltmarket/pkg/feed"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// ListingsHandler handles listing query endpoints.
type ListingsHandler struct {
	agg Aggregator
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(a Aggregator) *ListingsHandler {
	return &ListingsHandler{agg: a}
}

// --- Input/Output types ---

// ListListingsInput filters and orders the listing search results.
type ListListingsInput struct {
	Q    string `query:"q"    doc:"Case-insensitive search over title, description, address, tag and item counts"`
	Sort string `query:"sort" doc:"Sort order (default relevance)"                                              enum:"relevance,price_asc,price_desc,"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.ListingSummary `json:"listings"`
		Total    int                     `json:"total"`
		Error    *aggregate.SourceError  `json:"error,omitempty"`
	}
}

// ListingIDInput addresses a single listing.
type ListingIDInput struct {
	ID string `path:"id" doc:"Listing ID"`
}

// GetListingOutput is a listing with its line items resolved.
type GetListingOutput struct {
	Body struct {
		Listing   domain.ListingSummary   `json:"listing"`
		Batteries []domain.Entity         `json:"batteries"`
		Vehicles  []domain.Entity         `json:"vehicles"`
		Errors    []aggregate.SourceError `json:"errors"`
	}
}

// --- Handlers ---

// ListListings returns the normalized listings matching the query.
func (h *ListingsHandler) ListListings(ctx context.Context, input *ListListingsInput) (*ListListingsOutput, error) {
	mode, ok := feed.ParseSortMode(input.Sort)
	if !ok {
		return nil, huma.Error422UnprocessableEntity("unknown sort " + input.Sort)
	}

	res := h.agg.Listings(ctx)
	listings := feed.SortListings(feed.FilterListings(res.Listings, input.Q), mode)

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Total = len(listings)
	resp.Body.Error = res.Error
	return resp, nil
}

// GetListing returns one listing with its batteries and vehicles.
func (h *ListingsHandler) GetListing(ctx context.Context, input *ListingIDInput) (*GetListingOutput, error) {
	detail, err := h.agg.ListingDetail(ctx, input.ID)
	if err != nil {
		if errors.Is(err, aggregate.ErrListingNotFound) {
			return nil, huma.Error404NotFound(err.Error())
		}
		return nil, huma.Error502BadGateway(err.Error())
	}

	resp := &GetListingOutput{}
	resp.Body.Listing = detail.Listing
	resp.Body.Batteries = detail.Batteries
	resp.Body.Vehicles = detail.Vehicles
	resp.Body.Errors = nonNilErrors(detail.Errors)
	return resp, nil
}

// RegisterListingRoutes registers listing query endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "Search listings",
		Description: "Returns listings normalized for search results, optionally filtered and sorted by price.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Description: "Returns a listing with its battery and vehicle line items resolved.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.GetListing)
}
