package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/voltmarket/internal/aggregate"
	"github.com/donaldgifford/voltmarket/pkg/feed"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// FeedHandler serves the merged battery and vehicle feed.
type FeedHandler struct {
	agg Aggregator
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(a Aggregator) *FeedHandler {
	return &FeedHandler{agg: a}
}

// --- Input/Output types ---

// FeedInput filters and orders the feed.
type FeedInput struct {
	Kind string `query:"kind" doc:"Restrict to one entity kind"                           enum:"battery,vehicle,"`
	Q    string `query:"q"    doc:"Case-insensitive search over titles and specs"`
	Sort string `query:"sort" doc:"Sort order (default relevance)"                       enum:"relevance,price_asc,price_desc,rating,"`
}

// FeedOutput is the feed response. Errors lists the sources that failed;
// their entities are missing from Items.
type FeedOutput struct {
	Body struct {
		Items  []domain.Entity         `json:"items"`
		Total  int                     `json:"total"`
		Errors []aggregate.SourceError `json:"errors"`
	}
}

// EntitiesInput selects one entity kind.
type EntitiesInput struct {
	Kind string `path:"kind" doc:"Entity kind" enum:"battery,vehicle"`
}

// EntitiesOutput is the normalized collection of one kind.
type EntitiesOutput struct {
	Body struct {
		Items []domain.Entity        `json:"items"`
		Error *aggregate.SourceError `json:"error,omitempty"`
	}
}

// --- Handlers ---

// Feed returns batteries and vehicles, filtered by kind and query and sorted
// by the requested mode.
func (h *FeedHandler) Feed(ctx context.Context, input *FeedInput) (*FeedOutput, error) {
	var kind domain.Kind
	if input.Kind != "" {
		k, ok := domain.ParseKind(input.Kind)
		if !ok {
			return nil, huma.Error422UnprocessableEntity("unknown kind " + input.Kind)
		}
		kind = k
	}

	mode, ok := feed.ParseSortMode(input.Sort)
	if !ok {
		return nil, huma.Error422UnprocessableEntity("unknown sort " + input.Sort)
	}

	res := h.agg.Feed(ctx)
	items := feed.Sort(feed.Filter{Kind: kind, Query: input.Q}.Apply(res.Items), mode)

	resp := &FeedOutput{}
	resp.Body.Items = items
	resp.Body.Total = len(items)
	resp.Body.Errors = nonNilErrors(res.Errors)
	return resp, nil
}

// Entities returns every entity of one kind, as offered when composing a
// listing.
func (h *FeedHandler) Entities(ctx context.Context, input *EntitiesInput) (*EntitiesOutput, error) {
	kind, ok := domain.ParseKind(input.Kind)
	if !ok {
		return nil, huma.Error422UnprocessableEntity("unknown kind " + input.Kind)
	}

	items, srcErr := h.agg.Available(ctx, kind)

	resp := &EntitiesOutput{}
	resp.Body.Items = items
	resp.Body.Error = srcErr
	return resp, nil
}

// RegisterFeedRoutes registers feed endpoints with the Huma API.
func RegisterFeedRoutes(api huma.API, h *FeedHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-feed",
		Method:      http.MethodGet,
		Path:        "/api/v1/feed",
		Summary:     "Get the entity feed",
		Description: "Returns batteries and vehicles merged into one list, with optional kind filter, text search and sort.",
		Tags:        []string{"feed"},
	}, h.Feed)

	huma.Register(api, huma.Operation{
		OperationID: "list-entities",
		Method:      http.MethodGet,
		Path:        "/api/v1/entities/{kind}",
		Summary:     "List entities of one kind",
		Description: "Returns every normalized battery or vehicle.",
		Tags:        []string{"feed"},
	}, h.Entities)
}
