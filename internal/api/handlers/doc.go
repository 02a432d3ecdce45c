// Package handlers implements the HTTP handlers of the voltmarket API.
package handlers

import (
	"context"

	"github.com/donaldgifford/voltmarket/internal/aggregate"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// Aggregator is the read side of the marketplace the handlers serve from.
type Aggregator interface {
	Feed(ctx context.Context) aggregate.FeedResult
	Available(ctx context.Context, kind domain.Kind) ([]domain.Entity, *aggregate.SourceError)
	Listings(ctx context.Context) aggregate.ListingsResult
	ListingDetail(ctx context.Context, id string) (aggregate.ListingDetail, error)
}

func nonNilErrors(errs []aggregate.SourceError) []aggregate.SourceError {
	if errs == nil {
		return []aggregate.SourceError{}
	}
	return errs
}
