// Package aggregate fans out over the marketplace backend and combines the
// settled responses into canonical entities. A failed source contributes an
// empty collection plus a SourceError; it never fails the whole view.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/donaldgifford/voltmarket/internal/marketplace"
	"github.com/donaldgifford/voltmarket/internal/metrics"
	"github.com/donaldgifford/voltmarket/pkg/envelope"
	"github.com/donaldgifford/voltmarket/pkg/feed"
	"github.com/donaldgifford/voltmarket/pkg/normalize"
	"github.com/donaldgifford/voltmarket/pkg/record"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Source names used in SourceError and metric labels.
const (
	SourceBatteries = "batteries"
	SourceVehicles  = "vehicles"
	SourceListings  = "listings"
	SourceListing   = "listing"
)

const defaultDetailConcurrency = 4

// ErrListingNotFound is returned by ListingDetail when the backend answers
// with a failure envelope or no record.
var ErrListingNotFound = errors.New("listing not found")

// Fetcher is the subset of the marketplace client the aggregator reads from.
type Fetcher interface {
	FetchBatteries(ctx context.Context) (any, error)
	FetchVehicles(ctx context.Context) (any, error)
	FetchListings(ctx context.Context) (any, error)
	FetchEntityByID(ctx context.Context, kind marketplace.Resource, id string) (any, error)
}

// SourceError reports one sub-fetch that failed or carried an error message.
type SourceError struct {
	Source  string `json:"source" doc:"Backend collection or record that failed"`
	Message string `json:"message" doc:"Error message from the backend or transport"`
}

func (e SourceError) Error() string {
	return e.Source + ": " + e.Message
}

// Aggregator combines marketplace responses into views.
type Aggregator struct {
	fetcher     Fetcher
	concurrency int
	log         *slog.Logger
}

// Option configures the Aggregator.
type Option func(*Aggregator)

// WithConcurrency bounds the parallel per-record lookups of ListingDetail.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) {
		a.log = l
	}
}

// New creates an Aggregator over fetcher.
func New(fetcher Fetcher, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetcher:     fetcher,
		concurrency: defaultDetailConcurrency,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FeedResult is the merged home feed.
type FeedResult struct {
	Items     []domain.Entity
	Batteries []domain.Entity
	Vehicles  []domain.Entity
	Errors    []SourceError
}

type fetchResult struct {
	source string
	body   any
	err    error
}

// Feed fetches batteries and vehicles concurrently and merges them,
// batteries first.
func (a *Aggregator) Feed(ctx context.Context) FeedResult {
	batteriesCh := make(chan fetchResult, 1)
	vehiclesCh := make(chan fetchResult, 1)

	go func() {
		body, err := a.fetcher.FetchBatteries(ctx)
		batteriesCh <- fetchResult{source: SourceBatteries, body: body, err: err}
	}()
	go func() {
		body, err := a.fetcher.FetchVehicles(ctx)
		vehiclesCh <- fetchResult{source: SourceVehicles, body: body, err: err}
	}()

	var out FeedResult

	recs, srcErr := a.settle(<-batteriesCh)
	out.Batteries = a.normalize(normalize.Battery, recs)
	out.Errors = appendErr(out.Errors, srcErr)

	recs, srcErr = a.settle(<-vehiclesCh)
	out.Vehicles = a.normalize(normalize.Vehicle, recs)
	out.Errors = appendErr(out.Errors, srcErr)

	out.Items = feed.Build(out.Batteries, out.Vehicles)
	return out
}

// Available returns the normalized entities of one kind, used to seed a
// draft's selectable line items.
func (a *Aggregator) Available(ctx context.Context, kind domain.Kind) ([]domain.Entity, *SourceError) {
	n, ok := normalize.ForKind(kind)
	if !ok {
		return []domain.Entity{}, &SourceError{Source: string(kind), Message: marketplace.ErrUnknownKind.Error()}
	}

	var r fetchResult
	switch kind {
	case domain.KindBattery:
		body, err := a.fetcher.FetchBatteries(ctx)
		r = fetchResult{source: SourceBatteries, body: body, err: err}
	default:
		body, err := a.fetcher.FetchVehicles(ctx)
		r = fetchResult{source: SourceVehicles, body: body, err: err}
	}

	recs, srcErr := a.settle(r)
	return a.normalize(n, recs), srcErr
}

// ListingsResult is the normalized listing collection.
type ListingsResult struct {
	Listings []domain.ListingSummary
	Error    *SourceError
}

// Listings fetches and normalizes every listing.
func (a *Aggregator) Listings(ctx context.Context) ListingsResult {
	body, err := a.fetcher.FetchListings(ctx)
	recs, srcErr := a.settle(fetchResult{source: SourceListings, body: body, err: err})
	return ListingsResult{Listings: normalize.Listings(recs), Error: srcErr}
}

// ListingDetail is one listing with its line items resolved to entities.
type ListingDetail struct {
	Listing   domain.ListingSummary
	Record    domain.RawRecord
	Batteries []domain.Entity
	Vehicles  []domain.Entity
	Errors    []SourceError
}

type lookup struct {
	kind domain.Kind
	id   string
	pos  int // position among the listing's line items of the same kind
}

// ListingDetail fetches listing id, then looks up every referenced battery
// and vehicle concurrently. Failed lookups are reported in Errors and left
// out of the entity slices; order follows the listing's line items.
func (a *Aggregator) ListingDetail(ctx context.Context, id string) (ListingDetail, error) {
	body, err := a.fetcher.FetchEntityByID(ctx, marketplace.ResourceListing, id)
	rr := envelope.UnwrapRecord(body)
	if err != nil {
		if _, isObj := body.(map[string]any); !isObj || !rr.HasErr {
			return ListingDetail{}, fmt.Errorf("fetching listing %s: %w", id, err)
		}
	}
	if rr.HasErr || rr.Record == nil {
		metrics.FetchFailuresTotal.WithLabelValues(SourceListing).Inc()
		return ListingDetail{}, fmt.Errorf("%w: %s", ErrListingNotFound, rr.Err)
	}

	detail := ListingDetail{
		Listing:   normalize.Listing(rr.Record, 0),
		Record:    rr.Record,
		Batteries: []domain.Entity{},
		Vehicles:  []domain.Entity{},
	}

	batteryIDs, vehicleIDs := normalize.LineItemIDs(rr.Record)
	lookups := make([]lookup, 0, len(batteryIDs)+len(vehicleIDs))
	for i, bid := range batteryIDs {
		lookups = append(lookups, lookup{kind: domain.KindBattery, id: bid, pos: i})
	}
	for i, vid := range vehicleIDs {
		lookups = append(lookups, lookup{kind: domain.KindVehicle, id: vid, pos: i})
	}

	results := a.resolve(ctx, lookups)
	for i, l := range lookups {
		r := results[i]
		if r.err != nil {
			detail.Errors = append(detail.Errors, *r.err)
			continue
		}
		if l.kind == domain.KindBattery {
			detail.Batteries = append(detail.Batteries, r.entity)
		} else {
			detail.Vehicles = append(detail.Vehicles, r.entity)
		}
	}
	return detail, nil
}

type resolved struct {
	entity domain.Entity
	err    *SourceError
}

// resolve runs the lookups with bounded concurrency. results[i] belongs to
// lookups[i].
func (a *Aggregator) resolve(ctx context.Context, lookups []lookup) []resolved {
	results := make([]resolved, len(lookups))
	sem := make(chan struct{}, a.concurrency)
	var wg sync.WaitGroup

	for i, l := range lookups {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			source := string(l.kind) + ":" + l.id
			body, err := a.fetcher.FetchEntityByID(ctx, marketplace.Resource(l.kind), l.id)
			rr := envelope.UnwrapRecord(body)
			switch {
			case err != nil && body == nil:
				results[i] = resolved{err: a.fail(source, err.Error())}
			case rr.HasErr:
				results[i] = resolved{err: a.fail(source, rr.Err)}
			case err != nil:
				results[i] = resolved{err: a.fail(source, err.Error())}
			default:
				n, _ := normalize.ForKind(l.kind)
				e := n.Normalize(rr.Record, l.pos)
				if f, _ := normalize.FieldsFor(l.kind); strings.TrimSpace(record.String(rr.Record, f.ID...)) == "" {
					e.ID = l.id
				}
				metrics.NormalizedEntitiesTotal.WithLabelValues(string(l.kind)).Inc()
				results[i] = resolved{entity: e}
			}
		}()
	}
	wg.Wait()
	return results
}

// settle resolves a collection response. A transport error whose body is a
// failure envelope reports the envelope's message instead.
func (a *Aggregator) settle(r fetchResult) ([]domain.RawRecord, *SourceError) {
	res := envelope.Unwrap(r.body)
	metrics.EnvelopeShapesTotal.WithLabelValues(r.source, res.Shape.String()).Inc()

	switch {
	case res.HasErr && res.Shape != envelope.ShapeNil:
		return res.Records(), a.fail(r.source, res.Err)
	case r.err != nil:
		return []domain.RawRecord{}, a.fail(r.source, r.err.Error())
	case res.HasErr:
		return res.Records(), a.fail(r.source, res.Err)
	}
	return res.Records(), nil
}

func (a *Aggregator) fail(source, msg string) *SourceError {
	metrics.FetchFailuresTotal.WithLabelValues(source).Inc()
	a.log.Warn("marketplace fetch failed", "source", source, "error", msg)
	return &SourceError{Source: source, Message: msg}
}

func (*Aggregator) normalize(n *normalize.Normalizer, recs []domain.RawRecord) []domain.Entity {
	entities := n.All(recs)
	metrics.NormalizedEntitiesTotal.WithLabelValues(string(n.Kind())).Add(float64(len(entities)))
	return entities
}

func appendErr(errs []SourceError, e *SourceError) []SourceError {
	if e == nil {
		return errs
	}
	return append(errs, *e)
}
