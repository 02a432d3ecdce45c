// Package metrics defines Prometheus metrics for voltmarket.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voltmarket"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health check metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last /healthz check succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz check succeeded, 0 otherwise.",
	})
)

// Normalization metrics.
var (
	EnvelopeShapesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "envelope_shapes_total",
		Help:      "Backend responses unwrapped, by detected envelope shape.",
	}, []string{"source", "shape"})

	NormalizedEntitiesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "normalized_entities_total",
		Help:      "Total number of records normalized into entities.",
	}, []string{"kind"})
)

// Marketplace backend metrics.
var (
	MarketplaceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "marketplace_request_duration_seconds",
		Help:      "Duration of marketplace backend calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	FetchFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fetch_failures_total",
		Help:      "Total number of failed or error-enveloped fetches, by source.",
	}, []string{"source"})
)

// Price suggestion metrics.
var (
	SuggestionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "suggestion_duration_seconds",
		Help:      "Duration of price suggestion calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend"})

	SuggestionFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "suggestion_failures_total",
		Help:      "Suggestions that errored or yielded no parseable price.",
	}, []string{"backend", "reason"})
)

// Image upload metrics.
var (
	ImageUploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of listing images uploaded.",
	})

	ImageUploadFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_upload_failures_total",
		Help:      "Total number of failed image uploads.",
	})
)

// Listing composition metrics.
var (
	ListingSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_submissions_total",
		Help:      "Listing create, update and delete calls, by operation and outcome.",
	}, []string{"operation", "outcome"})

	ValidationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_errors_total",
		Help:      "Draft validation failures, by offending field.",
	}, []string{"field"})

	CatalogMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Battery and vehicle catalog edits, by kind, operation and outcome.",
	}, []string{"kind", "operation", "outcome"})
)
