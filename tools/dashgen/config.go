package main

import "errors"

// KnownMetrics is the set of metric names exported by voltmarket plus the
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"voltmarket_http_request_duration_seconds": true,
	"voltmarket_http_requests_total":           true,

	// Health metrics.
	"voltmarket_healthz_up": true,
	"voltmarket_readyz_up":  true,

	// Normalization metrics.
	"voltmarket_envelope_shapes_total":     true,
	"voltmarket_normalized_entities_total": true,

	// Marketplace backend metrics.
	"voltmarket_marketplace_request_duration_seconds": true,
	"voltmarket_fetch_failures_total":                 true,

	// Price suggestion metrics.
	"voltmarket_suggestion_duration_seconds": true,
	"voltmarket_suggestion_failures_total":   true,

	// Listing metrics.
	"voltmarket_image_uploads_total":         true,
	"voltmarket_image_upload_failures_total": true,
	"voltmarket_listing_submissions_total":   true,
	"voltmarket_validation_errors_total":     true,
	"voltmarket_catalog_mutations_total":     true,

	// Recording rules.
	"voltmarket:http_requests:rate5m":               true,
	"voltmarket:http_errors:rate5m":                 true,
	"voltmarket:fetch_failures:rate5m":              true,
	"voltmarket:suggestion_errors:rate5m":           true,
	"voltmarket:listing_submission_failures:rate5m": true,
	"voltmarket:image_upload_failures:rate5m":       true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
