package rules

// RecordingRules returns the rate expressions shared by the dashboard and
// the alert rules.
func RecordingRules() PrometheusRule {
	return resource("voltmarket-recording-rules", "voltmarket-recording",
		record("voltmarket:http_requests:rate5m",
			`sum(rate(voltmarket_http_requests_total[5m]))`),
		record("voltmarket:http_errors:rate5m",
			`sum(rate(voltmarket_http_requests_total{status=~"5.."}[5m]))`),
		record("voltmarket:fetch_failures:rate5m",
			`sum(rate(voltmarket_fetch_failures_total[5m])) by (source)`),
		record("voltmarket:suggestion_errors:rate5m",
			`sum(rate(voltmarket_suggestion_failures_total{reason="error"}[5m])) by (backend)`),
		record("voltmarket:listing_submission_failures:rate5m",
			`sum(rate(voltmarket_listing_submissions_total{outcome="failure"}[5m])) by (operation)`),
		record("voltmarket:image_upload_failures:rate5m",
			`rate(voltmarket_image_upload_failures_total[5m])`),
	)
}
