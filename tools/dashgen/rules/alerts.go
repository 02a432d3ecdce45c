package rules

// AlertRules returns the voltmarket operational alerts.
func AlertRules() PrometheusRule {
	return resource("voltmarket-alerts", "voltmarket-alerts",
		alert("VoltmarketDown",
			`absent(up{job="voltmarket"})`, "2m", SeverityCritical,
			"VoltMarket is down",
			"The voltmarket job has been absent for more than 2 minutes."),
		alert("VoltmarketBackendUnreachable",
			`voltmarket_readyz_up == 0`, "2m", SeverityCritical,
			"Marketplace backend is unreachable",
			"The readiness check has failed to reach the marketplace backend for more than 2 minutes."),
		alert("VoltmarketHighErrorRate",
			`voltmarket:http_errors:rate5m / voltmarket:http_requests:rate5m > 0.05`, "5m", SeverityWarning,
			"High HTTP error rate on VoltMarket",
			"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
		alert("VoltmarketFetchFailures",
			`voltmarket:fetch_failures:rate5m > 0.1`, "5m", SeverityWarning,
			"Marketplace fetches are failing",
			"Backend fetches for {{ $labels.source }} have been failing at more than 0.1/s for 5 minutes."),
		alert("VoltmarketSuggestionErrors",
			`voltmarket:suggestion_errors:rate5m > 0.05`, "10m", SeverityWarning,
			"Price suggestion backend is failing",
			"The {{ $labels.backend }} suggestion backend has been returning errors for more than 10 minutes."),
		alert("VoltmarketListingSubmissionFailures",
			`voltmarket:listing_submission_failures:rate5m > 0`, "10m", SeverityWarning,
			"Listing submissions are being rejected by the backend",
			"Listing {{ $labels.operation }} requests have been failing for more than 10 minutes."),
		alert("VoltmarketImageUploadFailures",
			`voltmarket:image_upload_failures:rate5m > 0`, "5m", SeverityWarning,
			"Listing image uploads are failing",
			"Image uploads to the object store have been failing for more than 5 minutes."),
	)
}
