package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NormalizedEntities returns a timeseries panel showing normalized entities
// per second by kind.
func NormalizedEntities() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Normalized Entities").
		Description("Battery and vehicle records normalized per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(voltmarket_normalized_entities_total{`+Job+`}[5m])) by (kind)`,
			"{{kind}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SubmissionOutcomes returns a timeseries panel showing listing mutations by
// operation and outcome.
func SubmissionOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Listing Submissions").
		Description("Compose, create, update and delete requests per minute by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(voltmarket_listing_submissions_total{`+Job+`}[5m])) by (operation, outcome) * 60`,
			"{{operation}} {{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CatalogMutations returns a timeseries panel showing battery and vehicle
// catalog edits by kind and outcome.
func CatalogMutations() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Edits").
		Description("Battery and vehicle create, update, delete and approve requests per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(voltmarket_catalog_mutations_total{`+Job+`}[5m])) by (kind, operation, outcome) * 60`,
			"{{kind}} {{operation}} {{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ValidationErrors returns a bar gauge panel showing which draft fields are
// rejected most often.
func ValidationErrors() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Validation Errors (24h)").
		Description("Rejected listing drafts by offending field").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(increase(voltmarket_validation_errors_total{`+Job+`}[24h])) by (field)`,
			"{{field}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ImageUploadFailures returns a stat panel showing failed image uploads in
// the past 24 hours.
func ImageUploadFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Image Upload Failures (24h)").
		Description("Listing images rejected or not stored in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(voltmarket_image_upload_failures_total{`+Job+`}[24h])`, "failed", "A")).
		WithTarget(PromQuery(`increase(voltmarket_image_uploads_total{`+Job+`}[24h])`, "stored", "B")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
