package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// BackendLatency returns a timeseries panel showing p95 marketplace backend
// latency per operation.
func BackendLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Backend Latency (p95)").
		Description("95th percentile marketplace backend request duration by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(P95("voltmarket_marketplace_request_duration_seconds", "operation"), "{{operation}}", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FetchFailures returns a timeseries panel showing failed or error-carrying
// backend fetches per source.
func FetchFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Fetch Failures").
		Description("Backend fetches that failed or carried an error message, per second by source").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`voltmarket:fetch_failures:rate5m`, "{{source}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EnvelopeShapes returns a timeseries panel showing which response envelope
// shapes the backend answers with.
func EnvelopeShapes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Envelope Shapes").
		Description("Backend responses per second by source and unwrapped envelope shape").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum(rate(voltmarket_envelope_shapes_total{`+Job+`}[5m])) by (source, shape)`,
			"{{source}} {{shape}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
