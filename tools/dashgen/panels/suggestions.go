package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SuggestionLatency returns a timeseries panel showing p50 and p95 price
// suggestion latency per backend.
func SuggestionLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Suggestion Latency").
		Description("Price suggestion call duration percentiles by backend").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(P50("voltmarket_suggestion_duration_seconds", "backend"), "p50 {{backend}}", "A")).
		WithTarget(PromQuery(P95("voltmarket_suggestion_duration_seconds", "backend"), "p95 {{backend}}", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SuggestionFailures returns a timeseries panel showing suggestion failures
// by reason: backend errors and answers with no recognizable price.
func SuggestionFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Suggestion Failures").
		Description("Suggestion errors and unparseable answers per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(voltmarket_suggestion_failures_total{`+Job+`}[5m])) by (backend, reason)`,
			"{{backend}} {{reason}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
