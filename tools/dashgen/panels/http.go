package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

const httpDuration = "voltmarket_http_request_duration_seconds"

// httpSeries is the line panel shared by the BFF HTTP row.
func httpSeries(title, description, unit string) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		Unit(unit).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RequestRate shows API traffic in total and per route.
func RequestRate() *timeseries.PanelBuilder {
	return httpSeries("Request Rate", "BFF requests per second, total and per route", "reqps").
		WithTarget(PromQuery(`voltmarket:http_requests:rate5m`, "total", "A")).
		WithTarget(PromQuery(
			`sum(rate(voltmarket_http_requests_total{`+Job+`}[5m])) by (path)`,
			"{{path}}", "B",
		))
}

// LatencyPercentiles shows p50, p95 and p99 request latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	return httpSeries("Latency Percentiles", "BFF request duration percentiles", "s").
		WithTarget(PromQuery(P50(httpDuration), "p50", "A")).
		WithTarget(PromQuery(P95(httpDuration), "p95", "B")).
		WithTarget(PromQuery(P99(httpDuration), "p99", "C"))
}

// ErrorRate shows 5xx responses as a share of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	return httpSeries("Error Rate %", "5xx responses as a percentage of all BFF requests", "percent").
		WithTarget(PromQuery(
			`voltmarket:http_errors:rate5m / voltmarket:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
