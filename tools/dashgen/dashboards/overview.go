// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/voltmarket/tools/dashgen/panels"
)

// BuildOverview constructs the VoltMarket Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("VoltMarket Overview").
		Uid("voltmarket-overview").
		Tags([]string{"voltmarket"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.EntitiesStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Marketplace backend.
	b.WithRow(dashboard.NewRowBuilder("Marketplace Backend").
		WithPanel(panels.BackendLatency()).
		WithPanel(panels.FetchFailures()).
		WithPanel(panels.EnvelopeShapes()))

	// Row 4: Listings.
	b.WithRow(dashboard.NewRowBuilder("Listings").
		WithPanel(panels.NormalizedEntities()).
		WithPanel(panels.SubmissionOutcomes()).
		WithPanel(panels.CatalogMutations()).
		WithPanel(panels.ValidationErrors()).
		WithPanel(panels.ImageUploadFailures()))

	// Row 5: Price suggestions.
	b.WithRow(dashboard.NewRowBuilder("Price Suggestions").
		WithPanel(panels.SuggestionLatency()).
		WithPanel(panels.SuggestionFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
