// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/shopsite-adapter/tools/dashgen/panels"
)

// UID is the stable Grafana identifier of the overview dashboard.
const UID = "shopsite-adapter-overview"

// BuildOverview constructs the adapter overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("ShopSite Adapter Overview").
		Uid(UID).
		Tags([]string{"shopsite", "shopsite-adapter"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.AuthFailuresStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("ShopSite API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APILatency()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	b.WithRow(dashboard.NewRowBuilder("Writes & Auth").
		WithPanel(panels.InventoryUpdates()).
		WithPanel(panels.AuthAttempts()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
