package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// InventoryUpdates returns a timeseries panel of inventory writes split by
// result.
func InventoryUpdates() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Inventory Updates").
		Description("Inventory writes per second by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(rate(shopsite_inventory_updates_total{job=%q}[5m])) by (result)`, Job),
			"{{result}}", "A",
		)).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("sum")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AuthAttempts returns a timeseries panel of authorization-code exchanges
// split by result.
func AuthAttempts() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Auth Exchanges").
		Description("Authorization-code exchanges by result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(shopsite_auth_attempts_total{job=%q}[1h])) by (result)`, Job),
			"{{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
