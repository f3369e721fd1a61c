package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate returns a timeseries panel showing signed ShopSite calls per
// second, one series per endpoint.
func APICallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("ShopSite Calls Rate").
		Description("Signed ShopSite API calls per second by endpoint").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`shopsite:api_requests:rate5m`, "{{endpoint}}", "A")).
		WithTarget(PromQuery(`shopsite:api_errors:rate5m`, "{{endpoint}} errors", "B")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// APILatency returns a timeseries panel showing the p95 ShopSite round trip
// per endpoint.
func APILatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("ShopSite Latency p95").
		Description("95th percentile ShopSite round trip by endpoint").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(
				`histogram_quantile(0.95, sum(rate(shopsite_api_request_duration_seconds_bucket{job=%q}[5m])) by (le, endpoint))`,
				Job,
			),
			"{{endpoint}}", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DailyUsage returns a timeseries panel showing the rolling 24h call count
// with thresholds at 80% and 100% of the daily limit.
func DailyUsage() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Daily Usage vs Limit").
		Description(fmt.Sprintf("Rolling 24h signed call count (limit: %d)", DailyLimit)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf(`shopsite_api_daily_usage{job=%q}`, Job), "usage", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(float64(DailyLimit)*0.8, float64(DailyLimit))).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// LimitHits returns a stat panel showing how many calls the local daily
// limit rejected in the past 24 hours.
func LimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Limit Hits (24h)").
		Description("Calls rejected by the daily limit in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`increase(shopsite_api_daily_limit_hits_total{job=%q}[24h])`, Job),
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
