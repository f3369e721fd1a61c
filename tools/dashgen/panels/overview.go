package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat returns a stat panel showing the health check status.
func HealthzStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Healthz").
		Description("Health check status (1 = ok, 0 = failing)").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`shopsite_healthz_up`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// QuotaGauge returns a gauge panel showing signed ShopSite calls in the
// current window as a percentage of the daily limit.
func QuotaGauge() *gauge.PanelBuilder {
	expr := fmt.Sprintf("shopsite_api_daily_usage / %d * 100", DailyLimit)
	return gauge.NewPanelBuilder().
		Title("Daily Quota %").
		Description("Signed ShopSite calls as percentage of the local daily limit").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(expr, "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(80, 95)).
		ColorScheme(ColorSchemeThresholds())
}

// AuthFailuresStat returns a stat panel counting failed authorization-code
// exchanges over the last day. Any value above zero usually means the
// configured auth code has expired.
func AuthFailuresStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Auth Failures (24h)").
		Description("Failed authorization-code exchanges in the last 24 hours").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`sum(increase(shopsite_auth_attempts_total{job=%q,result="failure"}[24h]))`, Job),
			"", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf(`time() - process_start_time_seconds{job=%q}`, Job),
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
