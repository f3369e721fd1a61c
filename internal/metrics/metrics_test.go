package metrics

import (
	"testing"

	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ShopSiteRequestsTotal)
	assert.NotNil(t, ShopSiteRequestDuration)
	assert.NotNil(t, AuthAttemptsTotal)
	assert.NotNil(t, InventoryUpdatesTotal)
	assert.NotNil(t, ShopSiteDailyUsage)
	assert.NotNil(t, ShopSiteDailyLimitHits)
}

func TestShopSiteRequestsTotal_Labels(t *testing.T) {
	t.Parallel()

	c, err := ShopSiteRequestsTotal.GetMetricWithLabelValues("metrics_test.cgi", "ok")
	require.NoError(t, err)
	c.Inc()

	m := &io_prometheus_client.Metric{}
	require.NoError(t, c.Write(m))
	assert.InDelta(t, 1, m.GetCounter().GetValue(), 0)

	_, err = ShopSiteRequestsTotal.GetMetricWithLabelValues("only-one-label")
	require.Error(t, err)
}
