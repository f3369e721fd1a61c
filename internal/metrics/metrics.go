// Package metrics defines Prometheus metrics for shopsite-adapter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shopsite"

// HTTP metrics for the adapter's own API.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})
)

// ShopSite API metrics.
var (
	ShopSiteRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total signed ShopSite API requests by endpoint and outcome (ok, error, malformed).",
	}, []string{"endpoint", "outcome"})

	ShopSiteRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of ShopSite API round trips in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	AuthAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Authorization-code exchanges by result.",
	}, []string{"result"})

	InventoryUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_updates_total",
		Help:      "Inventory updates by result.",
	}, []string{"result"})

	ShopSiteDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "api_daily_usage",
		Help:      "Signed calls made in the current 24-hour quota window.",
	})

	ShopSiteDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_daily_limit_hits_total",
		Help:      "Total number of calls rejected by the local daily quota.",
	})
)
