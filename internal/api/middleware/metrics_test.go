package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/shopsite-adapter/internal/api/middleware"
	"github.com/donaldgifford/shopsite-adapter/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records 200 response",
			method: http.MethodGet,
			route:  "/api/v1/orders",
			target: "/api/v1/orders?days=7",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]int{"count": 0})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records 404 response",
			method: http.MethodGet,
			route:  "/notfound",
			target: "/notfound",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "labels by route template",
			method: http.MethodPut,
			route:  "/api/v1/inventory/:sku",
			target: "/api/v1/inventory/WIDGET-01",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusBadGateway)
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, counter.Write(m))
			assert.Greater(t, m.GetCounter().GetValue(), float64(0))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_HealthzGauge(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantGauge float64
	}{
		{name: "healthy", status: http.StatusOK, wantGauge: 1},
		{name: "unhealthy", status: http.StatusServiceUnavailable, wantGauge: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.GET("/healthz", func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, metrics.HealthzUp.Write(m))
			assert.InDelta(t, tt.wantGauge, m.GetGauge().GetValue(), 0)
		})
	}
}
