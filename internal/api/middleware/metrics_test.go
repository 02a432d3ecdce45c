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

	mw "github.com/donaldgifford/voltmarket/internal/api/middleware"
	"github.com/donaldgifford/voltmarket/internal/metrics"
)

func counterValue(t *testing.T, method, route, status string) float64 {
	t.Helper()

	counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(method, route, status)
	require.NoError(t, err)

	m := &io_prometheus_client.Metric{}
	require.NoError(t, counter.Write(m))
	return m.GetCounter().GetValue()
}

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
			name:   "records 200 response by route template",
			method: http.MethodGet,
			route:  "/api/v1/listings/:id",
			target: "/api/v1/listings/abc-123",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id")})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records status of returned HTTP error",
			method: http.MethodPost,
			route:  "/api/v1/compare",
			target: "/api/v1/compare",
			handler: func(_ echo.Context) error {
				return echo.NewHTTPError(http.StatusUnprocessableEntity, "mixed kinds")
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "records POST request",
			method: http.MethodPost,
			route:  "/api/v1/listings",
			target: "/api/v1/listings",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusCreated)
			},
			wantStatus: http.StatusCreated,
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
			assert.Greater(t, counterValue(t, tt.method, tt.route, statusStr), float64(0))

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

func TestMetricsMiddleware_HealthGauges(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		gauge     prometheus.Gauge
		wantValue float64
	}{
		{name: "healthz up", path: "/healthz", status: http.StatusOK, gauge: metrics.HealthzUp, wantValue: 1},
		{name: "readyz down", path: "/readyz", status: http.StatusServiceUnavailable, gauge: metrics.ReadyzUp, wantValue: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := counterValue(t, http.MethodGet, tt.path, strconv.Itoa(tt.status))

			e := echo.New()
			e.Use(mw.Metrics())
			e.GET(tt.path, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))
			require.Equal(t, tt.status, rec.Code)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, tt.gauge.Write(m))
			assert.InDelta(t, tt.wantValue, m.GetGauge().GetValue(), 0.0001)

			after := counterValue(t, http.MethodGet, tt.path, strconv.Itoa(tt.status))
			assert.InDelta(t, before, after, 0.0001, "health check paths are not counted")
		})
	}
}
