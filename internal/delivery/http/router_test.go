package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmacy-records/internal/delivery/http/handler"
	"pharmacy-records/internal/delivery/http/middleware"
	"pharmacy-records/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
)

func TestRouterHealthAndMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(registry, metrics.Namespace)

	router := NewRouter(
		Handlers{Report: handler.NewReportHandler(nil)},
		middleware.NewRequestContextMiddleware(),
		middleware.NewMetricsMiddleware(m),
		middleware.NewCORSMiddleware("*"),
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	).Setup()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `route="/api/v1/health"`), body)
}

func TestRouterRejectsUnknownMethod(t *testing.T) {
	router := NewRouter(
		Handlers{Report: handler.NewReportHandler(nil)},
		middleware.NewRequestContextMiddleware(),
		middleware.NewMetricsMiddleware(nil),
		middleware.NewCORSMiddleware("*"),
		nil,
	).Setup()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/doctors/D1", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
