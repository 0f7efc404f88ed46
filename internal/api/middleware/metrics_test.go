package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"blogapi/pkg/metrics"
)

func TestMetricsMiddlewareRecordsStatus(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("GET", "/missing", "Not Found"))

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	after := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("GET", "/missing", "Not Found"))
	assert.Equal(t, before+1, after)
}

func TestMetricsMiddlewareDefaultsToOK(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("merhaba"))
	}))

	before := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("GET", "/", "OK"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "merhaba", rec.Body.String())

	after := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("GET", "/", "OK"))
	assert.Equal(t, before+1, after)
}
