package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mypresence/domain"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		state          domain.LifecycleState
		expectedStatus int
	}{
		{state: domain.StateStarting, expectedStatus: http.StatusServiceUnavailable},
		{state: domain.StateAlive, expectedStatus: http.StatusOK},
		{state: domain.StateDeregistering, expectedStatus: http.StatusServiceUnavailable},
		{state: domain.StateGone, expectedStatus: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			e := echo.New()
			RegisterOperationalHandlers(e, func() domain.LifecycleState { return tt.state }, prometheus.NewRegistry())
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, `{"state":"`+string(tt.state)+`"}`, rec.Body.String())
		})
	}
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_events_total", Help: "Test events."})
	reg.MustRegister(counter)
	counter.Add(3)

	e := echo.New()
	RegisterOperationalHandlers(e, func() domain.LifecycleState { return domain.StateAlive }, reg)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_events_total 3")
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)

	for _, path := range []string{
		"/v1/instances",
		"/v1/keys/{key}",
		"/v1/keys/{key}/self",
		"/v1/members/{channel}",
		"/v1/publish/{channel}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}
