package handlers

import (
	"net/http"

	"mypresence/domain"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	State domain.LifecycleState `json:"state"`
}

// NewHealthHandler reports 200 while the instance is registered and 503 otherwise.
func NewHealthHandler(state func() domain.LifecycleState) echo.HandlerFunc {
	return func(ectx echo.Context) error {
		s := state()
		status := http.StatusServiceUnavailable
		if s == domain.StateAlive {
			status = http.StatusOK
		}
		return ectx.JSON(status, HealthResponse{State: s})
	}
}

// NewMetricsHandler exposes gatherer in the Prometheus text format.
func NewMetricsHandler(gatherer prometheus.Gatherer) echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

// RegisterOperationalHandlers adds GET /healthz and GET /metrics.
func RegisterOperationalHandlers(router EchoRouter, state func() domain.LifecycleState, gatherer prometheus.Gatherer) {
	router.GET("/healthz", NewHealthHandler(state))
	router.GET("/metrics", NewMetricsHandler(gatherer))
}
