// Package metrics métricas Prometheus de la API: transiciones de órdenes y peticiones HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appproc "github.com/jhoicas/tekstil-api/internal/application/procurement"
)

var _ appproc.Metrics = (*Metrics)(nil)

// Metrics colectores registrados en un registry propio (los tests crean uno por caso).
type Metrics struct {
	registry *prometheus.Registry

	transitions        *prometheus.CounterVec
	transitionDuration prometheus.Histogram
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// New crea y registra los colectores.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "raw_material_order_transitions_total",
				Help: "Cambios de estado de órdenes de materia prima por resultado",
			},
			[]string{"outcome", "stock_updated"},
		),
		transitionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "raw_material_order_transition_duration_seconds",
				Help:    "Duración de la transacción de cambio de estado",
				Buckets: prometheus.DefBuckets,
			},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de peticiones HTTP",
			},
			[]string{"route", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
	m.registry.MustRegister(
		m.transitions,
		m.transitionDuration,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveTransition implementa procurement.Metrics.
func (m *Metrics) ObserveTransition(outcome string, stockUpdated bool, elapsed time.Duration) {
	m.transitions.WithLabelValues(outcome, strconv.FormatBool(stockUpdated)).Inc()
	m.transitionDuration.Observe(elapsed.Seconds())
}

// Middleware cuenta peticiones por ruta registrada (no por path, para no explotar la cardinalidad).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		method := c.Method()
		m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone /metrics en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
