// Package metrics exposes Prometheus instrumentation for the solver and the
// HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akhenakh/kepler"
)

// Metrics owns its registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	// Solves by the method that produced the answer
	Solves *prometheus.CounterVec

	// Newton runs rescued by bisection
	Fallbacks prometheus.Counter

	// Iterations spent per solve
	Iterations *prometheus.HistogramVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with every collector registered on a fresh
// registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kepler_solves_total",
			Help: "Total Kepler equation solves by method",
		}, []string{"method"}),

		Fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "kepler_solver_fallbacks_total",
			Help: "Newton-Raphson runs that did not converge and fell back to bisection",
		}),

		Iterations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kepler_solver_iterations",
			Help:    "Iterations spent per solve by method",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 50, 100, 300, 1000},
		}, []string{"method"}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kepler_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"path", "method", "code"}),

		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kepler_http_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveResult records one dispatcher result.
func (m *Metrics) ObserveResult(res kepler.Result) {
	if m == nil {
		return
	}
	method := string(res.Method)
	m.Solves.WithLabelValues(method).Inc()
	m.Iterations.WithLabelValues(method).Observe(float64(res.Iterations))
	if res.Fallback {
		m.Fallbacks.Inc()
	}
}

// ObserveSolution records a run of a single named solver.
func (m *Metrics) ObserveSolution(method kepler.Method, sol kepler.Solution) {
	if m == nil {
		return
	}
	m.Solves.WithLabelValues(string(method)).Inc()
	m.Iterations.WithLabelValues(string(method)).Observe(float64(sol.Iterations))
}

// Handler returns the exposition handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		path := NormalizeRoute(r.URL.Path)
		m.HTTPRequests.WithLabelValues(path, r.Method, strconv.Itoa(rw.statusCode)).Inc()
		m.HTTPDuration.WithLabelValues(path, r.Method).Observe(time.Since(start).Seconds())
	})
}

var knownRoutes = map[string]bool{
	"/healthz":        true,
	"/metrics":        true,
	"/v1/solve":       true,
	"/v1/solve/batch": true,
	"/v1/hohmann":     true,
}

// NormalizeRoute keeps the label set bounded: unknown paths collapse to
// "other".
func NormalizeRoute(path string) string {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if knownRoutes[path] {
		return path
	}
	return "other"
}
