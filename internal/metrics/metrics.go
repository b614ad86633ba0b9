// Package metrics exposes Prometheus collectors for the catalog API.
//
// Collectors are registered on the default registry and served by
// promhttp.Handler at /metrics.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Clark-Hu/movie-catalog/internal/catalog"
)

var (
	// HTTPRequestsTotal counts served requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "HTTP requests served, by method, route pattern and status.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"method", "route"},
	)

	// OperationsTotal counts catalog mutations by outcome.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "Catalog mutations by operation and outcome (ok, not_found, conflict, error).",
		},
		[]string{"operation", "outcome"},
	)

	// Movies is the current catalog size.
	Movies = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_movies",
		Help: "Movies currently held in the catalog.",
	})

	// Collections is the current number of named collections.
	Collections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_collections",
		Help: "Named collections currently held in the catalog.",
	})
)

// Outcome classifies a catalog error for the operations counter.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, catalog.ErrNotFound):
		return "not_found"
	case errors.Is(err, catalog.ErrAlreadyExists):
		return "conflict"
	default:
		return "error"
	}
}

// RecordOperation counts one catalog operation.
func RecordOperation(operation string, err error) {
	OperationsTotal.WithLabelValues(operation, Outcome(err)).Inc()
}

// ObserveCatalog updates the size gauges.
func ObserveCatalog(movies, collections int) {
	Movies.Set(float64(movies))
	Collections.Set(float64(collections))
}

// Instrument records request count and latency keyed by the chi route
// pattern, so path parameters do not explode label cardinality.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
