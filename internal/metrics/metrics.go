// Package metrics exposes booking flow and HTTP metrics in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "agrivault"

// Metrics owns its own registry so tests and multiple servers do not collide on the
// global default.
type Metrics struct {
	registry *prometheus.Registry

	attempts         *prometheus.CounterVec
	attemptDuration  *prometheus.HistogramVec
	fundsAtRisk      prometheus.Counter
	finalizations    *prometheus.CounterVec
	finalizeDuration prometheus.Histogram

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "attempts_total",
			Help:      "Booking attempts by terminal stage and failure code.",
		}, []string{"stage", "code"}),
		attemptDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "attempt_duration_seconds",
			Help:      "Wall time from booking request to terminal stage.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		fundsAtRisk: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "paid_not_reserved_total",
			Help:      "Failed attempts that had already transferred funds.",
		}),
		finalizations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "finalizations_total",
			Help:      "Backend finalization outcomes.",
		}, []string{"outcome"}),
		finalizeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "finalization_duration_seconds",
			Help:      "Duration of the backend finalization call.",
			Buckets:   prometheus.DefBuckets,
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.attempts,
		m.attemptDuration,
		m.fundsAtRisk,
		m.finalizations,
		m.finalizeDuration,
		m.requests,
		m.requestDuration,
	)

	return m
}

// AttemptFinished records a terminal booking flow.
func (m *Metrics) AttemptFinished(flow domain.BookingFlow, elapsed time.Duration) {
	code := ""
	if flow.Failure != nil {
		code = flow.Failure.Code
		if flow.Failure.FundsTransferred {
			m.fundsAtRisk.Inc()
		}
	}
	m.attempts.WithLabelValues(string(flow.Stage), code).Inc()
	m.attemptDuration.WithLabelValues(string(flow.Stage)).Observe(elapsed.Seconds())
}

func (m *Metrics) FinalizationObserved(outcome domain.FinalizationOutcome, elapsed time.Duration) {
	m.finalizations.WithLabelValues(string(outcome)).Inc()
	m.finalizeDuration.Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Instrument counts requests for route. route is the mux pattern, not the raw path, to
// keep label cardinality bounded.
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		m.requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
