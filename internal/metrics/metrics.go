// Package metrics provides Prometheus metrics for the prediction service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects and exposes prediction and oracle Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Prediction pipeline metrics
	PredictionsTotal     *prometheus.CounterVec
	FallbacksTotal       *prometheus.CounterVec
	ReasonerLatency      prometheus.Histogram
	PredictionConfidence prometheus.Histogram

	// Anchoring metrics
	AnchorsTotal *prometheus.CounterVec

	// Oracle metrics
	VerdictsTotal *prometheus.CounterVec

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		PredictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ragebet_predictions_total",
				Help: "Total number of predictions served",
			},
			[]string{"source"}, // fresh | cached
		),
		FallbacksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ragebet_prediction_fallbacks_total",
				Help: "Total number of prediction engine fallbacks",
			},
			[]string{"cause"}, // unavailable | malformed
		),
		ReasonerLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ragebet_reasoner_latency_seconds",
				Help:    "Text reasoner call latency",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~200s
			},
		),
		PredictionConfidence: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ragebet_prediction_confidence",
				Help:    "Confidence distribution of served predictions",
				Buckets: prometheus.LinearBuckets(0, 0.1, 11),
			},
		),
		AnchorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ragebet_anchors_total",
				Help: "Total number of anchoring attempts",
			},
			[]string{"result"}, // pinned | failed
		),
		VerdictsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ragebet_verdicts_total",
				Help: "Total number of oracle verdicts",
			},
			[]string{"result"}, // correct | incorrect | pending
		),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ragebet_http_requests_total",
				Help: "Total HTTP requests by method and status",
			},
			[]string{"method", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ragebet_http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
			},
			[]string{"method"},
		),
	}

	m.registerAll()
	return m
}

func (m *Metrics) registerAll() {
	m.registry.MustRegister(
		m.PredictionsTotal,
		m.FallbacksTotal,
		m.ReasonerLatency,
		m.PredictionConfidence,
		m.AnchorsTotal,
		m.VerdictsTotal,
		m.RequestsTotal,
		m.RequestDuration,
		collectors.NewGoCollector(),
	)
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
