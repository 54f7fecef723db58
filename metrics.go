package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for one run. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	reg *prometheus.Registry

	rounds        prometheus.Counter
	improvements  prometheus.Counter
	bestScore     prometheus.Gauge
	bestShapes    prometheus.Gauge
	roundDuration prometheus.Histogram
	renders       *prometheus.CounterVec
}

// NewMetrics registers the collectors on a private registry, labelled with
// the run ID and shape kind.
func NewMetrics(runID string, kind ShapeKind) *Metrics {
	labels := prometheus.Labels{"run_id": runID, "shape": kind.String()}

	m := &Metrics{
		reg: prometheus.NewRegistry(),
		rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "lisa_rounds_total",
			Help:        "Completed selection rounds.",
			ConstLabels: labels,
		}),
		improvements: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "lisa_improvements_total",
			Help:        "Rounds that replaced the best-ever candidate.",
			ConstLabels: labels,
		}),
		bestScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "lisa_best_score",
			Help:        "Distance between the target and the best-ever candidate.",
			ConstLabels: labels,
		}),
		bestShapes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "lisa_best_shapes",
			Help:        "Number of shapes in the best-ever candidate.",
			ConstLabels: labels,
		}),
		roundDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "lisa_round_duration_seconds",
			Help:        "Wall time of one mutate/score/select/collapse round.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.0005, 2, 16),
		}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "lisa_viewer_requests_total",
			Help:        "Viewer requests by endpoint.",
			ConstLabels: labels,
		}, []string{"endpoint"}),
	}

	m.reg.MustRegister(m.rounds, m.improvements, m.bestScore, m.bestShapes, m.roundDuration, m.renders)
	return m
}

func (m *Metrics) observeRound(r RoundReport) {
	if m == nil {
		return
	}
	m.rounds.Inc()
	if r.Improved {
		m.improvements.Inc()
	}
	m.bestScore.Set(float64(r.Score))
	m.bestShapes.Set(float64(r.Shapes))
	m.roundDuration.Observe(r.Duration.Seconds())
}

func (m *Metrics) observeRequest(endpoint string) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(endpoint).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
