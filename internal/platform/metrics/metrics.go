// Package metrics holds the process-wide Prometheus collectors and the scrape handler
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "authorcheck"

// Outcome labels for backend calls
const (
	OutcomeOK          = "ok"
	OutcomeError       = "error"
	OutcomeUnavailable = "unavailable"
)

var (
	// Verdicts counts detect results by label
	Verdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "detect",
		Name:      "verdicts_total",
		Help:      "Detect verdicts by label",
	}, []string{"label"})

	// ShortTexts counts texts that skipped scoring for being too short
	ShortTexts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "detect",
		Name:      "short_texts_total",
		Help:      "Texts below the minimum length returned without scoring",
	})

	// PhraseHits counts heuristic phrase matches by phrase
	PhraseHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "patterns",
		Name:      "phrase_hits_total",
		Help:      "Heuristic phrase matches by phrase",
	}, []string{"phrase"})

	// BackendLatency measures classifier and paraphraser calls.
	// Labels: backend (classifier, paraphraser), outcome (ok, error, unavailable)
	BackendLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "backend",
		Name:      "latency_seconds",
		Help:      "Model backend call latency in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"backend", "outcome"})

	// BackendUp reports whether a backend initialised, 1 or 0
	BackendUp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "backend",
		Name:      "up",
		Help:      "Whether the model backend initialised at startup",
	}, []string{"backend"})
)

// ObserveBackend records one backend call that started at start
func ObserveBackend(backend, outcome string, start time.Time) {
	BackendLatency.WithLabelValues(backend, outcome).Observe(time.Since(start).Seconds())
}

// SetBackendUp flips the availability gauge for backend
func SetBackendUp(backend string, up bool) {
	v := 0.0
	if up {
		v = 1
	}
	BackendUp.WithLabelValues(backend).Set(v)
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler { return promhttp.Handler() }
