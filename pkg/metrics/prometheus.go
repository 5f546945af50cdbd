package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	scoringRuns     *prometheus.CounterVec
	providerFetches *prometheus.CounterVec
	providerErrors  *prometheus.CounterVec
	topScore        *prometheus.GaugeVec
	latency         *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		scoringRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sectorscope_scoring_runs_total",
				Help: "Total number of scoring runs by outcome",
			},
			[]string{"status"},
		),
		providerFetches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sectorscope_provider_fetches_total",
				Help: "Total number of successful provider fetches",
			},
			[]string{"provider"},
		),
		providerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sectorscope_provider_errors_total",
				Help: "Total number of provider fetch failures",
			},
			[]string{"provider"},
		),
		topScore: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sectorscope_top_opportunity_score",
				Help: "Opportunity score of the current top-ranked sector",
			},
			[]string{"sector"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sectorscope_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordScoringRun records a scoring run outcome.
func (r *Recorder) RecordScoringRun(status string) {
	r.scoringRuns.WithLabelValues(status).Inc()
}

// RecordProviderFetch records a successful provider fetch.
func (r *Recorder) RecordProviderFetch(provider string) {
	r.providerFetches.WithLabelValues(provider).Inc()
}

// RecordProviderError records a provider fetch failure.
func (r *Recorder) RecordProviderError(provider string) {
	r.providerErrors.WithLabelValues(provider).Inc()
}

// RecordTopScore records the leading sector's opportunity score.
func (r *Recorder) RecordTopScore(sector string, score float64) {
	r.topScore.WithLabelValues(sector).Set(score)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
