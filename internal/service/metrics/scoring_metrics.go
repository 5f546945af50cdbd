package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	scoringOnce sync.Once

	ScoringLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sectorscope",
			Subsystem: "api",
			Name:      "latency_seconds",
			Help:      "Latency of scoring endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	ScoringErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sectorscope",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Errors by scoring endpoint",
		},
		[]string{"endpoint"},
	)
)

func RegisterScoring() {
	scoringOnce.Do(func() {
		prometheus.MustRegister(ScoringLatency, ScoringErrors)
	})
}
