package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Upstream (TVmaze) request metrics, fed by promhttp round-tripper instrumentation
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_requests_total",
			Help: "Total number of requests sent to the TVmaze API.",
		},
		[]string{"code", "method"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tvmaze_request_duration_seconds",
			Help:    "Latency of requests sent to the TVmaze API.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)

	UpstreamInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "tvmaze_requests_in_flight",
			Help: "Number of TVmaze requests currently in flight.",
		},
	)

	UpstreamRetriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tvmaze_retries_total",
			Help: "Total number of retried TVmaze requests.",
		},
	)
)

// Pipeline metrics
var (
	PipelineRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_runs_total",
			Help: "Total number of search and episode pipeline runs.",
		},
		[]string{"pipeline", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		UpstreamInFlight,
		UpstreamRetriesTotal,
		PipelineRunsTotal,
	)
}
