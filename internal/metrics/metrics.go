// Package metrics provides Prometheus metrics for the railway map service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Poll result label values.
const (
	PollSuccess = "success"
	PollError   = "error"
	PollSkipped = "skipped"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Registry is the Prometheus registry for this metrics instance
	Registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Feed polling metrics
	TrainPollsTotal   *prometheus.CounterVec
	TrainPollDuration prometheus.Histogram

	// Entity graph metrics
	TrainsTracked    prometheus.Gauge
	TrainsCached     prometheus.Gauge
	StationsResolved prometheus.Gauge
}

// New creates and registers all application metrics with a new registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csr_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "csr_http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	trainPollsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csr_train_polls_total",
			Help: "Total number of live train feed polls by result",
		},
		[]string{"result"},
	)

	trainPollDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "csr_train_poll_duration_seconds",
		Help:    "Live train feed poll latency distribution",
		Buckets: prometheus.DefBuckets,
	})

	trainsTracked := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "csr_trains_tracked",
		Help: "Number of trains in the latest resolved snapshot",
	})

	trainsCached := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "csr_trains_cached",
		Help: "Number of train ids held in the resolution cache",
	})

	stationsResolved := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "csr_stations_resolved",
		Help: "Number of logical stations resolved from the network snapshot",
	})

	registry.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		trainPollsTotal,
		trainPollDuration,
		trainsTracked,
		trainsCached,
		stationsResolved,
	)

	return &Metrics{
		Registry:            registry,
		HTTPRequestsTotal:   httpRequestsTotal,
		HTTPRequestDuration: httpRequestDuration,
		TrainPollsTotal:     trainPollsTotal,
		TrainPollDuration:   trainPollDuration,
		TrainsTracked:       trainsTracked,
		TrainsCached:        trainsCached,
		StationsResolved:    stationsResolved,
	}
}
