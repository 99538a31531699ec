package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// Auth
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marina_logins_total",
			Help: "Login attempts by result",
		},
		[]string{"result"}, // success|failure
	)

	// Domain writes
	EntityWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marina_entity_writes_total",
			Help: "Successful catway, reservation and user writes",
		},
		[]string{"entity", "action"},
	)

	// Audit queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
	WorkerJobsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Background jobs that returned an error, panicked or were dropped",
		},
	)
)

var Handler = promhttp.Handler

var once sync.Once

// Init registers the collectors with the default registry. Safe to call more
// than once.
func Init() {
	once.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestDuration,
			LoginsTotal,
			EntityWrites,
			WorkerQueueDepth,
			WorkerJobsFailed,
		)
	})
}
