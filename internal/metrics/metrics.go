package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ExperimentsRun counts completed experiment runs by algorithm.
	ExperimentsRun = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "experiments_run_total", Help: "Completed experiment runs by algorithm."},
		[]string{"algorithm"},
	)
	// ParcelsUnscheduled counts parcels left unscheduled across runs.
	ParcelsUnscheduled = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "parcels_unscheduled_total", Help: "Parcels left unscheduled across runs."},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(ExperimentsRun)
		Registry.MustRegister(ParcelsUnscheduled)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
