package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds; rendering can take minutes.
	latencyBuckets = []float64{
		10, 50, 100, 250, // HTTP and status polls
		500, 1000, 2500, 5000, // completion and speech
		10000, 30000, 60000, // slow completion, normalization
		120000, 300000, // rendering
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutorgate_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	AskLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tutorgate_ask_latency_ms",
			Help:    "Time to produce the text answer in milliseconds",
			Buckets: latencyBuckets,
		},
	)

	StageTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutorgate_stage_total",
			Help: "Background stage outcomes",
		},
		[]string{"stage", "outcome"},
	)

	StageLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tutorgate_stage_latency_ms",
			Help:    "Background stage duration in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"stage"},
	)

	Sessions = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "tutorgate_sessions",
			Help: "Number of live sessions",
		},
	)

	SessionsSwept = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "tutorgate_sessions_swept_total",
			Help: "Sessions removed by the retention sweeper",
		},
	)
)

type MetricsConfig struct {
	Enabled       bool
	EnableLatency bool
}

var (
	Config   MetricsConfig
	initOnce sync.Once
)

func Initialize(cfg MetricsConfig) {
	Config = cfg
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	})
}

// Handler serves the private registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registerer})
}

func Gatherer() prometheus.Gatherer {
	return registry
}
