// Package metrics exposes Prometheus instrumentation for the render
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the pipeline collectors.
type Metrics struct {
	BuildsTotal        *prometheus.CounterVec
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	ValidationErrors   prometheus.Counter
	ValidationWarnings prometheus.Counter
	EncodeFailures     prometheus.Counter
	BuildDuration      prometheus.Histogram
}

// New registers the collectors with reg. A nil registerer uses the default
// registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		BuildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "schemagen_builds_total",
			Help: "Schema builds by schema type.",
		}, []string{"schema_type"}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "schemagen_cache_hits_total",
			Help: "Renders served from cache.",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "schemagen_cache_misses_total",
			Help: "Renders that required a build.",
		}),
		ValidationErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "schemagen_validation_errors_total",
			Help: "Missing required properties across builds.",
		}),
		ValidationWarnings: factory.NewCounter(prometheus.CounterOpts{
			Name: "schemagen_validation_warnings_total",
			Help: "Missing recommended properties across builds.",
		}),
		EncodeFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "schemagen_encode_failures_total",
			Help: "JSON-LD serialization failures.",
		}),
		BuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "schemagen_build_duration_seconds",
			Help:    "Duration of full schema build passes.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
