package feed

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Add Prometheus metrics
var (
	sourceAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skylight_feed_source_attempts_total",
		Help: "The total number of fetch attempts per feed source",
	}, []string{"source"})

	sourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skylight_feed_source_failures_total",
		Help: "The total number of failed or empty fetches per feed source",
	}, []string{"source"})

	loadsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skylight_feed_loads_served_total",
		Help: "The total number of loads served, labelled by winning source",
	}, []string{"source"})

	loadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skylight_feed_load_failures_total",
		Help: "The total number of loads where every source was exhausted",
	})

	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skylight_feed_load_duration_seconds",
		Help:    "Duration of full fallback-chain resolutions",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // Start at 10ms, double each bucket, 12 buckets
	})
)

type loadTimer struct {
	start time.Time
}

func newLoadTimer() *loadTimer {
	return &loadTimer{start: time.Now()}
}

func (t *loadTimer) observe() {
	loadDuration.Observe(time.Since(t.start).Seconds())
}
