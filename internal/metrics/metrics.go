package metrics

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "content_admin"

var (
	registerOnce     sync.Once
	listingRequests  *prometheus.CounterVec
	listingDuration  *prometheus.HistogramVec
	mutationRequests *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
)

// MustRegister creates the collectors and registers them together with the
// Go runtime collectors. Until it is called every Record/Observe is a no-op.
func MustRegister() {
	registerOnce.Do(func() {
		listingRequests = registerCounterVec(prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "listing",
				Name:      "requests_total",
				Help:      "Listing requests by content type and result.",
			},
			[]string{"type", "result"},
		))
		listingDuration = registerHistogramVec(prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "listing",
				Name:      "duration_seconds",
				Help:      "Listing latency by content type.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"type"},
		))
		mutationRequests = registerCounterVec(prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "mutation",
				Name:      "requests_total",
				Help:      "Create, update and delete calls by content type, operation and result.",
			},
			[]string{"type", "op", "result"},
		))
		cacheLookups = registerCounterVec(prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Listing cache lookups by content type and outcome.",
			},
			[]string{"type", "result"},
		))

		registerRuntimeCollectors()
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveListing(contentType, result string, d time.Duration) {
	if listingRequests == nil || listingDuration == nil {
		return
	}
	t := normalizeLabel(contentType, "unknown")
	listingRequests.WithLabelValues(t, normalizeLabel(result, "unknown")).Inc()
	listingDuration.WithLabelValues(t).Observe(d.Seconds())
}

func RecordMutation(contentType, op, result string) {
	if mutationRequests == nil {
		return
	}
	mutationRequests.WithLabelValues(
		normalizeLabel(contentType, "unknown"),
		normalizeLabel(op, "unknown"),
		normalizeLabel(result, "unknown"),
	).Inc()
}

func RecordCacheLookup(contentType, result string) {
	if cacheLookups == nil {
		return
	}
	cacheLookups.WithLabelValues(normalizeLabel(contentType, "unknown"), normalizeLabel(result, "unknown")).Inc()
}

func normalizeLabel(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func registerCounterVec(vec *prometheus.CounterVec) *prometheus.CounterVec {
	if err := prometheus.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return vec
}

func registerHistogramVec(vec *prometheus.HistogramVec) *prometheus.HistogramVec {
	if err := prometheus.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return vec
}

func registerRuntimeCollectors() {
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				panic(err)
			}
		}
	}
}
