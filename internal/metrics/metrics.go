// Package metrics counts page loads and failures with Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"courtside/internal/api"
	"courtside/internal/loader"
)

// Metrics tracks loader activity per view.
//
// All metrics use the courtside_ prefix and live on a private registry so
// nothing leaks in from the default process collectors unless asked for.
type Metrics struct {
	registry *prometheus.Registry

	// PageLoads counts applied pages (or panel values) by view
	PageLoads *prometheus.CounterVec

	// ItemsLoaded counts rows appended by view
	ItemsLoaded *prometheus.CounterVec

	// LoadFailures counts failed requests by view and error kind
	LoadFailures *prometheus.CounterVec

	// FetchDuration tracks successful request latency
	FetchDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on a fresh registry.
// Go runtime and process collectors are added when withRuntime is set.
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		PageLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "courtside_page_loads_total",
				Help: "Total pages applied to a view",
			},
			[]string{"view"},
		),
		ItemsLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "courtside_items_loaded_total",
				Help: "Total items appended to a view",
			},
			[]string{"view"},
		),
		LoadFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "courtside_load_failures_total",
				Help: "Total failed requests by view and kind",
			},
			[]string{"view", "kind"}, // kind: "network", "parse", "other"
		),
		FetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "courtside_fetch_duration_seconds",
				Help:    "Duration of successful requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"view"},
		),
	}

	reg.MustRegister(m.PageLoads, m.ItemsLoaded, m.LoadFailures, m.FetchDuration)
	if withRuntime {
		reg.MustRegister(
			prometheus.NewGoCollector(),
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		)
	}

	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObservePage records one applied page.
func (m *Metrics) ObservePage(stats loader.PageStats) {
	if m == nil {
		return
	}
	m.PageLoads.WithLabelValues(stats.View).Inc()
	m.ItemsLoaded.WithLabelValues(stats.View).Add(float64(stats.Count))
	m.FetchDuration.WithLabelValues(stats.View).Observe(stats.Elapsed.Seconds())
}

// LogFailure counts one failed request.
func (m *Metrics) LogFailure(context string, err error) {
	if m == nil {
		return
	}
	m.LoadFailures.WithLabelValues(context, api.Kind(err)).Inc()
}
