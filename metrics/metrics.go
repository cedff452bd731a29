// Package metrics holds the Prometheus collectors served on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the fleetdash collectors plus the Go and process collectors.
	Registry = prometheus.NewRegistry()

	PageViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetdash_page_views_total",
			Help: "Rendered pages by route.",
		},
		[]string{"page"},
	)

	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fleetdash_query_duration_seconds",
			Help:    "Time spent loading, filtering and sorting an entity list.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"entity"},
	)

	Exports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetdash_exports_total",
			Help: "XLSX exports by entity.",
		},
		[]string{"entity"},
	)

	LiveTicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fleetdash_live_ticks_total",
			Help: "Published live widget snapshots.",
		},
	)

	SSEClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fleetdash_sse_clients",
			Help: "Connected /events streams.",
		},
	)

	// MessagingConnected is 1 while the broker link is up.
	MessagingConnected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fleetdash_messaging_connected",
			Help: "Messaging link status (1=connected, 0=not connected).",
		},
	)

	MessagesPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fleetdash_messages_published_total",
			Help: "Messages published by result.",
		},
		[]string{"result"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		PageViews,
		QueryDuration,
		Exports,
		LiveTicks,
		SSEClients,
		MessagingConnected,
		MessagesPublished,
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
