package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests cuenta llamadas a API Ninjas por resultado (ok, empty, error).
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animals_upstream_requests_total",
			Help: "Total number of animals API lookups",
		},
		[]string{"outcome"},
	)

	// Fallbacks cuenta cuántas veces se usó la lista local y por qué.
	Fallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animals_fallbacks_total",
			Help: "Total number of responses served from the sample catalog",
		},
		[]string{"reason"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animals_cache_lookups_total",
			Help: "Lookup cache hits and misses",
		},
		[]string{"result"},
	)

	FetchAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "animals_fetch_attempts",
			Help:    "Attempts used per remote fetch",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
	)

	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "animals_fetch_duration_seconds",
			Help:    "Remote fetch latency in seconds, all attempts included",
			Buckets: prometheus.DefBuckets,
		},
	)

	// CardsRendered cuenta tarjetas renderizadas por vista (page, fragment).
	CardsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animals_cards_rendered_total",
			Help: "Total number of animal cards rendered",
		},
		[]string{"view"},
	)

	PageLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "animals_page_loads_total",
			Help: "Page controller loads by status",
		},
		[]string{"view", "status"},
	)
)
