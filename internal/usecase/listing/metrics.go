package listing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// fetchesStarted counts issued list requests per entity.
	fetchesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_list_fetches_total",
			Help: "Total number of list fetches issued",
		},
		[]string{"entity"},
	)

	// staleDropped counts responses discarded by the sequence guard. A nonzero
	// value is normal under rapid filter changes; a high rate suggests a slow
	// backend.
	staleDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_list_stale_responses_dropped_total",
			Help: "List responses discarded because a newer request already settled",
		},
		[]string{"entity"},
	)
)
