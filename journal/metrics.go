package journal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daybook_core",
			Name:      "mutations_total",
			Help:      "Repository mutations applied, by collection and operation.",
		},
		[]string{"collection", "op"},
	)

	persistFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daybook_core",
			Name:      "persist_failures_total",
			Help:      "Mutations whose store write failed after the in-memory apply.",
		},
		[]string{"collection"},
	)

	corruptLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "daybook_core",
			Name:      "corrupt_loads_total",
			Help:      "Loads that found undecodable bytes and degraded to empty.",
		},
		[]string{"collection"},
	)
)
