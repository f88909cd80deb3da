package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ainotes_client",
			Name:      "searches_total",
			Help:      "Search requests issued after the debounce window.",
		},
	)

	searchesStaleTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ainotes_client",
			Name:      "searches_stale_dropped_total",
			Help:      "Search responses discarded because a newer query superseded them.",
		},
	)

	tasksStartedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ainotes_client",
			Name:      "tasks_started_total",
			Help:      "AI tasks accepted by a registry.",
		},
		[]string{"kind"},
	)

	tasksFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ainotes_client",
			Name:      "tasks_failed_total",
			Help:      "AI tasks that settled with a failure.",
		},
		[]string{"kind"},
	)
)
