package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_chat_turns_total",
			Help: "Total number of assistant turns by action kind",
		},
		[]string{"action", "accepted"},
	)

	ResourceMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_resource_matches_total",
			Help: "Resource matcher runs by the rule that produced the result",
		},
		[]string{"outcome"},
	)

	CatalogFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_catalog_fetches_total",
			Help: "Remote catalog fetch attempts by outcome",
		},
		[]string{"outcome"},
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hub_catalog_resources",
			Help: "Number of resources in the merged catalog",
		},
	)

	HelpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_help_requests_total",
			Help: "Help request submissions by outcome",
		},
		[]string{"outcome"},
	)

	DirectoryQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hub_directory_queries_total",
			Help: "Directory filter requests served",
		},
	)
)
