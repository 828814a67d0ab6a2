// Package metrics exposes the module's Prometheus collectors. Collectors
// are registered through promauto at package load, so importers only need
// to observe them and wire an exporter if they want scraping.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InsertsTotal counts records inserted, labeled by index implementation.
	InsertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sstree_inserts_total",
			Help: "Total number of records inserted",
		},
		[]string{"index"},
	)

	// QueriesTotal counts kNN queries answered, labeled by index implementation.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sstree_queries_total",
			Help: "Total number of kNN queries answered",
		},
		[]string{"index"},
	)

	// InsertDuration measures per-record insert latency.
	InsertDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sstree_insert_duration_seconds",
			Help:    "Duration of single-record inserts in seconds",
			Buckets: []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 1e-2},
		},
		[]string{"index"},
	)

	// QueryDuration measures kNN query latency.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sstree_query_duration_seconds",
			Help:    "Duration of kNN queries in seconds",
			Buckets: []float64{1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 1e-2, 5e-2, 1e-1},
		},
		[]string{"index"},
	)

	// SplitsTotal counts node splits triggered by insert overflow.
	SplitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sstree_splits_total",
			Help: "Total number of node splits triggered by insertions",
		},
		[]string{"index"},
	)

	// TotalVectors tracks the number of vectors currently indexed.
	TotalVectors = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sstree_vectors_total",
			Help: "Total number of indexed vectors",
		},
		[]string{"index"},
	)
)
