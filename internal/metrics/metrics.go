package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for QueriesTotal.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeMissing     = "missing"
)

var (
	VocabularyWords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordladder_vocabulary_words",
		Help: "Number of distinct words in the loaded vocabulary.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordladder_graph_edges",
		Help: "Number of undirected one-edit edges in the word graph.",
	})

	GraphComponents = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordladder_graph_components",
		Help: "Number of connected components, when component labelling ran.",
	})

	GraphBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordladder_graph_build_duration_seconds",
		Help:    "Time spent building the adjacency graph.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	})

	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordladder_queries_total",
		Help: "Word pair queries answered, labelled by outcome.",
	}, []string{"outcome"})

	SearchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordladder_search_expanded_words",
		Help:    "Words expanded per search.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	SearchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordladder_search_duration_seconds",
		Help:    "Per-query search latency, labelled by algorithm.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"algorithm"})
)

// WriteTextfile dumps every registered collector in the text exposition
// format to path, for node_exporter's textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
