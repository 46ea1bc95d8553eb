package http

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the service instrumentation. Each Server owns its own
// registry so handlers can be constructed repeatedly (e.g. in tests).
type metrics struct {
	registry       *prometheus.Registry
	treesGenerated *prometheus.CounterVec
	treeNodes      prometheus.Histogram
	evaluations    prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		treesGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gptree_trees_generated_total",
				Help: "Trees generated, by generation method.",
			},
			[]string{"method"},
		),
		treeNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gptree_tree_nodes",
				Help:    "Node count of generated trees.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		evaluations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gptree_evaluations_total",
				Help: "Tree evaluations served.",
			},
		),
	}
	m.registry.MustRegister(m.treesGenerated, m.treeNodes, m.evaluations)
	return m
}
