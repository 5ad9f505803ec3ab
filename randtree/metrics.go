package randtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var attemptsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "treesplit_generator_attempts_total",
	Help: "Number of random tree generation attempts",
})

var rejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "treesplit_generator_rejections_total",
	Help: "Number of discarded random tree attempts, by reason",
}, []string{"reason"})

var treeSize = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "treesplit_generator_tree_size",
	Help:    "Node count of accepted random trees",
	Buckets: prometheus.ExponentialBuckets(1, 2, 16),
})
