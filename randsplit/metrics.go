package randsplit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var splitsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "treesplit_splits_total",
	Help: "Number of random splits performed",
})

var splitTreeSize = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "treesplit_split_tree_size",
	Help:    "Node count of trees passed to random split",
	Buckets: prometheus.ExponentialBuckets(1, 4, 10),
})

func observeSplit(size int) {
	splitsTotal.Inc()
	splitTreeSize.Observe(float64(size))
}
