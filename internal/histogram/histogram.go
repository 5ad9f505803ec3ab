// Package histogram runs repeated random-child draws against a fixed tree and buckets the outcomes, as a check that the sampler is uniform over nodes.
//
// Outcomes are bucketed by tree.Digest, so structurally identical subtrees at different positions share a bucket; each bucket's expected share is its multiplicity divided by the node count.
package histogram

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/bluesky-social/treesplit/internal/ticker"
	"github.com/bluesky-social/treesplit/randsplit"
	"github.com/bluesky-social/treesplit/rng"
	"github.com/bluesky-social/treesplit/tree"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ipfs/go-cid"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	Trials  int
	Workers int
	// worker i draws from rng.New(Seed + i)
	Seed int64
	// zero disables periodic progress logging
	ProgressInterval time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Trials:  100_000,
		Workers: runtime.NumCPU(),
		Seed:    1,
	}
}

type Bucket struct {
	Digest cid.Cid
	// first node with this digest, in canonical order
	Node tree.Tree
	// 1-based canonical index of Node
	Index int
	// number of nodes sharing this digest
	Multiplicity int
	Count        int
	Expected     float64
}

type Result struct {
	Trials     int
	Nodes      int
	Buckets    []Bucket
	ChiSquared float64
}

// Degrees of freedom for the chi-squared statistic.
func (r *Result) DegreesOfFreedom() int {
	return len(r.Buckets) - 1
}

type digestCache struct {
	cache *lru.Cache[tree.Tree, cid.Cid]
}

func newDigestCache(size int) (*digestCache, error) {
	c, err := lru.New[tree.Tree, cid.Cid](size)
	if err != nil {
		return nil, err
	}
	return &digestCache{cache: c}, nil
}

// nodes are keyed by identity; equal subtrees at different positions are hashed once each
func (dc *digestCache) digest(t tree.Tree) (cid.Cid, error) {
	if c, ok := dc.cache.Get(t); ok {
		return c, nil
	}
	c, err := tree.Digest(t)
	if err != nil {
		return cid.Undef, err
	}
	dc.cache.Add(t, c)
	return c, nil
}

// Runs config.Trials calls of randsplit.Child against `t`, spread over config.Workers goroutines. A nil config means DefaultConfig.
func Run(ctx context.Context, t tree.Tree, config *Config) (*Result, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Trials < 1 {
		return nil, fmt.Errorf("trials must be positive (got %d)", config.Trials)
	}
	workers := config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > config.Trials {
		workers = config.Trials
	}
	logger := slog.Default().With("system", "histogram")

	nodes := tree.Nodes(t)
	dc, err := newDigestCache(len(nodes))
	if err != nil {
		return nil, err
	}

	progress := ticker.NewProgress(config.Trials, logger)
	if config.ProgressInterval > 0 {
		pctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go progress.Report(pctx, config.ProgressInterval)
	}

	results := make([]map[cid.Cid]int, workers)
	eg, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		trials := config.Trials / workers
		if i < config.Trials%workers {
			trials++
		}
		eg.Go(func() error {
			src := rng.New(config.Seed + int64(i))
			counts := make(map[cid.Cid]int)
			for n := range trials {
				if n%1024 == 0 {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					if n > 0 {
						progress.Add(1024)
					}
				}
				c, err := dc.digest(randsplit.Child(t, src))
				if err != nil {
					return err
				}
				counts[c]++
			}
			if trials > 0 {
				progress.Add((trials-1)%1024 + 1)
			}
			results[i] = counts
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	counts := make(map[cid.Cid]int)
	for _, m := range results {
		for c, n := range m {
			counts[c] += n
		}
	}

	res := &Result{
		Trials: config.Trials,
		Nodes:  len(nodes),
	}
	index := make(map[cid.Cid]int)
	for i, n := range nodes {
		c, err := dc.digest(n.Node)
		if err != nil {
			return nil, err
		}
		if j, ok := index[c]; ok {
			res.Buckets[j].Multiplicity++
			continue
		}
		index[c] = len(res.Buckets)
		res.Buckets = append(res.Buckets, Bucket{
			Digest:       c,
			Node:         n.Node,
			Index:        i + 1,
			Multiplicity: 1,
			Count:        counts[c],
		})
	}
	for i := range res.Buckets {
		b := &res.Buckets[i]
		b.Expected = float64(config.Trials) * float64(b.Multiplicity) / float64(len(nodes))
		res.ChiSquared += (float64(b.Count) - b.Expected) * (float64(b.Count) - b.Expected) / b.Expected
	}

	logger.Debug("histogram complete", "trials", res.Trials, "nodes", res.Nodes, "buckets", len(res.Buckets), "chi2", res.ChiSquared)
	return res, nil
}
