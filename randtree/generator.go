// Package randtree generates random trees of bounded size, for testing and sampling.
//
// Generation is a Boltzmann-style branching process: each node is a leaf with probability one half (with a uniform label), otherwise a branch with two independently generated children. An attempt is abandoned as soon as it reaches the size budget, and whole attempts are retried from scratch until one lands strictly between the configured minimum and maximum size.
package randtree

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bluesky-social/treesplit/rng"
	"github.com/bluesky-social/treesplit/tree"
)

var ErrInvalidConfig = errors.New("invalid random tree config")

var ErrAttemptsExhausted = errors.New("random tree attempt limit reached")

// internal only: an attempt grew past MaxSize. handled by retrying
var errBudgetExceeded = errors.New("random tree attempt exceeded size budget")

const leafProbability = 0.5

type Config struct {
	// generated trees have strictly more nodes than this
	MinSize int
	// generated trees have strictly fewer nodes than this
	MaxSize int
	// leaf labels are drawn uniformly from [1, MaxLabel]
	MaxLabel int
	// give up after this many attempts. zero means retry forever
	MaxAttempts int
}

func DefaultConfig() *Config {
	return &Config{
		MinSize:  10,
		MaxSize:  100,
		MaxLabel: 16,
	}
}

// Checks that the config can produce a tree at all. Trees always have an odd number of nodes, so there must be an odd size strictly between MinSize and MaxSize.
func (c *Config) Validate() error {
	if c.MaxLabel < 1 {
		return fmt.Errorf("%w: max label must be at least 1 (got %d)", ErrInvalidConfig, c.MaxLabel)
	}
	if c.MinSize < 0 {
		return fmt.Errorf("%w: negative min size", ErrInvalidConfig)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("%w: negative max attempts", ErrInvalidConfig)
	}
	smallest := c.MinSize + 1
	if smallest%2 == 0 {
		smallest++
	}
	if smallest >= c.MaxSize {
		return fmt.Errorf("%w: no odd tree size strictly between %d and %d", ErrInvalidConfig, c.MinSize, c.MaxSize)
	}
	return nil
}

type Generator struct {
	Config Config
	Logger *slog.Logger

	src rng.Source
}

// Creates a generator which draws from `src`. A nil config means DefaultConfig.
//
// The generator owns `src` from here on; it is not safe for concurrent use.
func NewGenerator(config *Config, src rng.Source) (*Generator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		Config: *config,
		Logger: slog.Default().With("system", "randtree"),
		src:    src,
	}, nil
}

// Generates a tree with more than MinSize and fewer than MaxSize nodes.
//
// Returns ErrAttemptsExhausted if MaxAttempts is set and no attempt succeeded.
func (g *Generator) Next() (tree.Tree, error) {
	for n := 1; g.Config.MaxAttempts == 0 || n <= g.Config.MaxAttempts; n++ {
		attemptsTotal.Inc()
		t, size, err := g.attempt(0)
		switch {
		case errors.Is(err, errBudgetExceeded), err == nil && size >= g.Config.MaxSize:
			rejectionsTotal.WithLabelValues("budget").Inc()
			continue
		case err != nil:
			return nil, err
		case size <= g.Config.MinSize:
			rejectionsTotal.WithLabelValues("undersize").Inc()
			continue
		}
		treeSize.Observe(float64(size))
		g.Logger.Debug("generated random tree", "size", size, "attempts", n)
		return t, nil
	}
	g.Logger.Warn("random tree generation gave up", "attempts", g.Config.MaxAttempts, "minSize", g.Config.MinSize, "maxSize", g.Config.MaxSize)
	return nil, fmt.Errorf("%w: %d attempts", ErrAttemptsExhausted, g.Config.MaxAttempts)
}

// Builds one candidate tree, where `cur` is the count of nodes created so far. Returns the tree and the new node count.
func (g *Generator) attempt(cur int) (tree.Tree, int, error) {
	if cur >= g.Config.MaxSize {
		return nil, cur, errBudgetExceeded
	}
	if g.src.Float64() < leafProbability {
		l, err := tree.NewLeaf(g.src.IntRange(1, g.Config.MaxLabel), g.Config.MaxLabel)
		if err != nil {
			return nil, cur, err
		}
		return l, cur + 1, nil
	}
	left, size, err := g.attempt(cur + 1)
	if err != nil {
		return nil, size, err
	}
	right, size, err := g.attempt(size)
	if err != nil {
		return nil, size, err
	}
	return tree.NewBranch(left, right), size, nil
}

// Generates a random tree with more than minSize and fewer than maxSize nodes, and leaf labels in [1, maxLabel].
//
// This retries until it succeeds, without validating the arguments: if no odd size lies strictly between minSize and maxSize it never returns. Use NewGenerator for validation and an attempt limit. Panics if maxLabel < 1.
func Generate(minSize, maxSize, maxLabel int, src rng.Source) tree.Tree {
	g := &Generator{
		Config: Config{MinSize: minSize, MaxSize: maxSize, MaxLabel: maxLabel},
		Logger: slog.Default().With("system", "randtree"),
		src:    src,
	}
	t, err := g.Next()
	if err != nil {
		panic(err)
	}
	return t
}
