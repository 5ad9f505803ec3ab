package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bluesky-social/treesplit/randtree"
	"github.com/bluesky-social/treesplit/rng"
	"github.com/bluesky-social/treesplit/tree"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"
)

var sourceFlags = []cli.Flag{
	&cli.Int64Flag{
		Name:    "seed",
		Usage:   "random seed; defaults to current time",
		EnvVars: []string{"TREESPLIT_SEED"},
	},
	&cli.BoolFlag{
		Name:  "faker",
		Usage: "draw random numbers via gofakeit instead of math/rand",
	},
}

var generatorFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "min-size",
		Usage: "generated trees have more nodes than this",
		Value: randtree.DefaultConfig().MinSize,
	},
	&cli.IntFlag{
		Name:  "max-size",
		Usage: "generated trees have fewer nodes than this",
		Value: randtree.DefaultConfig().MaxSize,
	},
	&cli.IntFlag{
		Name:  "max-attempts",
		Usage: "give up generating after this many attempts (0 for unlimited)",
		Value: 10_000,
	},
}

var maxLabelFlag = &cli.IntFlag{
	Name:    "max-label",
	Usage:   "leaf labels are in the range [1, max-label]",
	Value:   randtree.DefaultConfig().MaxLabel,
	EnvVars: []string{"TREESPLIT_MAX_LABEL"},
}

func newSource(cctx *cli.Context) rng.Source {
	seed := cctx.Int64("seed")
	if !cctx.IsSet("seed") {
		seed = time.Now().UnixNano()
	}
	slog.Info("random source", "seed", seed, "faker", cctx.Bool("faker"))
	if cctx.Bool("faker") {
		return rng.FromFaker(gofakeit.New(seed))
	}
	return rng.New(seed)
}

func newGenerator(cctx *cli.Context, src rng.Source) (*randtree.Generator, error) {
	return randtree.NewGenerator(&randtree.Config{
		MinSize:     cctx.Int("min-size"),
		MaxSize:     cctx.Int("max-size"),
		MaxLabel:    cctx.Int("max-label"),
		MaxAttempts: cctx.Int("max-attempts"),
	}, src)
}

// Parses the --tree flag if present, otherwise generates a random tree.
func inputTree(cctx *cli.Context, src rng.Source) (tree.Tree, error) {
	if s := cctx.String("tree"); s != "" {
		return tree.Parse(s, cctx.Int("max-label"))
	}
	g, err := newGenerator(cctx, src)
	if err != nil {
		return nil, err
	}
	return g.Next()
}

func printTree(w io.Writer, label string, t tree.Tree, pretty bool) {
	if pretty {
		fmt.Fprintf(w, "%s:\n%s", label, tree.Pretty(t))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, t)
}
