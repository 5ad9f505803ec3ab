package main

import (
	"fmt"
	"log/slog"

	"github.com/bluesky-social/treesplit/tree"

	"github.com/urfave/cli/v2"
)

var cmdGenerate = &cli.Command{
	Name:  "generate",
	Usage: "print random trees of bounded size",
	Flags: append(append([]cli.Flag{
		maxLabelFlag,
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "number of trees to generate",
			Value:   1,
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "print an indented diagram instead of a single line",
		},
	}, sourceFlags...), generatorFlags...),
	Action: runGenerate,
}

func runGenerate(cctx *cli.Context) error {
	src := newSource(cctx)
	g, err := newGenerator(cctx, src)
	if err != nil {
		return err
	}
	out := cctx.App.Writer
	for i := range cctx.Int("count") {
		t, err := g.Next()
		if err != nil {
			return err
		}
		slog.Debug("generated tree", "index", i, "size", tree.Size(t), "depth", tree.Depth(t))
		if cctx.Bool("pretty") {
			fmt.Fprint(out, tree.Pretty(t))
		} else {
			fmt.Fprintln(out, t)
		}
	}
	return nil
}
