package main

import (
	"fmt"
	"log/slog"

	"github.com/bluesky-social/treesplit/randsplit"
	"github.com/bluesky-social/treesplit/tree"

	"github.com/urfave/cli/v2"
)

var cmdSplit = &cli.Command{
	Name:  "split",
	Usage: "replace a random subtree, printing the result and the removed subtree",
	Flags: append(append([]cli.Flag{
		maxLabelFlag,
		&cli.StringFlag{
			Name:  "tree",
			Usage: "input tree, eg 'Branch(Leaf(1), Leaf(2))'; a random tree is generated if not set",
		},
		&cli.StringFlag{
			Name:  "replace",
			Usage: "replacement subtree; if not set the tree is left unchanged",
		},
		&cli.IntFlag{
			Name:  "index",
			Usage: "replace the node at this 1-based position (left, right, self order) instead of a random one",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "print indented diagrams instead of single lines",
		},
	}, sourceFlags...), generatorFlags...),
	Action: runSplit,
}

func runSplit(cctx *cli.Context) error {
	src := newSource(cctx)
	t, err := inputTree(cctx, src)
	if err != nil {
		return err
	}

	action := func(s tree.Tree) tree.Tree { return s }
	if r := cctx.String("replace"); r != "" {
		repl, err := tree.Parse(r, cctx.Int("max-label"))
		if err != nil {
			return fmt.Errorf("parsing replacement: %w", err)
		}
		action = func(tree.Tree) tree.Tree { return repl }
	}

	var out, sub tree.Tree
	if cctx.IsSet("index") {
		out, sub, err = randsplit.SplitAt(action, t, cctx.Int("index"))
		if err != nil {
			return err
		}
	} else {
		out, sub = randsplit.Split(action, t, src)
	}
	slog.Debug("split tree", "size", tree.Size(t), "subtreeSize", tree.Size(sub), "resultSize", tree.Size(out))

	w := cctx.App.Writer
	pretty := cctx.Bool("pretty")
	printTree(w, "input", t, pretty)
	printTree(w, "subtree", sub, pretty)
	printTree(w, "result", out, pretty)
	return nil
}
