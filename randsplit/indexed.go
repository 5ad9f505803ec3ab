package randsplit

import (
	"errors"
	"fmt"

	"github.com/bluesky-social/treesplit/rng"
	"github.com/bluesky-social/treesplit/tree"
)

var ErrIndexOutOfRange = errors.New("node index out of range")

// Finds the k-th node of `t` (1-based, canonical traversal order) and its context.
func Locate(t tree.Tree, k int) (Candidate, error) {
	size := tree.Size(t)
	if k < 1 || k > size {
		return Candidate{}, fmt.Errorf("%w: %d not in [1, %d]", ErrIndexOutOfRange, k, size)
	}
	var out Candidate
	i := 0
	tree.Walk(t, func(ctx tree.Context, node tree.Tree) {
		i++
		if i == k {
			out = Candidate{Context: ctx, Node: node}
		}
	})
	return out, nil
}

// Deterministic version of Split: replaces the k-th node of `t` (1-based, canonical order).
func SplitAt(action func(tree.Tree) tree.Tree, t tree.Tree, k int) (tree.Tree, tree.Tree, error) {
	c, err := Locate(t, k)
	if err != nil {
		return nil, nil, err
	}
	return c.Rebuild(action(c.Node)), c.Node, nil
}

// Two-pass alternative to Split: counts the nodes, draws a uniform index with `IntRange`, then walks to that node.
//
// Has the same distribution as Split but consumes a single random draw; mostly useful as a cross-check.
func SplitIndexed(action func(tree.Tree) tree.Tree, t tree.Tree, src rng.Source) (tree.Tree, tree.Tree) {
	size := tree.Size(t)
	out, sub, err := SplitAt(action, t, src.IntRange(1, size))
	if err != nil {
		// IntRange contract violated by the source
		panic(err)
	}
	observeSplit(size)
	return out, sub
}
