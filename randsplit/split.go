package randsplit

import (
	"fmt"

	"github.com/bluesky-social/treesplit/rng"
	"github.com/bluesky-social/treesplit/tree"
)

// A node of some root tree, along with the context which locates it. This is the reservoir "winner".
type Candidate struct {
	Context tree.Context
	Node    tree.Tree
}

// Rebuilds the root tree with `v` in place of the candidate node.
func (c Candidate) Rebuild(v tree.Tree) tree.Tree {
	return c.Context.Rebuild(v)
}

// running reservoir state, threaded through the traversal by value
type reservoir struct {
	winner Candidate
	seen   int
}

func (r reservoir) offer(ctx tree.Context, node tree.Tree, src rng.Source) reservoir {
	r.seen++
	if src.Float64() <= 1/float64(r.seen) {
		r.winner = Candidate{Context: ctx, Node: node}
	}
	return r
}

func (r reservoir) visit(ctx tree.Context, t tree.Tree, src rng.Source) reservoir {
	switch n := t.(type) {
	case *tree.Leaf:
		return r.offer(ctx, n, src)
	case *tree.Branch:
		r = r.visit(tree.NewLeftHole(n.Right(), ctx), n.Left(), src)
		r = r.visit(tree.NewRightHole(n.Left(), ctx), n.Right(), src)
		return r.offer(ctx, n, src)
	default:
		panic(fmt.Sprintf("randsplit: unexpected node type %T", t))
	}
}

func sample(t tree.Tree, src rng.Source) reservoir {
	start := reservoir{winner: Candidate{Context: tree.Top, Node: t}}
	return start.visit(tree.Top, t, src)
}

// Picks a uniformly random node of `t` in a single pass, returning it with its context.
func Sample(t tree.Tree, src rng.Source) Candidate {
	return sample(t, src).winner
}

// Replaces a uniformly random node `s` of `t` with `action(s)`. Returns the rebuilt tree and `s` itself (unmodified).
//
// Only the path from the chosen node up to the root is re-allocated; all other subtrees are shared with `t`.
func Split(action func(tree.Tree) tree.Tree, t tree.Tree, src rng.Source) (tree.Tree, tree.Tree) {
	r := sample(t, src)
	observeSplit(r.seen)
	sub := r.winner.Node
	return r.winner.Rebuild(action(sub)), sub
}

// Like Split, but for actions which can fail. If the action returns an error, it is returned as-is and the other results are nil.
func SplitError(action func(tree.Tree) (tree.Tree, error), t tree.Tree, src rng.Source) (tree.Tree, tree.Tree, error) {
	r := sample(t, src)
	observeSplit(r.seen)
	sub := r.winner.Node
	v, err := action(sub)
	if err != nil {
		return nil, nil, err
	}
	return r.winner.Rebuild(v), sub, nil
}

// Returns a uniformly random node of `t`.
func Child(t tree.Tree, src rng.Source) tree.Tree {
	_, sub := Split(identity, t, src)
	return sub
}

func identity(t tree.Tree) tree.Tree {
	return t
}
