package tree

import (
	"fmt"
)

// A node together with the context which locates it inside some root tree.
type Located struct {
	Context Context
	Node    Tree
}

// Rebuilds the root tree with `v` in place of this node.
func (l Located) Rebuild(v Tree) Tree {
	return l.Context.Rebuild(v)
}

// Calls `fn` for every node of `t` in canonical order (left subtree, right subtree, then the node itself), passing the context of each node relative to `t`.
func Walk(t Tree, fn func(ctx Context, node Tree)) {
	walk(Top, t, fn)
}

func walk(ctx Context, t Tree, fn func(ctx Context, node Tree)) {
	switch n := t.(type) {
	case *Leaf:
		fn(ctx, n)
	case *Branch:
		walk(NewLeftHole(n.right, ctx), n.left, fn)
		walk(NewRightHole(n.left, ctx), n.right, fn)
		fn(ctx, n)
	default:
		panic(fmt.Sprintf("tree: unexpected node type %T", t))
	}
}

// Every node of `t` with its context, in canonical order. The root is always the last element.
func Nodes(t Tree) []Located {
	out := make([]Located, 0, Size(t))
	Walk(t, func(ctx Context, node Tree) {
		out = append(out, Located{Context: ctx, Node: node})
	})
	return out
}
