package tree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Renders a tree as an indented, multi-line diagram. Intended for debugging and CLI output; use String for a single-line form which Parse can read back.
func Pretty(t Tree) string {
	root := treeprint.NewWithRoot(nodeLabel(t))
	if b, ok := t.(*Branch); ok {
		addChildren(root, b)
	}
	return root.String()
}

func addChildren(out treeprint.Tree, b *Branch) {
	for _, child := range []Tree{b.left, b.right} {
		switch n := child.(type) {
		case *Leaf:
			out.AddNode(nodeLabel(n))
		case *Branch:
			addChildren(out.AddBranch(nodeLabel(n)), n)
		default:
			panic(fmt.Sprintf("tree: unexpected node type %T", child))
		}
	}
}

func nodeLabel(t Tree) string {
	switch n := t.(type) {
	case *Leaf:
		return n.String()
	case *Branch:
		return fmt.Sprintf("Branch (size=%d sum=%d)", Size(n), Checksum(n))
	default:
		panic(fmt.Sprintf("tree: unexpected node type %T", t))
	}
}
