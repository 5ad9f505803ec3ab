package tree

import (
	"errors"
	"fmt"
)

var ErrInvalidLabel = errors.New("leaf label out of range")

// Represents a node in an immutable binary tree: either a `*Leaf` or a `*Branch`.
//
// The variant set is closed; code outside this package should use a type switch over both variants.
type Tree interface {
	fmt.Stringer
	isTree()
}

type Leaf struct {
	label int
}

type Branch struct {
	left  Tree
	right Tree
}

func (*Leaf) isTree()   {}
func (*Branch) isTree() {}

// Creates a new leaf. Returns an error wrapping ErrInvalidLabel unless 1 <= label <= maxLabel.
func NewLeaf(label, maxLabel int) (*Leaf, error) {
	if maxLabel < 1 {
		return nil, fmt.Errorf("%w: max label must be at least 1, got %d", ErrInvalidLabel, maxLabel)
	}
	if label < 1 || label > maxLabel {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidLabel, label, maxLabel)
	}
	return &Leaf{label: label}, nil
}

// Creates a new branch node. Both children are referenced, not copied.
//
// Panics if either child is nil; a nil Tree is never a valid tree.
func NewBranch(left, right Tree) *Branch {
	if left == nil || right == nil {
		panic("tree: NewBranch called with nil child")
	}
	return &Branch{left: left, right: right}
}

func (l *Leaf) Label() int {
	return l.label
}

func (b *Branch) Left() Tree {
	return b.left
}

func (b *Branch) Right() Tree {
	return b.right
}

// Total number of nodes in the tree, counting both leaves and branches.
func Size(t Tree) int {
	switch n := t.(type) {
	case *Leaf:
		return 1
	case *Branch:
		return 1 + Size(n.left) + Size(n.right)
	default:
		panic(fmt.Sprintf("tree: unexpected node type %T", t))
	}
}

// Length of the longest path from the root to a leaf. A single leaf has depth zero.
func Depth(t Tree) int {
	switch n := t.(type) {
	case *Leaf:
		return 0
	case *Branch:
		return 1 + max(Depth(n.left), Depth(n.right))
	default:
		panic(fmt.Sprintf("tree: unexpected node type %T", t))
	}
}

// Sum of all leaf labels reachable from this node.
//
// This is a cheap node "fingerprint" for test trees which are built so that every node has a distinct sum. For a collision-resistant identifier, use Digest.
func Checksum(t Tree) int {
	switch n := t.(type) {
	case *Leaf:
		return n.label
	case *Branch:
		return Checksum(n.left) + Checksum(n.right)
	default:
		panic(fmt.Sprintf("tree: unexpected node type %T", t))
	}
}

// Structural equality. Two trees are equal if they have the same shape and the same leaf labels, regardless of pointer identity.
func Equal(a, b Tree) bool {
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && x.label == y.label
	case *Branch:
		y, ok := b.(*Branch)
		return ok && Equal(x.left, y.left) && Equal(x.right, y.right)
	default:
		return false
	}
}
