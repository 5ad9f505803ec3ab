package tree

import (
	"fmt"
)

// A tree with exactly one hole in it: everything needed to rebuild a full tree once the hole is filled.
//
// Contexts form a linked chain from the hole up to the root. Each extension allocates one new hole value which references (does not copy) its parent context and the sibling subtree, so the shape of a context value is the same at any depth.
type Context interface {
	// Fills the hole with `v` and returns the resulting root tree.
	Rebuild(v Tree) Tree
	// Number of branches between the hole and the root.
	Depth() int
	isContext()
}

// The hole is the entire tree.
type NoContext struct{}

// The hole is the left child of a branch whose right child is the sibling subtree.
type LeftHole struct {
	sibling Tree
	parent  Context
}

// The hole is the right child of a branch whose left child is the sibling subtree.
type RightHole struct {
	sibling Tree
	parent  Context
}

// The root context. Rebuilding it returns the value unchanged.
var Top Context = NoContext{}

func (NoContext) isContext()  {}
func (*LeftHole) isContext()  {}
func (*RightHole) isContext() {}

func NewLeftHole(sibling Tree, parent Context) *LeftHole {
	if sibling == nil || parent == nil {
		panic("tree: NewLeftHole called with nil argument")
	}
	return &LeftHole{sibling: sibling, parent: parent}
}

func NewRightHole(sibling Tree, parent Context) *RightHole {
	if sibling == nil || parent == nil {
		panic("tree: NewRightHole called with nil argument")
	}
	return &RightHole{sibling: sibling, parent: parent}
}

func (NoContext) Rebuild(v Tree) Tree {
	return v
}

func (h *LeftHole) Rebuild(v Tree) Tree {
	return h.parent.Rebuild(NewBranch(v, h.sibling))
}

func (h *RightHole) Rebuild(v Tree) Tree {
	return h.parent.Rebuild(NewBranch(h.sibling, v))
}

func (NoContext) Depth() int {
	return 0
}

func (h *LeftHole) Depth() int {
	return 1 + h.parent.Depth()
}

func (h *RightHole) Depth() int {
	return 1 + h.parent.Depth()
}

func (h *LeftHole) Sibling() Tree { return h.sibling }

func (h *LeftHole) Parent() Context { return h.parent }

func (h *RightHole) Sibling() Tree { return h.sibling }

func (h *RightHole) Parent() Context { return h.parent }

func (NoContext) String() string {
	return "Top"
}

func (h *LeftHole) String() string {
	return fmt.Sprintf("Left(_, %s) in %s", h.sibling, h.parent)
}

func (h *RightHole) String() string {
	return fmt.Sprintf("Right(%s, _) in %s", h.sibling, h.parent)
}
