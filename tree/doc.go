/*
Immutable binary trees with labelled leaves, plus a zipper ("context") type for rebuilding a tree around a single replaced node.

## Terminology

node: any value of type `Tree`, either a `*Leaf` or a `*Branch`. branches count as nodes, same as leaves.

label: the integer carried by a leaf. labels are validated against a per-family upper bound ("max label") at construction time, and always fall in the range `[1, maxLabel]`.

context: a tree with exactly one "hole". a context is `Top` (the hole is the whole tree), a `*LeftHole` or a `*RightHole`. each hole variant records the sibling subtree and the parent context, so `Rebuild` can walk back up to the root.

## Traversal Order

Everything in this module which enumerates nodes (`Walk`, `Nodes`, the reservoir sampler in `randsplit`) uses the same order: left subtree, then right subtree, then the node itself. Indexes into that order are 1-based.

## Hacking

Trees are shared between callers and between old and new versions of a tree. Never add a method which mutates a `Leaf`, `Branch` or context in place.
*/
package tree
