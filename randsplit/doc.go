/*
Package randsplit picks a uniformly random node (subtree) of an immutable tree, replaces it using a caller-supplied function, and returns both the rebuilt tree and the original subtree.

The sampler makes a single depth-first pass over the tree, doing reservoir sampling: the k-th node visited replaces the current winner with probability 1/k, which leaves the final winner uniform over all nodes (leaves and branches together). While descending it extends a `tree.Context` by one hole per level, so the winning node always comes with the context needed to rebuild the tree around it.

Nodes are visited in the canonical order of the `tree` package: left subtree, right subtree, then the node itself. Exactly one `Float64` draw is consumed per node, in that order. For example, with `Branch(Leaf(1), Leaf(2))` the draws are consumed by `Leaf(1)`, `Leaf(2)` and then the root; the draw sequence [1.0, 1.0, 0.0] selects the root, and [1.0, 1.0, 1.0] selects `Leaf(1)`.

The engine does not fail for any well-formed tree. A panic raised by the action propagates to the caller unchanged; SplitError is the variant for actions which return errors.
*/
package randsplit
