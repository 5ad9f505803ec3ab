package testutil

import (
	"testing"

	"github.com/bluesky-social/treesplit/tree"
	"github.com/stretchr/testify/require"
)

// Label bound used by fixture trees.
const MaxLabel = 64

func MustLeaf(t testing.TB, label int) *tree.Leaf {
	l, err := tree.NewLeaf(label, MaxLabel)
	require.NoError(t, err)
	return l
}

func MustParse(t testing.TB, s string) tree.Tree {
	out, err := tree.Parse(s, MaxLabel)
	require.NoError(t, err)
	return out
}

// Two leaves under a root: Branch(Leaf(1), Leaf(2)).
func PairTree(t testing.TB) tree.Tree {
	return tree.NewBranch(MustLeaf(t, 1), MustLeaf(t, 2))
}

// Nine-node tree with power-of-two labels, so every node has a distinct tree.Checksum.
//
// In canonical order the checksums are: 1, 2, 3, 4, 8, 16, 24, 28, 31.
func ChecksumTree(t testing.TB) tree.Tree {
	return MustParse(t, "Branch(Branch(Leaf(1), Leaf(2)), Branch(Leaf(4), Branch(Leaf(8), Leaf(16))))")
}

// Checksums of ChecksumTree nodes, in canonical order.
var ChecksumTreeSums = []int{1, 2, 3, 4, 8, 16, 24, 28, 31}
