package tree

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Computes a content identifier for the tree: a CIDv1 ("raw" codec, SHA-256) over the canonical String encoding.
//
// Structurally equal trees always have the same digest, regardless of pointer identity.
func Digest(t Tree) (cid.Cid, error) {
	builder := cid.NewPrefixV1(cid.Raw, multihash.SHA2_256)
	c, err := builder.Sum([]byte(t.String()))
	if err != nil {
		return cid.Undef, fmt.Errorf("computing tree digest: %w", err)
	}
	return c, nil
}
