package xmss

import "github.com/leansig/leansig-go/poseidon2"

// LeafHash hashes all chain endpoints of one epoch into the epoch's
// Merkle leaf, using the sponge mode keyed by the level-0 tree tweak.
func LeafHash(h *poseidon2.Hasher, epoch uint32, chainEnds []Domain) Domain {
	return h.Apply(poseidon2.TreeTweak(0, epoch), chainEnds)
}

// RootFromPath recomputes the Merkle root from a leaf and its
// authentication path. At each level the current node is combined with
// the sibling using the two-message compression keyed by the parent's
// (level, index) tree tweak; the bit of leafIndex at that level decides
// whether the current node is the left or the right child.
//
// Callers validate len(path) against the tree height; a zero-length path
// returns the leaf itself.
func RootFromPath(h *poseidon2.Hasher, leaf Domain, leafIndex uint32, path []Domain) Domain {
	current := leaf
	index := leafIndex

	for level, sibling := range path {
		var children [2]Domain
		if index&1 == 0 {
			children = [2]Domain{current, sibling}
		} else {
			children = [2]Domain{sibling, current}
		}
		index >>= 1

		tweak := poseidon2.TreeTweak(uint8(level)+1, index)
		current = h.Apply(tweak, children[:])
	}
	return current
}
