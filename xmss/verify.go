package xmss

import (
	"github.com/leansig/leansig-go/koalabear"
	"github.com/leansig/leansig-go/poseidon2"
)

// Check verifies a signature and reports why it fails, if it fails.
//
// The sequence is fixed: validate structure, decode the codeword, walk
// every chain to its endpoint, hash the endpoints into the leaf,
// recompute the root along the authentication path, and compare it
// element-wise against the public key. The first violation terminates
// verification; only a full recomputation that reproduces the stored
// root returns nil. All lengths and ranges are validated before any
// indexing, so malformed input cannot panic.
func Check(pk *PublicKey, sig *Signature, message [MessageLength]byte, epoch uint32) error {
	if len(sig.Hashes) != NumChains {
		return ErrChainCount
	}
	if len(sig.Path) != TreeHeight {
		return ErrPathLength
	}
	if epoch >= 1<<TreeHeight {
		return ErrEpochRange
	}
	if sig.LeafIndex != epoch {
		return ErrLeafIndex
	}
	if err := checkCanonical(pk, sig); err != nil {
		return err
	}

	hasher := poseidon2.NewHasher(pk.Parameter)

	codeword, err := Codeword(hasher, epoch, sig.Rho, message)
	if err != nil {
		return err
	}

	chainEnds := make([]Domain, NumChains)
	for i, start := range sig.Hashes {
		startPos := codeword[i]
		remaining := int(Base-1) - int(startPos)
		chainEnds[i] = WalkChain(hasher, epoch, uint8(i), startPos, remaining, start)
	}

	leaf := LeafHash(hasher, epoch, chainEnds)
	root := RootFromPath(hasher, leaf, epoch, sig.Path)

	if root != pk.Root {
		return ErrRootMismatch
	}
	return nil
}

// Verify is the boolean entry point: true only for a fully valid
// signature. Verification of distinct inputs is independent and may run
// in parallel without synchronization.
func Verify(pk *PublicKey, sig *Signature, message [MessageLength]byte, epoch uint32) bool {
	return Check(pk, sig, message, epoch) == nil
}

// checkCanonical rejects any field element at or above the modulus. The
// wire codec never produces such values, but callers constructing inputs
// directly get the same strict boundary.
func checkCanonical(pk *PublicKey, sig *Signature) error {
	canonical := func(elems []koalabear.Elem) bool {
		for _, e := range elems {
			if uint32(e) >= koalabear.P {
				return false
			}
		}
		return true
	}

	if !canonical(pk.Root[:]) || !canonical(pk.Parameter[:]) || !canonical(sig.Rho[:]) {
		return ErrNonCanonical
	}
	for i := range sig.Hashes {
		if !canonical(sig.Hashes[i][:]) {
			return ErrNonCanonical
		}
	}
	for i := range sig.Path {
		if !canonical(sig.Path[i][:]) {
			return ErrNonCanonical
		}
	}
	return nil
}
