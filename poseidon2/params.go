// Package poseidon2 implements the Poseidon2 permutation over the KoalaBear
// field and the tweakable hash modes built on it.
//
// Two permutation widths are used by the leanSig scheme: width 16 for
// single-message compression (hash-chain steps) and width 24 for
// two-message compression (Merkle node combination) and for the sponge
// that absorbs variable-length input. Both are instances of the same
// round structure: an initial external linear layer, four full rounds,
// a width-dependent number of partial rounds, and four more full rounds.
// The S-box is x^3.
//
// All round-constant tables are materialized eagerly at construction and
// never mutated afterwards, so a Params or Hasher value may be shared
// read-only between concurrent verifications or constructed fresh per
// call in environments without safe one-time initialization.
package poseidon2

import (
	"fmt"

	"github.com/leansig/leansig-go/koalabear"
)

// Permutation widths.
const (
	Width16 = 16
	Width24 = 24
)

// Round structure.
const (
	// FullRounds is the total number of full rounds, split evenly before
	// and after the partial rounds.
	FullRounds = 8

	// PartialRounds16 and PartialRounds24 are the partial-round counts for
	// the two width instantiations.
	PartialRounds16 = 13
	PartialRounds24 = 21
)

// Hash geometry shared with the signature scheme.
const (
	// HashLen is the output width of the tweakable hash in field elements.
	HashLen = 7

	// ParamLen is the width of the public key parameter mixed into every
	// hash call.
	ParamLen = 5

	// TweakLen is the width of an encoded tweak.
	TweakLen = 2

	// SpongeCapacity is the number of capacity lanes of the width-24
	// sponge; SpongeRate is the remainder.
	SpongeCapacity = 9
	SpongeRate     = Width24 - SpongeCapacity
)

// rcSeed is the multiplier of the round-constant schedule (the 32-bit
// golden-ratio constant used by the reference instantiation).
const rcSeed = 0x9E3779B9

// Domain is the hash output type: a fixed-size vector of field elements.
type Domain [HashLen]koalabear.Elem

// Parameter is the per-key public parameter bound into every hash call.
type Parameter [ParamLen]koalabear.Elem

// Params holds one fully materialized permutation instance: its width,
// round counts and the flat round-constant table. The table layout is
// rc[round*width+lane] over all (full + partial + full) rounds.
type Params struct {
	width         int
	partialRounds int
	rc            []koalabear.Elem
}

// NewParams16 returns the width-16 permutation instance.
func NewParams16() *Params {
	return newParams(Width16, PartialRounds16)
}

// NewParams24 returns the width-24 permutation instance.
func NewParams24() *Params {
	return newParams(Width24, PartialRounds24)
}

func newParams(width, partialRounds int) *Params {
	// A width that is not a positive multiple of four would break the M4
	// block structure of the external layer. This is a configuration
	// error, fatal at construction, never a per-call condition.
	if width <= 0 || width%4 != 0 {
		panic(fmt.Sprintf("poseidon2: invalid width %d", width))
	}

	totalRounds := FullRounds + partialRounds
	rc := make([]koalabear.Elem, totalRounds*width)
	for round := 0; round < totalRounds; round++ {
		for lane := 0; lane < width; lane++ {
			seed := uint32(round*width+lane) * rcSeed
			rc[round*width+lane] = koalabear.New(seed)
		}
	}

	return &Params{
		width:         width,
		partialRounds: partialRounds,
		rc:            rc,
	}
}

// Width returns the permutation width in field elements.
func (p *Params) Width() int {
	return p.width
}
