package poseidon2

import "github.com/leansig/leansig-go/koalabear"

// Tweak domain separators. Every tweak encoding carries exactly one of
// these in its low byte, so chain, tree and message-hash contexts can
// never produce identical permutation inputs.
const (
	sepChainHash   = 0x00
	sepTreeHash    = 0x01
	sepMessageHash = 0x02
)

type tweakKind uint8

const (
	kindChain tweakKind = iota
	kindTree
	kindMessage
)

// Tweak identifies the structural position of one hash call: a chain step
// (epoch, chain index, position in chain), a tree node (level, index in
// level) or the message hash of one epoch. Tweaks form a small closed set
// of variants; a zero Tweak is the chain tweak at the origin.
type Tweak struct {
	kind  tweakKind
	epoch uint32
	chain uint8
	pos   uint8
	level uint8
	index uint32
}

// ChainTweak returns the tweak of one hash-chain step.
func ChainTweak(epoch uint32, chain, pos uint8) Tweak {
	return Tweak{kind: kindChain, epoch: epoch, chain: chain, pos: pos}
}

// TreeTweak returns the tweak of one Merkle tree node. Level 0 is the
// leaf hash, level TreeHeight is the root.
func TreeTweak(level uint8, index uint32) Tweak {
	return Tweak{kind: kindTree, level: level, index: index}
}

// MessageTweak returns the tweak of the per-epoch message hash used by
// the encoding layer.
func MessageTweak(epoch uint32) Tweak {
	return Tweak{kind: kindMessage, epoch: epoch}
}

// packed returns the tweak coordinates and separator packed into one
// integer. The widest case (chain: 32+8+8+8 bits) fits in a uint64 with
// room to spare, so the base-p expansion below never truncates.
func (t Tweak) packed() uint64 {
	switch t.kind {
	case kindChain:
		return uint64(t.epoch)<<24 | uint64(t.chain)<<16 | uint64(t.pos)<<8 | sepChainHash
	case kindTree:
		return uint64(t.level)<<40 | uint64(t.index)<<8 | sepTreeHash
	default:
		return uint64(t.epoch)<<8 | sepMessageHash
	}
}

// FieldElements encodes the tweak as TweakLen base-p digits, least
// significant digit first.
func (t Tweak) FieldElements() [TweakLen]koalabear.Elem {
	acc := t.packed()
	var out [TweakLen]koalabear.Elem
	for i := range out {
		out[i] = koalabear.Elem(acc % uint64(koalabear.P))
		acc /= uint64(koalabear.P)
	}
	return out
}
