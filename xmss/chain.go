package xmss

import "github.com/leansig/leansig-go/poseidon2"

// WalkChain advances a one-way hash chain by steps applications of the
// single-message compression, starting from start at position startPos.
// The chain tweak's position coordinate is startPos+i+1 at iteration i,
// so walking in two legs composes: walking n1 steps and then n2 steps
// from where the first leg ended equals walking n1+n2 steps.
//
// steps == 0 returns start unchanged. The walk is a plain sequential
// loop; nothing is cached across calls.
func WalkChain(h *poseidon2.Hasher, epoch uint32, chainIndex, startPos uint8, steps int, start Domain) Domain {
	current := start
	for i := 0; i < steps; i++ {
		tweak := poseidon2.ChainTweak(epoch, chainIndex, startPos+uint8(i)+1)
		current = h.Apply(tweak, []Domain{current})
	}
	return current
}
