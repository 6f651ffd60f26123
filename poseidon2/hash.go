package poseidon2

import (
	"fmt"

	"github.com/leansig/leansig-go/koalabear"
)

// Hasher is the tweakable hash context for one public key: both
// permutation widths plus the key parameter mixed into every call. It is
// immutable after construction and safe for concurrent use; callers in
// re-entrant environments may equally construct one per verification.
type Hasher struct {
	p16   *Params
	p24   *Params
	param Parameter
}

// NewHasher returns a hash context bound to the given key parameter.
func NewHasher(param Parameter) *Hasher {
	return &Hasher{
		p16:   NewParams16(),
		p24:   NewParams24(),
		param: param,
	}
}

// Parameter returns the key parameter this context is bound to.
func (h *Hasher) Parameter() Parameter {
	return h.param
}

// Params24 exposes the width-24 permutation instance for callers that
// compress non-Domain input, such as the message-hash step of the
// encoding layer.
func (h *Hasher) Params24() *Params {
	return h.p24
}

// Compress runs the fixed-arity compression mode: zero-pad the input to
// the permutation width, permute, add the pre-permutation input back in
// element-wise (feed-forward) and copy the leading lanes into out. The
// input must not exceed the width and out must not exceed the input
// length; violations are programming errors and panic.
func (p *Params) Compress(input []koalabear.Elem, out []koalabear.Elem) {
	if len(input) > p.width || len(out) > len(input) {
		panic(fmt.Sprintf("poseidon2: compress %d -> %d at width %d", len(input), len(out), p.width))
	}

	state := make([]koalabear.Elem, p.width)
	copy(state, input)
	p.Permute(state)

	for i := range input {
		state[i] = koalabear.Add(state[i], input[i])
	}
	copy(out, state[:len(out)])
}

// Apply evaluates the tweakable hash over one or more messages.
//
// One message uses the width-16 compression (chain steps), two messages
// the width-24 compression (tree-node combination), and anything longer
// the width-24 sponge (leaf hashing over all chain endpoints).
func (h *Hasher) Apply(tweak Tweak, messages []Domain) Domain {
	tfe := tweak.FieldElements()

	switch len(messages) {
	case 0:
		panic("poseidon2: apply with no messages")
	case 1:
		var input [Width16]koalabear.Elem
		fill(input[:], h.param[:], tfe[:], messages[0][:])
		var out Domain
		h.p16.Compress(input[:], out[:])
		return out
	case 2:
		input := make([]koalabear.Elem, 0, ParamLen+TweakLen+2*HashLen)
		input = append(input, h.param[:]...)
		input = append(input, tfe[:]...)
		input = append(input, messages[0][:]...)
		input = append(input, messages[1][:]...)
		var out Domain
		h.p24.Compress(input, out[:])
		return out
	default:
		return h.sponge(tfe, messages)
	}
}

// sponge absorbs parameter, tweak and all messages into the width-24
// state in rate-size blocks and squeezes the first HashLen lanes. The
// capacity is seeded with a length-dependent domain separator so sponge
// calls over different message counts can never collide.
func (h *Hasher) sponge(tweak [TweakLen]koalabear.Elem, messages []Domain) Domain {
	input := make([]koalabear.Elem, 0, ParamLen+TweakLen+len(messages)*HashLen)
	input = append(input, h.param[:]...)
	input = append(input, tweak[:]...)
	for _, msg := range messages {
		input = append(input, msg[:]...)
	}

	var state [Width24]koalabear.Elem
	state[SpongeRate] = koalabear.New(ParamLen)
	state[SpongeRate+1] = koalabear.New(TweakLen)
	state[SpongeRate+2] = koalabear.New(uint32(len(messages)))
	state[SpongeRate+3] = koalabear.New(HashLen)

	for idx := 0; idx < len(input); idx += SpongeRate {
		chunk := input[idx:]
		if len(chunk) > SpongeRate {
			chunk = chunk[:SpongeRate]
		}
		for i, x := range chunk {
			state[i] = koalabear.Add(state[i], x)
		}
		h.p24.Permute(state[:])
	}

	var out Domain
	copy(out[:], state[:HashLen])
	return out
}

// fill concatenates the given segments into dst and returns the number of
// elements written; remaining lanes stay zero.
func fill(dst []koalabear.Elem, segments ...[]koalabear.Elem) int {
	n := 0
	for _, seg := range segments {
		n += copy(dst[n:], seg)
	}
	return n
}
