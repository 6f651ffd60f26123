package poseidon2

import (
	"fmt"

	"github.com/leansig/leansig-go/koalabear"
)

// Permute applies the Poseidon2 permutation in place. The state slice
// length must equal the instance width; anything else is a programming
// error and panics.
func (p *Params) Permute(state []koalabear.Elem) {
	if len(state) != p.width {
		panic(fmt.Sprintf("poseidon2: state length %d, width %d", len(state), p.width))
	}

	half := FullRounds / 2
	round := 0

	p.externalLayer(state)

	for r := 0; r < half; r++ {
		for i := range state {
			state[i] = koalabear.Cube(koalabear.Add(state[i], p.rc[round*p.width+i]))
		}
		p.externalLayer(state)
		round++
	}

	for r := 0; r < p.partialRounds; r++ {
		state[0] = koalabear.Cube(koalabear.Add(state[0], p.rc[round*p.width]))
		internalLayer(state)
		round++
	}

	for r := 0; r < half; r++ {
		for i := range state {
			state[i] = koalabear.Cube(koalabear.Add(state[i], p.rc[round*p.width+i]))
		}
		p.externalLayer(state)
		round++
	}
}

// externalLayer applies the M4 block matrix to each 4-lane chunk and then
// adds the cross-chunk column sums, the Poseidon2 external linear layer.
func (p *Params) externalLayer(state []koalabear.Elem) {
	for off := 0; off < len(state); off += 4 {
		m4(state[off : off+4 : off+4])
	}

	var sums [4]koalabear.Elem
	for off := 0; off < len(state); off += 4 {
		for j := 0; j < 4; j++ {
			sums[j] = koalabear.Add(sums[j], state[off+j])
		}
	}
	for off := 0; off < len(state); off += 4 {
		for j := 0; j < 4; j++ {
			state[off+j] = koalabear.Add(state[off+j], sums[j])
		}
	}
}

// m4 multiplies one 4-lane chunk by the M4 matrix.
func m4(s []koalabear.Elem) {
	t0 := koalabear.Add(s[0], s[1])
	t1 := koalabear.Add(s[2], s[3])
	t2 := koalabear.Add(koalabear.Add(s[1], s[1]), t1)
	t3 := koalabear.Add(koalabear.Add(s[3], s[3]), t0)

	s[3] = koalabear.Add(koalabear.Add(t0, koalabear.Add(t1, koalabear.Add(t1, t1))), s[3])
	s[1] = koalabear.Add(koalabear.Add(koalabear.Add(t0, koalabear.Add(t0, t0)), t1), s[1])
	s[0] = koalabear.Add(t2, t3)
	s[2] = koalabear.Add(koalabear.Add(t2, t2), t3)
}

// internalLayer adds the lane sum to every lane, the cheap diffusion used
// between partial rounds.
func internalLayer(state []koalabear.Elem) {
	sum := koalabear.Zero
	for _, x := range state {
		sum = koalabear.Add(sum, x)
	}
	for i := range state {
		state[i] = koalabear.Add(state[i], sum)
	}
}
