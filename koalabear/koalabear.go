// Package koalabear implements arithmetic over the KoalaBear prime field.
//
// KoalaBear is the 31-bit prime field with
//
//	p = 2^31 - 2^24 + 1 = 2130706433
//
// used by the Poseidon2 permutation in the leanSig signature scheme. Every
// Elem held or returned by this package is canonical, i.e. in [0, p).
package koalabear

// P is the field modulus.
const P uint32 = 1<<31 - 1<<24 + 1 // 2130706433

// Elem is a KoalaBear field element in canonical form.
type Elem uint32

// Field constants.
const (
	Zero Elem = 0
	One  Elem = 1
)

const mask31 = 1<<31 - 1

// New returns the canonical element for an arbitrary uint32.
func New(v uint32) Elem {
	return Elem(v % P)
}

// Uint32 returns the canonical representative.
func (e Elem) Uint32() uint32 {
	return uint32(e)
}

// Add returns (a + b) mod p.
func Add(a, b Elem) Elem {
	s := uint32(a) + uint32(b)
	if s >= P {
		s -= P
	}
	return Elem(s)
}

// Sub returns (a - b) mod p.
func Sub(a, b Elem) Elem {
	if a >= b {
		return a - b
	}
	return Elem(uint32(a) + P - uint32(b))
}

// Neg returns (-a) mod p.
func Neg(a Elem) Elem {
	if a == 0 {
		return 0
	}
	return Elem(P - uint32(a))
}

// Mul returns (a * b) mod p.
func Mul(a, b Elem) Elem {
	return Elem(reduce62(uint64(a) * uint64(b)))
}

// Cube returns a^3 mod p, the Poseidon2 S-box.
func Cube(a Elem) Elem {
	return Mul(Mul(a, a), a)
}

// Pow returns a^e mod p by binary exponentiation.
func Pow(a Elem, e uint32) Elem {
	result := One
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = Mul(result, base)
		}
		base = Mul(base, base)
		e >>= 1
	}
	return result
}

// Inverse returns a^(-1) mod p via Fermat's little theorem (a^(p-2)).
// Inverse(0) returns 0.
func Inverse(a Elem) Elem {
	return Pow(a, P-2)
}

// reduce62 reduces any value below 2^62 into [0, p).
//
// It repeatedly folds the bits above position 31 using the identity
// 2^31 = 2^24 - 1 (mod p). Each fold shrinks the value by at least six
// bits, so six folds bring a 62-bit product below p + 2^25 and a single
// conditional subtraction lands in canonical range. The fold count is
// fixed, keeping the work pattern independent of the operand values.
func reduce62(x uint64) uint32 {
	for i := 0; i < 6; i++ {
		lo := x & mask31
		hi := x >> 31
		x = lo + hi<<24 - hi
	}
	r := uint32(x)
	if r >= P {
		r -= P
	}
	return r
}
