package xmss

import (
	"github.com/holiman/uint256"

	"github.com/leansig/leansig-go/koalabear"
	"github.com/leansig/leansig-go/poseidon2"
)

// messageHashInputLen is the width-24 compression input of the message
// hash: rho, parameter, message tweak, message digits.
const messageHashInputLen = RandLen + ParamLen + poseidon2.TweakLen + MsgLenFE

// Codeword derives the per-chain step counts for one message.
//
// The message hash is recombined into a single integer and redigitized
// base-Base into NumChains chunks. A valid signature's chunks sum to
// exactly TargetSum; anything else means the signature was not produced
// honestly per this scheme and is rejected here, before any chain is
// walked.
func Codeword(h *poseidon2.Hasher, epoch uint32, rho Randomness, message [MessageLength]byte) ([]uint8, error) {
	hash := messageHash(h, epoch, rho, message)
	chunks := decodeChunks(hash)

	sum := 0
	for _, c := range chunks {
		if c >= Base {
			return nil, ErrChunkRange
		}
		sum += int(c)
	}
	if sum != TargetSum {
		return nil, ErrTargetSum
	}
	return chunks, nil
}

// messageHash compresses rho || parameter || message-tweak || message
// into MsgHashLen field elements with the width-24 permutation.
func messageHash(h *poseidon2.Hasher, epoch uint32, rho Randomness, message [MessageLength]byte) [MsgHashLen]koalabear.Elem {
	param := h.Parameter()
	tweak := poseidon2.MessageTweak(epoch).FieldElements()
	msgFE := encodeMessage(message)

	input := make([]koalabear.Elem, 0, messageHashInputLen)
	input = append(input, rho[:]...)
	input = append(input, param[:]...)
	input = append(input, tweak[:]...)
	input = append(input, msgFE[:]...)

	var out [MsgHashLen]koalabear.Elem
	h.Params24().Compress(input, out[:])
	return out
}

// encodeMessage interprets the 32-byte digest as a little-endian integer
// and emits MsgLenFE base-p digits, least significant first. The digest
// is exactly 256 bits, so the radix conversion runs on a uint256.
func encodeMessage(message [MessageLength]byte) [MsgLenFE]koalabear.Elem {
	var be [MessageLength]byte
	for i, b := range message {
		be[MessageLength-1-i] = b
	}
	acc := new(uint256.Int).SetBytes(be[:])

	p := uint256.NewInt(uint64(koalabear.P))
	rem := new(uint256.Int)

	var out [MsgLenFE]koalabear.Elem
	for i := range out {
		rem.Mod(acc, p)
		acc.Div(acc, p)
		out[i] = koalabear.Elem(rem.Uint64())
	}
	return out
}

// decodeChunks folds the message-hash elements into one integer (most
// significant element first) and expands it into NumChains base-Base
// digits, least significant first. Five 31-bit elements are at most 155
// bits, so the fold cannot overflow a uint256.
func decodeChunks(hash [MsgHashLen]koalabear.Elem) []uint8 {
	p := uint256.NewInt(uint64(koalabear.P))
	acc := new(uint256.Int)
	for _, e := range hash {
		acc.Mul(acc, p)
		acc.Add(acc, uint256.NewInt(uint64(e)))
	}

	base := uint256.NewInt(Base)
	rem := new(uint256.Int)

	chunks := make([]uint8, NumChains)
	for i := range chunks {
		rem.Mod(acc, base)
		acc.Div(acc, base)
		chunks[i] = uint8(rem.Uint64())
	}
	return chunks
}
