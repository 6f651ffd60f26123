// Package xmss implements verification for the leanSig hash-based
// signature scheme: an XMSS-style one-time-chain construction over a
// Merkle authentication tree, hashed with Poseidon2 over the KoalaBear
// field and bound to messages through a target-sum encoding.
//
// The package is verification-only. Key generation and signing are
// stateful, randomized procedures that live outside this module; the one
// operation exposed to callers is deciding whether a signature is valid
// for a (public key, message digest, epoch) triple. Verification is a
// pure, bounded, single-threaded computation: independent calls may run
// concurrently without coordination.
package xmss

import (
	"github.com/leansig/leansig-go/koalabear"
	"github.com/leansig/leansig-go/poseidon2"
)

// Scheme parameters (leanSig lifetime-18, TargetSum W=1 instantiation).
const (
	// MessageLength is the byte length of the message digest being signed.
	MessageLength = 32

	// HashLen is the hash output width in field elements.
	HashLen = poseidon2.HashLen

	// ParamLen is the public-parameter width in field elements.
	ParamLen = poseidon2.ParamLen

	// RandLen is the width of the encoding randomness rho.
	RandLen = 6

	// NumChains is the number of one-time hash chains per signature.
	NumChains = 155

	// Base bounds the per-chain step counts: each codeword chunk lies in
	// [0, Base). W=1 means binary chunks.
	Base = 2

	// TargetSum is the value the codeword chunks must sum to. Signers
	// resample rho until the encoding hits it; verifiers reject anything
	// else outright.
	TargetSum = NumChains * (Base - 1) / 2

	// TreeHeight is the Merkle tree height; a key covers 2^TreeHeight
	// epochs.
	TreeHeight = 18

	// MsgHashLen is the message-hash output width in field elements.
	MsgHashLen = 5

	// MsgLenFE is the message digest re-encoded as base-p digits.
	MsgLenFE = 9
)

// Domain is the hash output type.
type Domain = poseidon2.Domain

// Parameter is the per-key public hash parameter.
type Parameter = poseidon2.Parameter

// Randomness is the encoding randomness rho carried in each signature.
type Randomness [RandLen]koalabear.Elem

// PublicKey is the verifier's view of a key: the Merkle root and the hash
// parameter binding all hashing to this key instance.
type PublicKey struct {
	Root      Domain
	Parameter Parameter
}

// Signature holds everything needed to reverify one epoch: the encoding
// randomness, the per-chain intermediate values the signer revealed, the
// Merkle authentication path from the epoch's leaf to the root, and the
// leaf index (which must equal the epoch).
type Signature struct {
	Rho       Randomness
	Hashes    []Domain
	Path      []Domain
	LeafIndex uint32
}

// VerifyInput bundles one complete verification request as produced by
// the wire codec.
type VerifyInput struct {
	PublicKey PublicKey
	Epoch     uint32
	Message   [MessageLength]byte
	Signature Signature
}
