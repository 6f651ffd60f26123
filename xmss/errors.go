package xmss

import "errors"

// Verification errors. All are terminal: verification is a pure decision
// over fixed inputs and never retried. Structural errors (lengths,
// ranges, non-canonical elements) identify malformed input; ErrTargetSum
// and ErrChunkRange identify protocol-level inconsistencies in the
// encoding; ErrRootMismatch is the ordinary invalid-signature outcome.
var (
	ErrChainCount   = errors.New("xmss: wrong number of chain values")
	ErrPathLength   = errors.New("xmss: wrong authentication path length")
	ErrLeafIndex    = errors.New("xmss: leaf index does not match epoch")
	ErrEpochRange   = errors.New("xmss: epoch outside key lifetime")
	ErrNonCanonical = errors.New("xmss: field element not in canonical range")
	ErrTargetSum    = errors.New("xmss: codeword does not meet target sum")
	ErrChunkRange   = errors.New("xmss: codeword chunk out of range")
	ErrRootMismatch = errors.New("xmss: recomputed root does not match public key")
)
