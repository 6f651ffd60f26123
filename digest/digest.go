// Package digest produces the fixed-length message digest the verifier
// consumes. Arbitrary-length input is preprocessed here, outside the
// verifier core: the core signs and verifies 32-byte digests only.
package digest

import "golang.org/x/crypto/sha3"

// Length is the digest size in bytes, matching the scheme's message
// length.
const Length = 32

// Message hashes arbitrary-length input to the 32-byte digest with
// SHAKE128. The mapping is deterministic; identical input always yields
// the identical digest on every platform.
func Message(data []byte) [Length]byte {
	var out [Length]byte
	shake := sha3.NewShake128()
	shake.Write(data)
	shake.Read(out[:])
	return out
}
