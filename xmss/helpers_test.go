package xmss

import (
	"testing"

	"github.com/leansig/leansig-go/koalabear"
	"github.com/leansig/leansig-go/poseidon2"
)

func testParameter() Parameter {
	var p Parameter
	for i := range p {
		p[i] = koalabear.New(uint32(i) + 200)
	}
	return p
}

// detDomain returns a deterministic pseudo-random Domain value for test
// fixtures.
func detDomain(seed uint32) Domain {
	var d Domain
	for i := range d {
		d[i] = koalabear.New((seed*HashLen + uint32(i) + 1) * 2654435761)
	}
	return d
}

func testMessage() [MessageLength]byte {
	var msg [MessageLength]byte
	for i := range msg {
		msg[i] = byte(i + 1)
	}
	return msg
}

// findRho searches deterministically for encoding randomness whose
// codeword meets the target sum, the same resampling a signer performs.
func findRho(t *testing.T, h *poseidon2.Hasher, epoch uint32, message [MessageLength]byte) (Randomness, []uint8) {
	t.Helper()
	for ctr := uint32(0); ctr < 5000; ctr++ {
		var rho Randomness
		for i := range rho {
			rho[i] = koalabear.New((ctr*RandLen + uint32(i) + 1) * 40503)
		}
		codeword, err := Codeword(h, epoch, rho, message)
		if err == nil {
			return rho, codeword
		}
	}
	t.Fatal("no rho meeting the target sum within the search bound")
	return Randomness{}, nil
}

// buildTestInput constructs a structurally and cryptographically valid
// (public key, signature, message) triple for the given epoch: chains are
// walked from synthetic secrets to the signed position and to their
// endpoints, and the root is taken from the recomputed path so that
// verification must succeed.
func buildTestInput(t *testing.T, epoch uint32) (*PublicKey, *Signature, [MessageLength]byte) {
	t.Helper()

	param := testParameter()
	hasher := poseidon2.NewHasher(param)
	message := testMessage()

	rho, codeword := findRho(t, hasher, epoch, message)

	sigHashes := make([]Domain, NumChains)
	chainEnds := make([]Domain, NumChains)
	for i := 0; i < NumChains; i++ {
		secret := detDomain(1000 + uint32(i))
		sigHashes[i] = WalkChain(hasher, epoch, uint8(i), 0, int(codeword[i]), secret)
		chainEnds[i] = WalkChain(hasher, epoch, uint8(i), codeword[i], (Base-1)-int(codeword[i]), sigHashes[i])
	}

	path := make([]Domain, TreeHeight)
	for level := range path {
		path[level] = detDomain(100000 + uint32(level))
	}

	leaf := LeafHash(hasher, epoch, chainEnds)
	root := RootFromPath(hasher, leaf, epoch, path)

	pk := &PublicKey{Root: root, Parameter: param}
	sig := &Signature{
		Rho:       rho,
		Hashes:    sigHashes,
		Path:      path,
		LeafIndex: epoch,
	}
	return pk, sig, message
}
