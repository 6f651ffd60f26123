package xmss

import (
	"errors"
	"testing"

	"github.com/leansig/leansig-go/koalabear"
	"github.com/leansig/leansig-go/poseidon2"
)

func TestEncodeMessageRoundsDownToDigits(t *testing.T) {
	// A digest below p must produce itself as the first digit and zeros
	// after it.
	var msg [MessageLength]byte
	msg[0] = 42 // little-endian: the integer 42

	fe := encodeMessage(msg)
	if fe[0] != 42 {
		t.Errorf("digit 0 = %d, want 42", fe[0])
	}
	for i := 1; i < MsgLenFE; i++ {
		if fe[i] != 0 {
			t.Errorf("digit %d = %d, want 0", i, fe[i])
		}
	}
}

func TestEncodeMessageUsesAllBytes(t *testing.T) {
	a := testMessage()
	b := a
	b[MessageLength-1] ^= 0x80 // flip the most significant bit

	if encodeMessage(a) == encodeMessage(b) {
		t.Error("top-byte change did not change the encoding")
	}

	for _, fe := range []([MsgLenFE]koalabear.Elem){encodeMessage(a), encodeMessage(b)} {
		for i, e := range fe {
			if uint32(e) >= koalabear.P {
				t.Errorf("digit %d not canonical: %d", i, e)
			}
		}
	}
}

func TestDecodeChunksRange(t *testing.T) {
	hash := [MsgHashLen]koalabear.Elem{
		koalabear.New(0x12345678),
		koalabear.New(0x0abcdef0),
		koalabear.New(0x7fffffff),
		koalabear.New(3),
		koalabear.New(0),
	}
	chunks := decodeChunks(hash)
	if len(chunks) != NumChains {
		t.Fatalf("len = %d, want %d", len(chunks), NumChains)
	}
	for i, c := range chunks {
		if c >= Base {
			t.Errorf("chunk %d = %d, out of range", i, c)
		}
	}
}

func TestCodewordDeterministic(t *testing.T) {
	h := poseidon2.NewHasher(testParameter())
	msg := testMessage()
	rho, first := findRho(t, h, 3, msg)

	second, err := Codeword(h, 3, rho, msg)
	if err != nil {
		t.Fatalf("Codeword: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("chunk %d differs between identical derivations", i)
		}
	}
}

func TestCodewordTargetSum(t *testing.T) {
	h := poseidon2.NewHasher(testParameter())
	msg := testMessage()
	_, codeword := findRho(t, h, 0, msg)

	sum := 0
	for _, c := range codeword {
		sum += int(c)
	}
	if sum != TargetSum {
		t.Errorf("accepted codeword sums to %d, want %d", sum, TargetSum)
	}
}

// TestCodewordKnownVector pins one full message-hash-and-redigitize
// result for fixed inputs, chunk i at string position i. A schedule or
// layout change anywhere in the pipeline breaks this vector even when
// every self-consistency test still passes.
func TestCodewordKnownVector(t *testing.T) {
	const want = "01110110010001111000000101110100101100001011110110100100001011110100011010000110110011000100101110011110111101100101111101101001011010001001000100110001001"

	rho := Randomness{
		koalabear.New(1012575),
		koalabear.New(1053078),
		koalabear.New(1093581),
		koalabear.New(1134084),
		koalabear.New(1174587),
		koalabear.New(1215090),
	}

	h := poseidon2.NewHasher(testParameter())
	codeword, err := Codeword(h, 4, rho, testMessage())
	if err != nil {
		t.Fatalf("Codeword: %v", err)
	}
	if len(codeword) != len(want) {
		t.Fatalf("len = %d, want %d", len(codeword), len(want))
	}
	for i, c := range codeword {
		if c != want[i]-'0' {
			t.Errorf("chunk %d = %d, want %c", i, c, want[i])
		}
	}
}

func TestCodewordRejectsOffTargetRho(t *testing.T) {
	h := poseidon2.NewHasher(testParameter())
	msg := testMessage()

	// Most rho values miss the target sum; find one deterministically and
	// confirm the typed rejection.
	for ctr := uint32(0); ctr < 5000; ctr++ {
		var rho Randomness
		for i := range rho {
			rho[i] = koalabear.New((ctr*RandLen + uint32(i) + 1) * 40503)
		}
		_, err := Codeword(h, 0, rho, msg)
		if err != nil {
			if !errors.Is(err, ErrTargetSum) {
				t.Fatalf("err = %v, want ErrTargetSum", err)
			}
			return
		}
	}
	t.Fatal("every sampled rho met the target sum; cannot exercise rejection")
}

func TestCodewordBindsEpochRhoAndMessage(t *testing.T) {
	h := poseidon2.NewHasher(testParameter())
	msg := testMessage()
	rho, base := findRho(t, h, 7, msg)

	differs := func(other []uint8) bool {
		for i := range base {
			if base[i] != other[i] {
				return true
			}
		}
		return false
	}

	// A different epoch, rho element or message byte must change the
	// underlying hash; the re-derived codeword either fails the target
	// sum or differs chunk-wise.
	if other, err := Codeword(h, 8, rho, msg); err == nil && !differs(other) {
		t.Error("epoch change left the codeword unchanged")
	}

	rho2 := rho
	rho2[0] = koalabear.Add(rho2[0], koalabear.One)
	if other, err := Codeword(h, 7, rho2, msg); err == nil && !differs(other) {
		t.Error("rho change left the codeword unchanged")
	}

	msg2 := msg
	msg2[5] ^= 0x01
	if other, err := Codeword(h, 7, rho, msg2); err == nil && !differs(other) {
		t.Error("message change left the codeword unchanged")
	}
}
