// Package codec implements the deterministic wire format for leanSig
// public keys, signatures and verification inputs.
//
// The layout is fixed: a 4-byte magic, a version byte, a type byte, then
// the payload as little-endian uint32 words in declared struct order.
// Nothing is variable-length; every message type has exactly one valid
// size for the current scheme parameters, and decoding rejects any field
// element at or above the modulus, so the verifier core only ever sees
// canonical values.
package codec

import (
	"encoding/binary"
	"errors"

	"github.com/leansig/leansig-go/koalabear"
	"github.com/leansig/leansig-go/xmss"
)

// Wire format identification.
const (
	Version = 1

	typePublicKey   = 0x01
	typeSignature   = 0x02
	typeVerifyInput = 0x03
)

var magic = [4]byte{'l', 's', 'g', '1'}

// Decoding errors.
var (
	ErrMagic        = errors.New("codec: bad magic")
	ErrVersion      = errors.New("codec: unsupported version")
	ErrType         = errors.New("codec: wrong message type")
	ErrLength       = errors.New("codec: wrong message length")
	ErrNonCanonical = errors.New("codec: field element not in canonical range")
)

const (
	headerLen    = len(magic) + 2 // magic, version, type
	publicKeyLen = (xmss.HashLen + xmss.ParamLen) * 4
	signatureLen = (xmss.RandLen + xmss.NumChains*xmss.HashLen + xmss.TreeHeight*xmss.HashLen + 1) * 4
	inputLen     = publicKeyLen + 4 + xmss.MessageLength + signatureLen
)

// EncodePublicKey serializes a public key.
func EncodePublicKey(pk *xmss.PublicKey) []byte {
	w := newWriter(typePublicKey, publicKeyLen)
	w.elems(pk.Root[:])
	w.elems(pk.Parameter[:])
	return w.buf
}

// DecodePublicKey parses a public key, rejecting malformed input with a
// typed error.
func DecodePublicKey(data []byte) (*xmss.PublicKey, error) {
	r, err := newReader(data, typePublicKey, publicKeyLen)
	if err != nil {
		return nil, err
	}
	var pk xmss.PublicKey
	if err := r.elems(pk.Root[:]); err != nil {
		return nil, err
	}
	if err := r.elems(pk.Parameter[:]); err != nil {
		return nil, err
	}
	return &pk, nil
}

// EncodeSignature serializes a signature. The signature must carry the
// scheme's fixed chain count and path length.
func EncodeSignature(sig *xmss.Signature) ([]byte, error) {
	if len(sig.Hashes) != xmss.NumChains || len(sig.Path) != xmss.TreeHeight {
		return nil, ErrLength
	}
	w := newWriter(typeSignature, signatureLen)
	writeSignature(w, sig)
	return w.buf, nil
}

// DecodeSignature parses a signature.
func DecodeSignature(data []byte) (*xmss.Signature, error) {
	r, err := newReader(data, typeSignature, signatureLen)
	if err != nil {
		return nil, err
	}
	return readSignature(r)
}

// EncodeVerifyInput serializes a complete verification request:
// public key, epoch, message digest, signature.
func EncodeVerifyInput(in *xmss.VerifyInput) ([]byte, error) {
	if len(in.Signature.Hashes) != xmss.NumChains || len(in.Signature.Path) != xmss.TreeHeight {
		return nil, ErrLength
	}
	w := newWriter(typeVerifyInput, inputLen)
	w.elems(in.PublicKey.Root[:])
	w.elems(in.PublicKey.Parameter[:])
	w.uint32(in.Epoch)
	w.bytes(in.Message[:])
	writeSignature(w, &in.Signature)
	return w.buf, nil
}

// DecodeVerifyInput parses a complete verification request.
func DecodeVerifyInput(data []byte) (*xmss.VerifyInput, error) {
	r, err := newReader(data, typeVerifyInput, inputLen)
	if err != nil {
		return nil, err
	}

	var in xmss.VerifyInput
	if err := r.elems(in.PublicKey.Root[:]); err != nil {
		return nil, err
	}
	if err := r.elems(in.PublicKey.Parameter[:]); err != nil {
		return nil, err
	}
	in.Epoch = r.uint32()
	r.bytes(in.Message[:])

	sig, err := readSignature(r)
	if err != nil {
		return nil, err
	}
	in.Signature = *sig
	return &in, nil
}

func writeSignature(w *writer, sig *xmss.Signature) {
	w.elems(sig.Rho[:])
	for i := range sig.Hashes {
		w.elems(sig.Hashes[i][:])
	}
	for i := range sig.Path {
		w.elems(sig.Path[i][:])
	}
	w.uint32(sig.LeafIndex)
}

func readSignature(r *reader) (*xmss.Signature, error) {
	sig := &xmss.Signature{
		Hashes: make([]xmss.Domain, xmss.NumChains),
		Path:   make([]xmss.Domain, xmss.TreeHeight),
	}
	if err := r.elems(sig.Rho[:]); err != nil {
		return nil, err
	}
	for i := range sig.Hashes {
		if err := r.elems(sig.Hashes[i][:]); err != nil {
			return nil, err
		}
	}
	for i := range sig.Path {
		if err := r.elems(sig.Path[i][:]); err != nil {
			return nil, err
		}
	}
	sig.LeafIndex = r.uint32()
	return sig, nil
}

// writer appends the fixed header and little-endian payload words.
type writer struct {
	buf []byte
}

func newWriter(msgType byte, payloadLen int) *writer {
	buf := make([]byte, 0, headerLen+payloadLen)
	buf = append(buf, magic[:]...)
	buf = append(buf, Version, msgType)
	return &writer{buf: buf}
}

func (w *writer) uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *writer) bytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *writer) elems(elems []koalabear.Elem) {
	for _, e := range elems {
		w.uint32(uint32(e))
	}
}

// reader consumes a fully length-checked payload, so its accessors never
// run past the buffer.
type reader struct {
	buf []byte
	off int
}

func newReader(data []byte, msgType byte, payloadLen int) (*reader, error) {
	if len(data) < headerLen || [4]byte(data[:4]) != magic {
		return nil, ErrMagic
	}
	if data[4] != Version {
		return nil, ErrVersion
	}
	if data[5] != msgType {
		return nil, ErrType
	}
	if len(data) != headerLen+payloadLen {
		return nil, ErrLength
	}
	return &reader{buf: data, off: headerLen}, nil
}

func (r *reader) uint32() uint32 {
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v
}

func (r *reader) bytes(dst []byte) {
	copy(dst, r.buf[r.off:r.off+len(dst)])
	r.off += len(dst)
}

func (r *reader) elems(dst []koalabear.Elem) error {
	for i := range dst {
		v := r.uint32()
		if v >= koalabear.P {
			return ErrNonCanonical
		}
		dst[i] = koalabear.Elem(v)
	}
	return nil
}
