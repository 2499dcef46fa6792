package minsig

import (
	"github.com/signatory-io/bls"
	"github.com/signatory-io/bls/internal/engine"
	blst "github.com/supranational/blst/bindings/go"
)

// Serialize returns the uncompressed affine encoding.
func (pk *PublicKey) Serialize() (out SerializedPublicKey) {
	copy(out[:], pk.p.Serialize())
	return
}

// Compress returns the compressed affine encoding.
func (pk *PublicKey) Compress() (out CompressedPublicKey) {
	copy(out[:], pk.p.Compress())
	return
}

// DeserializePublicKey is the inverse of PublicKey.Serialize. The point is
// validated on decode: it must lie on G2, inside the prime-order subgroup,
// and must not be the identity.
func DeserializePublicKey(in SerializedPublicKey) (*PublicKey, error) {
	p, err := engine.Decode[blst.P2Affine, *blst.P2Affine](in[:], SerializedPublicKeyLength, false, engine.RoleKey)
	if err != nil {
		return nil, err
	}
	return &PublicKey{p: *p}, nil
}

// DecompressPublicKey is the inverse of PublicKey.Compress, with the same
// validation as DeserializePublicKey.
func DecompressPublicKey(in CompressedPublicKey) (*PublicKey, error) {
	p, err := engine.Decode[blst.P2Affine, *blst.P2Affine](in[:], CompressedPublicKeyLength, true, engine.RoleKey)
	if err != nil {
		return nil, err
	}
	return &PublicKey{p: *p}, nil
}

// PublicKeyFromBytes decodes either encoding of a public key, telling them
// apart by length.
func PublicKeyFromBytes(in []byte) (*PublicKey, error) {
	switch len(in) {
	case CompressedPublicKeyLength:
		return DecompressPublicKey(CompressedPublicKey(in))
	case SerializedPublicKeyLength:
		return DeserializePublicKey(SerializedPublicKey(in))
	default:
		return nil, bls.ErrBadEncoding
	}
}

// Serialize returns the uncompressed affine encoding.
func (s *Signature) Serialize() (out SerializedSignature) {
	copy(out[:], s.p.Serialize())
	return
}

// Compress returns the compressed affine encoding.
func (s *Signature) Compress() (out CompressedSignature) {
	copy(out[:], s.p.Compress())
	return
}

// DeserializeSignature is the inverse of Signature.Serialize. The point is
// validated to lie on G1 inside the prime-order subgroup; the identity is
// accepted, as aggregation can produce it.
func DeserializeSignature(in SerializedSignature) (*Signature, error) {
	p, err := engine.Decode[blst.P1Affine, *blst.P1Affine](in[:], SerializedSignatureLength, false, engine.RoleSignature)
	if err != nil {
		return nil, err
	}
	return &Signature{p: *p}, nil
}

// DecompressSignature is the inverse of Signature.Compress, with the same
// validation as DeserializeSignature.
func DecompressSignature(in CompressedSignature) (*Signature, error) {
	p, err := engine.Decode[blst.P1Affine, *blst.P1Affine](in[:], CompressedSignatureLength, true, engine.RoleSignature)
	if err != nil {
		return nil, err
	}
	return &Signature{p: *p}, nil
}

// SignatureFromBytes decodes either encoding of a signature, telling them
// apart by length.
func SignatureFromBytes(in []byte) (*Signature, error) {
	switch len(in) {
	case CompressedSignatureLength:
		return DecompressSignature(CompressedSignature(in))
	case SerializedSignatureLength:
		return DeserializeSignature(SerializedSignature(in))
	default:
		return nil, bls.ErrBadEncoding
	}
}
