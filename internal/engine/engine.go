// Package engine wraps the supranational/blst bindings behind the small
// capability surface the rest of the module needs: secret scalar handling,
// EIP-2333 derivation, validated point decoding and the pairing accumulation
// context. Every operation here is deterministic and allocation-only; the
// engine keeps no state between calls.
package engine

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"

	blst "github.com/supranational/blst/bindings/go"
)

// Failure reasons surfaced by the engine. The first seven mirror the
// BLST_ERROR enumeration one to one.
var (
	ErrBadEncoding      = errors.New("bls: malformed point encoding")
	ErrPointNotOnCurve  = errors.New("bls: point is not on the curve")
	ErrPointNotInGroup  = errors.New("bls: point is not in the prime-order subgroup")
	ErrAggrTypeMismatch = errors.New("bls: mixed encode methods in one pairing accumulation")
	ErrVerifyFail       = errors.New("bls: signature verification failed")
	ErrPkIsInfinity     = errors.New("bls: public key is the identity element")
	ErrBadScalar        = errors.New("bls: scalar out of range")

	ErrShortSeed = errors.New("bls: input keying material must be at least 32 bytes")
)

// BLST_ERROR values as returned by the pairing accumulation calls. The Go
// bindings hand the C enum back as a plain int and export no names for it.
const (
	rcSuccess = iota
	rcBadEncoding
	rcPointNotOnCurve
	rcPointNotInGroup
	rcAggrTypeMismatch
	rcVerifyFail
	rcPkIsInfinity
	rcBadScalar
)

// FromCode translates a BLST_ERROR value returned by an accumulation call.
// BLST_SUCCESS translates to nil.
func FromCode(rc int) error {
	switch rc {
	case rcSuccess:
		return nil
	case rcBadEncoding:
		return ErrBadEncoding
	case rcPointNotOnCurve:
		return ErrPointNotOnCurve
	case rcPointNotInGroup:
		return ErrPointNotInGroup
	case rcAggrTypeMismatch:
		return ErrAggrTypeMismatch
	case rcVerifyFail:
		return ErrVerifyFail
	case rcPkIsInfinity:
		return ErrPkIsInfinity
	case rcBadScalar:
		return ErrBadScalar
	default:
		return ErrVerifyFail
	}
}

// SecretKeyLength is the length of the serialized secret scalar.
const SecretKeyLength = 32

const minSeedLength = 32

// SecretKey is a scalar in the BLS12-381 base field order. It is independent
// of the curve assignment; the assignment is chosen where the key is used.
type SecretKey struct {
	v blst.SecretKey
}

// Scalar exposes the underlying engine scalar to the curve variant packages.
func (sk *SecretKey) Scalar() *blst.SecretKey { return &sk.v }

// KeyGen derives a secret key from at least 32 bytes of input keying material
// per the BLS signature standard. The same material always yields the same
// key; material shorter than 32 bytes is rejected, never padded.
func KeyGen(ikm []byte) (*SecretKey, error) {
	if len(ikm) < minSeedLength {
		return nil, ErrShortSeed
	}
	v := blst.KeyGen(ikm)
	if v == nil {
		return nil, ErrBadScalar
	}
	return &SecretKey{v: *v}, nil
}

// Generate draws fresh keying material from the system randomness source and
// runs it through KeyGen.
func Generate() (*SecretKey, error) {
	var ikm [minSeedLength]byte
	if _, err := rand.Read(ikm[:]); err != nil {
		return nil, err
	}
	return KeyGen(ikm[:])
}

// DeriveMaster derives the EIP-2333 master key from a seed of at least 32
// bytes.
func DeriveMaster(seed []byte) (*SecretKey, error) {
	if len(seed) < minSeedLength {
		return nil, ErrShortSeed
	}
	v := blst.DeriveMasterEip2333(seed)
	if v == nil {
		return nil, ErrBadScalar
	}
	return &SecretKey{v: *v}, nil
}

// DeriveChild derives the EIP-2333 child key at the given index.
func (sk *SecretKey) DeriveChild(index uint32) *SecretKey {
	return &SecretKey{v: *sk.v.DeriveChildEip2333(index)}
}

// Serialize returns the 32-byte little-endian form of the scalar.
func (sk *SecretKey) Serialize() (out [SecretKeyLength]byte) {
	be := sk.v.Serialize()
	for i, b := range be {
		out[SecretKeyLength-1-i] = b
	}
	return
}

// DeserializeSecretKey is the inverse of Serialize. The scalar range check is
// delegated to the engine: zero and values not below the group order are
// rejected with ErrBadScalar.
func DeserializeSecretKey(in []byte) (*SecretKey, error) {
	if len(in) != SecretKeyLength {
		return nil, ErrBadEncoding
	}
	var be [SecretKeyLength]byte
	for i, b := range in {
		be[SecretKeyLength-1-i] = b
	}
	var v blst.SecretKey
	if v.Deserialize(be[:]) == nil {
		return nil, ErrBadScalar
	}
	return &SecretKey{v: v}, nil
}

// Equal reports whether both keys hold the same scalar, in constant time.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	a := sk.Serialize()
	b := other.Serialize()
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
