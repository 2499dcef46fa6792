// Package minpk implements the minimal-pubkey-size BLS12-381 assignment:
// public keys on G1, signatures on G2. This is the assignment used by the
// Ethereum consensus layer.
package minpk

import (
	"github.com/signatory-io/bls"
	blst "github.com/supranational/blst/bindings/go"
)

// Encoded lengths, in bytes.
const (
	CompressedPublicKeyLength = bls.G1CompressedLength
	SerializedPublicKeyLength = bls.G1SerializedLength
	CompressedSignatureLength = bls.G2CompressedLength
	SerializedSignatureLength = bls.G2SerializedLength
)

// Standard ciphersuites for this assignment. The library never applies one
// implicitly; pass the suite for the scheme in use as Options.CipherSuite.
const (
	CipherSuiteBasic               = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_"
	CipherSuiteMessageAugmentation = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_AUG_"
	CipherSuiteProofOfPossession   = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"
	CipherSuitePop                 = "BLS_POP_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"
)

// PublicKey is an affine G1 point in the prime-order subgroup, never the
// identity. It can only be obtained from a secret key or from a validated
// decode, and is immutable afterwards.
type PublicKey struct {
	p blst.P1Affine
}

// Signature is an affine G2 point in the prime-order subgroup.
type Signature struct {
	p blst.P2Affine
}

// Fixed-length encodings. The byte length is part of the type, so a buffer of
// the wrong size or of the other encoding cannot reach the decoder.
type (
	SerializedPublicKey [SerializedPublicKeyLength]byte
	CompressedPublicKey [CompressedPublicKeyLength]byte
	SerializedSignature [SerializedSignatureLength]byte
	CompressedSignature [CompressedSignatureLength]byte
)

// Bytes returns the compressed form, the conventional interchange encoding.
func (pk *PublicKey) Bytes() []byte { return pk.p.Compress() }

// Bytes returns the compressed form.
func (s *Signature) Bytes() []byte { return s.p.Compress() }
