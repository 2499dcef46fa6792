// Package bls implements BLS signatures on the BLS12-381 curve pair.
//
// The two standard curve assignments live in their own subpackages so that a
// key from one can never meet a signature from the other: minpk keeps public
// keys on G1 with signatures on G2, minsig is the dual. This package holds
// what both assignments share: the secret scalar, the signing scheme markers
// and the failure values.
package bls

import "github.com/signatory-io/bls/internal/engine"

// Scheme selects the pairing encode method applied when a message is mapped
// onto the signature curve. Signer and verifier must agree on it out of band;
// it cannot be recovered from the signature bytes.
type Scheme uint

const (
	// Basic hashes the message as-is.
	Basic Scheme = iota
	// MessageAugmentation prepends the signer's compressed public key to the
	// message before hashing, binding the signature to the key.
	MessageAugmentation
	// ProofOfPossession is the basic encoding under a ciphersuite reserved
	// for protocols that verify key possession separately (see Prove in the
	// variant packages).
	ProofOfPossession
)

// Options carries the per-call signing parameters. A nil *Options means the
// Basic scheme with no domain separation tag: the tag is handed to the engine
// untouched, so an absent tag and whatever convention the caller's protocol
// attaches to it are the caller's contract, not this package's.
type Options struct {
	// Scheme is the pairing encode method, Basic by default.
	Scheme Scheme

	// CipherSuite is the domain separation tag mixed into hash-to-curve.
	// The standard suites are exported as constants by the variant packages.
	CipherSuite []byte
}

// Encoded lengths, in bytes. A G1 point serves as public key under minpk and
// as signature under minsig; dually for G2.
const (
	SecretKeyLength    = engine.SecretKeyLength
	G1CompressedLength = engine.P1CompressedLength
	G1SerializedLength = engine.P1SerializedLength
	G2CompressedLength = engine.P2CompressedLength
	G2SerializedLength = engine.P2SerializedLength
)
