package bls

import "github.com/signatory-io/bls/internal/engine"

// SecretKey is a scalar in the BLS12-381 group order. It carries no curve
// assignment of its own; deriving a public key or signing under minpk or
// minsig is what commits it to one. A SecretKey is never mutated after
// construction.
type SecretKey = engine.SecretKey

// SerializedSecretKey is the 32-byte little-endian scalar encoding.
type SerializedSecretKey [SecretKeyLength]byte

// KeyGen deterministically derives a secret key from at least 32 bytes of
// input keying material. Shorter material returns ErrShortSeed.
func KeyGen(ikm []byte) (*SecretKey, error) {
	return engine.KeyGen(ikm)
}

// GenerateSecretKey creates a secret key from the system randomness source.
func GenerateSecretKey() (*SecretKey, error) {
	return engine.Generate()
}

// DeriveMaster derives the EIP-2333 master key from a seed of at least 32
// bytes. Child keys hang off the result via SecretKey.DeriveChild.
func DeriveMaster(seed []byte) (*SecretKey, error) {
	return engine.DeriveMaster(seed)
}

// SerializeSecretKey returns the fixed-length encoding of sk.
func SerializeSecretKey(sk *SecretKey) SerializedSecretKey {
	return sk.Serialize()
}

// DeserializeSecretKey is the inverse of SerializeSecretKey.
func DeserializeSecretKey(in SerializedSecretKey) (*SecretKey, error) {
	return engine.DeserializeSecretKey(in[:])
}

// SecretKeyFromBytes decodes a secret key from a byte slice, enforcing the
// exact encoded length.
func SecretKeyFromBytes(in []byte) (*SecretKey, error) {
	return engine.DeserializeSecretKey(in)
}
