// Package keystore reads and writes EIP-2335 version 4 keystores, the
// password-protected file format for BLS12-381 secret keys. The sealed key
// material is the 32-byte big-endian scalar the EIP prescribes; conversion to
// this module's little-endian encoding happens on the way in and out.
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/signatory-io/bls"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Scrypt parameters used for newly created keystores, per the EIP-2335
// recommendation.
const (
	scryptN    = 262144
	scryptR    = 8
	scryptP    = 1
	keyLength  = 32
	saltLength = 32
	ivLength   = 16
	pbkdf2PRF  = "hmac-sha256"
)

// ErrDecrypt is returned when the password is wrong or the keystore content
// does not match its checksum.
var ErrDecrypt = errors.New("keystore: invalid password or corrupted keystore")

// EIP-2335 stores the secret as the big-endian EIP-2333 scalar; the module's
// canonical secret key encoding is little-endian.
func flipEndian(in []byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		out[len(in)-1-i] = b
	}
	return out
}

type Keystore struct {
	Crypto struct {
		KDF struct {
			Function string `json:"function"`
			Params   struct {
				DKLen int    `json:"dklen"`
				N     int    `json:"n,omitempty"` // scrypt
				R     int    `json:"r,omitempty"` // scrypt
				P     int    `json:"p,omitempty"` // scrypt
				C     int    `json:"c,omitempty"` // pbkdf2
				PRF   string `json:"prf,omitempty"`
				Salt  string `json:"salt"`
			} `json:"params"`
			Message string `json:"message"`
		} `json:"kdf"`
		Checksum struct {
			Function string            `json:"function"`
			Params   map[string]string `json:"params"`
			Message  string            `json:"message"`
		} `json:"checksum"`
		Cipher struct {
			Function string `json:"function"`
			Params   struct {
				IV string `json:"iv"`
			} `json:"params"`
			Message string `json:"message"`
		} `json:"cipher"`
	} `json:"crypto"`
	Description string `json:"description,omitempty"`
	Pubkey      string `json:"pubkey,omitempty"`
	Path        string `json:"path,omitempty"`
	UUID        string `json:"uuid"`
	Version     int    `json:"version"`
}

// Encrypt seals sk under the password using scrypt and AES-128-CTR. The
// public key bytes and derivation path are recorded verbatim in the keystore
// metadata; either may be empty.
func Encrypt(sk *bls.SecretKey, pubkey []byte, password []byte, path string) (*Keystore, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}

	decryptionKey, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, err
	}

	le := bls.SerializeSecretKey(sk)
	secret := flipEndian(le[:])
	ciphertext := make([]byte, len(secret))
	block, err := aes.NewCipher(decryptionKey[:16])
	if err != nil {
		return nil, err
	}
	cipher.NewCTR(block, iv).XORKeyStream(ciphertext, secret)

	checksum := sha256.Sum256(append(append([]byte{}, decryptionKey[16:32]...), ciphertext...))

	var k Keystore
	k.Version = 4
	k.UUID = uuid.NewString()
	k.Path = path
	k.Pubkey = hex.EncodeToString(pubkey)
	k.Crypto.KDF.Function = "scrypt"
	k.Crypto.KDF.Params.DKLen = keyLength
	k.Crypto.KDF.Params.N = scryptN
	k.Crypto.KDF.Params.R = scryptR
	k.Crypto.KDF.Params.P = scryptP
	k.Crypto.KDF.Params.Salt = hex.EncodeToString(salt)
	k.Crypto.Checksum.Function = "sha256"
	k.Crypto.Checksum.Params = map[string]string{}
	k.Crypto.Checksum.Message = hex.EncodeToString(checksum[:])
	k.Crypto.Cipher.Function = "aes-128-ctr"
	k.Crypto.Cipher.Params.IV = hex.EncodeToString(iv)
	k.Crypto.Cipher.Message = hex.EncodeToString(ciphertext)
	return &k, nil
}

// Decrypt recovers the secret key sealed in the keystore. Both the scrypt
// and pbkdf2 KDF functions of EIP-2335 are accepted.
func (k *Keystore) Decrypt(password []byte) (*bls.SecretKey, error) {
	salt, err := hex.DecodeString(k.Crypto.KDF.Params.Salt)
	if err != nil {
		return nil, fmt.Errorf("keystore: malformed salt: %w", err)
	}

	var decryptionKey []byte
	switch k.Crypto.KDF.Function {
	case "scrypt":
		p := &k.Crypto.KDF.Params
		decryptionKey, err = scrypt.Key(password, salt, p.N, p.R, p.P, p.DKLen)
	case "pbkdf2":
		p := &k.Crypto.KDF.Params
		if p.PRF != pbkdf2PRF {
			return nil, fmt.Errorf("keystore: unsupported PRF: %s", p.PRF)
		}
		decryptionKey = pbkdf2.Key(password, salt, p.C, p.DKLen, sha256.New)
	default:
		return nil, fmt.Errorf("keystore: unsupported KDF function: %s", k.Crypto.KDF.Function)
	}
	if err != nil {
		return nil, err
	}
	if len(decryptionKey) < keyLength {
		return nil, fmt.Errorf("keystore: derived key too short")
	}

	ciphertext, err := hex.DecodeString(k.Crypto.Cipher.Message)
	if err != nil {
		return nil, fmt.Errorf("keystore: malformed cipher message: %w", err)
	}
	checksum, err := hex.DecodeString(k.Crypto.Checksum.Message)
	if err != nil {
		return nil, fmt.Errorf("keystore: malformed checksum: %w", err)
	}
	sum := sha256.Sum256(append(append([]byte{}, decryptionKey[16:32]...), ciphertext...))
	if subtle.ConstantTimeCompare(sum[:], checksum) != 1 {
		return nil, ErrDecrypt
	}

	if k.Crypto.Cipher.Function != "aes-128-ctr" {
		return nil, fmt.Errorf("keystore: unsupported cipher: %s", k.Crypto.Cipher.Function)
	}
	iv, err := hex.DecodeString(k.Crypto.Cipher.Params.IV)
	if err != nil {
		return nil, fmt.Errorf("keystore: malformed IV: %w", err)
	}
	block, err := aes.NewCipher(decryptionKey[:16])
	if err != nil {
		return nil, err
	}
	secret := make([]byte, len(ciphertext))
	cipher.NewCTR(block, iv).XORKeyStream(secret, ciphertext)

	return bls.SecretKeyFromBytes(flipEndian(secret))
}

// Parse decodes a keystore document and checks its version.
func Parse(data []byte) (*Keystore, error) {
	var k Keystore
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, fmt.Errorf("keystore: %w", err)
	}
	if k.Version != 4 {
		return nil, fmt.Errorf("keystore: unsupported version: %d", k.Version)
	}
	return &k, nil
}

// Marshal encodes the keystore as JSON.
func (k *Keystore) Marshal() ([]byte, error) {
	return json.MarshalIndent(k, "", "  ")
}
