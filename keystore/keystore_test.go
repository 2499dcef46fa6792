package keystore

import (
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/signatory-io/bls"
	"github.com/signatory-io/bls/minpk"
	"github.com/stretchr/testify/require"
)

// Test vectors from the EIP-2335 standard. The password is the NFKD-normalized
// form with control codes stripped; callers are expected to normalize before
// calling this package.
const (
	vectorPassword = "testpassword\U0001F511"
	vectorSecret   = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
	vectorPubkey   = "9612d7a727c9d0a22e185a1c768478dfe919cada9266988cb32359c11f2b7b27f4ae4040902382ae2910c15e2b420d07"

	vectorScrypt = `{
		"crypto": {
			"kdf": {
				"function": "scrypt",
				"params": {
					"dklen": 32,
					"n": 262144,
					"p": 1,
					"r": 8,
					"salt": "d4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3"
				},
				"message": ""
			},
			"checksum": {
				"function": "sha256",
				"params": {},
				"message": "d2217fe5f3e9a1e34581ef8a78f7c9928e436d36dacc5e846690a5581e8ea484"
			},
			"cipher": {
				"function": "aes-128-ctr",
				"params": {
					"iv": "264daa3f303d7259501c93d997d84fe6"
				},
				"message": "06ae90d55fe0a6e9c5c3bc5b170827b2e5cce3929ed3f116c2811e6366dfe20f"
			}
		},
		"description": "This is a test keystore that uses scrypt to secure the secret.",
		"pubkey": "9612d7a727c9d0a22e185a1c768478dfe919cada9266988cb32359c11f2b7b27f4ae4040902382ae2910c15e2b420d07",
		"path": "m/12381/60/3141592653/589793238",
		"uuid": "1d85ae20-35c5-4611-98e8-aa14a633906f",
		"version": 4
	}`

	vectorPbkdf2 = `{
		"crypto": {
			"kdf": {
				"function": "pbkdf2",
				"params": {
					"dklen": 32,
					"c": 262144,
					"prf": "hmac-sha256",
					"salt": "d4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3"
				},
				"message": ""
			},
			"checksum": {
				"function": "sha256",
				"params": {},
				"message": "8a9f5d9912ed7e75ea794bc5a89bca5f193721d30868ade6f73043c6ea6febf1"
			},
			"cipher": {
				"function": "aes-128-ctr",
				"params": {
					"iv": "264daa3f303d7259501c93d997d84fe6"
				},
				"message": "cee03fde2af33149775b7223e7845e4fb2c8ae1792e5f99fe9ecf474cc8c16ad"
			}
		},
		"description": "This is a test keystore that uses PBKDF2 to secure the secret.",
		"pubkey": "9612d7a727c9d0a22e185a1c768478dfe919cada9266988cb32359c11f2b7b27f4ae4040902382ae2910c15e2b420d07",
		"path": "m/12381/60/0/0",
		"uuid": "64625def-3331-4eea-ab6f-782f3ed16a83",
		"version": 4
	}`
)

func TestEIP2335Vectors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{name: "scrypt", doc: vectorScrypt},
		{name: "pbkdf2", doc: vectorPbkdf2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k, err := Parse([]byte(c.doc))
			require.NoError(t, err)

			sk, err := k.Decrypt([]byte(vectorPassword))
			require.NoError(t, err)

			// the vector records the big-endian scalar and its minpk key
			out := bls.SerializeSecretKey(sk)
			require.Equal(t, vectorSecret, hex.EncodeToString(flipEndian(out[:])))
			require.Equal(t, vectorPubkey, hex.EncodeToString(minpk.PublicKeyFromSecretKey(sk).Bytes()))

			_, err = k.Decrypt([]byte("wrong password"))
			require.ErrorIs(t, err, ErrDecrypt)
		})
	}
}

func TestEncryptDecrypt(t *testing.T) {
	sk, err := bls.GenerateSecretKey()
	require.NoError(t, err)

	k, err := Encrypt(sk, []byte{0xab, 0xcd}, []byte("password"), "m/0")
	require.NoError(t, err)
	require.Equal(t, 4, k.Version)
	require.Equal(t, "abcd", k.Pubkey)
	require.Equal(t, "m/0", k.Path)
	require.NotEmpty(t, k.UUID)

	back, err := k.Decrypt([]byte("password"))
	require.NoError(t, err)
	require.True(t, sk.Equal(back))

	_, err = k.Decrypt([]byte("Password"))
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestParse(t *testing.T) {
	_, err := Parse([]byte(`{"version": 3}`))
	require.ErrorContains(t, err, "unsupported version")

	_, err = Parse([]byte(`not json`))
	require.Error(t, err)
}

func TestDecryptTampered(t *testing.T) {
	k, err := Parse([]byte(vectorPbkdf2))
	require.NoError(t, err)
	msg, err := hex.DecodeString(k.Crypto.Cipher.Message)
	require.NoError(t, err)
	msg[0] ^= 0x01
	k.Crypto.Cipher.Message = hex.EncodeToString(msg)

	_, err = k.Decrypt([]byte(vectorPassword))
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestFileRoundTrip(t *testing.T) {
	k, err := Parse([]byte(vectorPbkdf2))
	require.NoError(t, err)

	name := filepath.Join(t.TempDir(), "keystore.json")
	require.NoError(t, k.Write(name, 0600))

	back, err := Read(name)
	require.NoError(t, err)
	require.Equal(t, k, back)

	_, err = Read(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
