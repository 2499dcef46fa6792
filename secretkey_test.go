package bls

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	data, err := hex.DecodeString(s)
	require.NoError(t, err)
	return data
}

func TestKeyGen(t *testing.T) {
	ikm := bytes.Repeat([]byte{0x01}, 32)

	sk1, err := KeyGen(ikm)
	require.NoError(t, err)
	sk2, err := KeyGen(ikm)
	require.NoError(t, err)
	require.True(t, sk1.Equal(sk2))

	other, err := KeyGen(bytes.Repeat([]byte{0x02}, 32))
	require.NoError(t, err)
	require.False(t, sk1.Equal(other))

	_, err = KeyGen(bytes.Repeat([]byte{0x01}, 31))
	require.ErrorIs(t, err, ErrShortSeed)

	_, err = DeriveMaster(bytes.Repeat([]byte{0x01}, 31))
	require.ErrorIs(t, err, ErrShortSeed)
}

func TestGenerateSecretKey(t *testing.T) {
	sk1, err := GenerateSecretKey()
	require.NoError(t, err)
	sk2, err := GenerateSecretKey()
	require.NoError(t, err)
	require.False(t, sk1.Equal(sk2))
}

func TestSecretKeySerialization(t *testing.T) {
	sk, err := KeyGen(bytes.Repeat([]byte{0x55}, 32))
	require.NoError(t, err)

	out := SerializeSecretKey(sk)
	back, err := DeserializeSecretKey(out)
	require.NoError(t, err)
	require.True(t, sk.Equal(back))
	require.Equal(t, out, SerializeSecretKey(back))

	_, err = SecretKeyFromBytes(make([]byte, SecretKeyLength)) // zero scalar
	require.ErrorIs(t, err, ErrBadScalar)

	_, err = SecretKeyFromBytes(bytes.Repeat([]byte{0xff}, SecretKeyLength)) // above the order
	require.ErrorIs(t, err, ErrBadScalar)

	_, err = SecretKeyFromBytes(make([]byte, SecretKeyLength-1))
	require.ErrorIs(t, err, ErrBadEncoding)
}

// Test case 0 of the EIP-2333 standard.
func TestEIP2333Vector(t *testing.T) {
	seed := mustHex(t, "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04")

	master, err := DeriveMaster(seed)
	require.NoError(t, err)
	out := SerializeSecretKey(master)
	require.Equal(t, "7050b4223168ae407dee804d461fc3dbfe53f5dc5218debb8fab6379d559730d", hex.EncodeToString(out[:]))

	child := master.DeriveChild(0)
	out = SerializeSecretKey(child)
	require.Equal(t, "8e0fe539158c9d590a771420cc033baedaf3749b5c08b5f85bd1e6146cbd182d", hex.EncodeToString(out[:]))
}

func TestDeriveChild(t *testing.T) {
	master, err := DeriveMaster(bytes.Repeat([]byte{0xaa}, 32))
	require.NoError(t, err)

	require.True(t, master.DeriveChild(7).Equal(master.DeriveChild(7)))
	require.False(t, master.DeriveChild(7).Equal(master.DeriveChild(8)))
	require.False(t, master.DeriveChild(0).Equal(master))
}
