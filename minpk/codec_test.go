package minpk

import (
	"testing"

	"github.com/signatory-io/bls"
	"github.com/stretchr/testify/require"
)

func TestPublicKeyRoundTrip(t *testing.T) {
	pk := PublicKeyFromSecretKey(testKey(t, 0x01))

	ser := pk.Serialize()
	require.Len(t, ser[:], SerializedPublicKeyLength)
	back, err := DeserializePublicKey(ser)
	require.NoError(t, err)
	require.Equal(t, pk.Bytes(), back.Bytes())

	comp := pk.Compress()
	require.Len(t, comp[:], CompressedPublicKeyLength)
	back, err = DecompressPublicKey(comp)
	require.NoError(t, err)
	require.Equal(t, pk.Bytes(), back.Bytes())
	require.Equal(t, comp[:], pk.Bytes())
}

func TestSignatureRoundTrip(t *testing.T) {
	sig := Sign(testKey(t, 0x02), []byte("message"), nil)

	ser := sig.Serialize()
	require.Len(t, ser[:], SerializedSignatureLength)
	back, err := DeserializeSignature(ser)
	require.NoError(t, err)
	require.Equal(t, sig.Bytes(), back.Bytes())

	comp := sig.Compress()
	require.Len(t, comp[:], CompressedSignatureLength)
	back, err = DecompressSignature(comp)
	require.NoError(t, err)
	require.Equal(t, sig.Bytes(), back.Bytes())
}

func TestFromBytes(t *testing.T) {
	pk := PublicKeyFromSecretKey(testKey(t, 0x03))
	sig := Sign(testKey(t, 0x03), []byte("message"), nil)

	ser := pk.Serialize()
	for _, enc := range [][]byte{pk.Bytes(), ser[:]} {
		got, err := PublicKeyFromBytes(enc)
		require.NoError(t, err)
		require.Equal(t, pk.Bytes(), got.Bytes())
	}
	_, err := PublicKeyFromBytes(pk.Bytes()[:47])
	require.ErrorIs(t, err, bls.ErrBadEncoding)

	sigSer := sig.Serialize()
	for _, enc := range [][]byte{sig.Bytes(), sigSer[:]} {
		got, err := SignatureFromBytes(enc)
		require.NoError(t, err)
		require.Equal(t, sig.Bytes(), got.Bytes())
	}
	// a G1 key encoding is never a valid G2 signature length
	_, err = SignatureFromBytes(pk.Bytes())
	require.ErrorIs(t, err, bls.ErrBadEncoding)
}

// compressedVector builds a 48-byte encoding from a leading byte, a filler and
// a trailing byte.
func compressedVector(lead, fill, last byte) (out CompressedPublicKey) {
	for i := range out {
		out[i] = fill
	}
	out[0] = lead
	out[len(out)-1] = last
	return
}

func TestDecodeValidation(t *testing.T) {
	cases := []struct {
		name string
		in   CompressedPublicKey
		err  error
	}{
		// x = 1: on the field but x^3+4 is a quadratic non-residue
		{name: "not on curve", in: compressedVector(0x80, 0x00, 0x01), err: bls.ErrPointNotOnCurve},
		// x = 0 is special-cased away inside the engine decoder
		{name: "zero x coordinate", in: compressedVector(0x80, 0x00, 0x00), err: bls.ErrPointNotOnCurve},
		// x = 4 lies on the curve but outside the q-order subgroup
		{name: "not in group", in: compressedVector(0x80, 0x00, 0x04), err: bls.ErrPointNotInGroup},
		{name: "identity key", in: compressedVector(0xc0, 0x00, 0x00), err: bls.ErrPkIsInfinity},
		{name: "non-canonical identity", in: compressedVector(0xc0, 0x00, 0x01), err: bls.ErrBadEncoding},
		{name: "infinity bit without compression", in: compressedVector(0x40, 0x00, 0x00), err: bls.ErrBadEncoding},
		// x above the field modulus
		{name: "out of field", in: compressedVector(0x9f, 0xff, 0xff), err: bls.ErrBadEncoding},
		{name: "compression bit clear", in: compressedVector(0x00, 0x00, 0x01), err: bls.ErrBadEncoding},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecompressPublicKey(c.in)
			require.ErrorIs(t, err, c.err)
		})
	}
}

func TestDecodeIdentitySignature(t *testing.T) {
	// the identity is a legal signature value (it can result from
	// aggregation) but never a legal public key
	var enc CompressedSignature
	enc[0] = 0xc0
	sig, err := DecompressSignature(enc)
	require.NoError(t, err)
	require.Equal(t, enc[:], sig.Bytes())
}

func TestDecodeSerializedValidation(t *testing.T) {
	pk := PublicKeyFromSecretKey(testKey(t, 0x04))
	ser := pk.Serialize()

	// uncompressed encodings must not carry the compression bit
	bad := ser
	bad[0] |= 0x80
	_, err := DeserializePublicKey(bad)
	require.ErrorIs(t, err, bls.ErrBadEncoding)

	// corrupt the y coordinate: the point leaves the curve
	bad = ser
	bad[SerializedPublicKeyLength-1] ^= 0x01
	_, err = DeserializePublicKey(bad)
	require.Error(t, err)

	var inf SerializedPublicKey
	inf[0] = 0x40
	_, err = DeserializePublicKey(inf)
	require.ErrorIs(t, err, bls.ErrPkIsInfinity)

	// non-canonical uncompressed identity
	inf[SerializedPublicKeyLength-1] = 0x01
	_, err = DeserializePublicKey(inf)
	require.ErrorIs(t, err, bls.ErrBadEncoding)
}
