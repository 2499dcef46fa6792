package engine

// Encoded lengths of affine points per the BLS12-381 standard. Compression
// halves the serialized length by folding the y sign into the leading byte.
const (
	P1CompressedLength = 48
	P1SerializedLength = 2 * P1CompressedLength
	P2CompressedLength = 96
	P2SerializedLength = 2 * P2CompressedLength
)

// Point constrains the two affine point types of the curve pair to the
// method set the codec needs. The capability resolution for a curve variant
// is the instantiation choice made by the minpk and minsig packages.
type Point[P any] interface {
	*P
	Serialize() []byte
	Compress() []byte
	Deserialize(in []byte) *P
	Uncompress(in []byte) *P
	KeyValidate() bool
	SigValidate(sigInfcheck bool) bool
}

// Role selects the subgroup policy applied after decoding: public keys must
// not be the identity, signatures may be (an aggregate can legitimately
// cancel out).
type Role int

const (
	RoleKey Role = iota
	RoleSignature
)

// Encoding flag bits in the leading byte, per the ZCash serialization
// convention used by BLS12-381.
const (
	flagCompressed = 0x80
	flagInfinity   = 0x40
	flagSign       = 0x20
)

// fieldModulus is the BLS12-381 base field prime, big-endian. Every 48-byte
// limb of an encoding must be below it.
var fieldModulus = [P1CompressedLength]byte{
	0x1a, 0x01, 0x11, 0xea, 0x39, 0x7f, 0xe6, 0x9a,
	0x4b, 0x1b, 0xa7, 0xb6, 0x43, 0x4b, 0xac, 0xd7,
	0x64, 0x77, 0x4b, 0x84, 0xf3, 0x85, 0x12, 0xbf,
	0x67, 0x30, 0xd2, 0xa0, 0xf6, 0xb0, 0xf6, 0x24,
	0x1e, 0xab, 0xff, 0xfe, 0xb1, 0x53, 0xff, 0xff,
	0xb9, 0xfe, 0xff, 0xff, 0xff, 0xff, 0xaa, 0xab,
}

// Decode turns a fixed-length encoding into a validated affine point. The
// ladder distinguishes the engine failure reasons precisely: structural
// defects (length, flag bits, non-canonical infinity, out-of-range field
// limbs) report ErrBadEncoding, coordinates off the curve report
// ErrPointNotOnCurve, and a curve point outside the prime-order subgroup
// reports ErrPointNotInGroup. An infinity encoding in the key role reports
// ErrPkIsInfinity before any curve arithmetic runs.
func Decode[P any, PP Point[P]](in []byte, size int, compressed bool, role Role) (PP, error) {
	var zero PP

	if len(in) != size {
		return zero, ErrBadEncoding
	}
	isCompressed := in[0]&flagCompressed != 0
	isInfinity := in[0]&flagInfinity != 0
	if isCompressed != compressed {
		return zero, ErrBadEncoding
	}
	if isInfinity {
		// The only canonical infinity encoding is the flag byte alone.
		head := byte(flagInfinity)
		if compressed {
			head |= flagCompressed
		}
		if in[0] != head || !allZero(in[1:]) {
			return zero, ErrBadEncoding
		}
		if role == RoleKey {
			return zero, ErrPkIsInfinity
		}
	} else if !limbsInRange(in, compressed) {
		return zero, ErrBadEncoding
	}

	p := PP(new(P))
	if compressed {
		if p.Uncompress(in) == nil {
			return zero, ErrPointNotOnCurve
		}
	} else {
		if p.Deserialize(in) == nil {
			return zero, ErrPointNotOnCurve
		}
	}

	switch role {
	case RoleKey:
		if !p.KeyValidate() {
			return zero, ErrPointNotInGroup
		}
	case RoleSignature:
		if !p.SigValidate(false) {
			return zero, ErrPointNotInGroup
		}
	}
	return p, nil
}

func allZero(in []byte) bool {
	for _, b := range in {
		if b != 0 {
			return false
		}
	}
	return true
}

// limbsInRange checks that every 48-byte big-endian limb of the encoding is
// below the field modulus, ignoring the flag bits of the leading byte.
func limbsInRange(in []byte, compressed bool) bool {
	mask := byte(flagSign - 1)
	if !compressed {
		// Uncompressed encodings use only the infinity flag; the sign bit
		// position is part of the coordinate.
		mask = flagCompressed - 1
	}
	for off := 0; off < len(in); off += P1CompressedLength {
		limb := in[off : off+P1CompressedLength]
		lead := limb[0]
		if off == 0 {
			lead &= mask
		}
		if !limbBelowModulus(lead, limb) {
			return false
		}
	}
	return true
}

func limbBelowModulus(lead byte, limb []byte) bool {
	if lead != fieldModulus[0] {
		return lead < fieldModulus[0]
	}
	for i := 1; i < P1CompressedLength; i++ {
		if limb[i] != fieldModulus[i] {
			return limb[i] < fieldModulus[i]
		}
	}
	return false // equal to the modulus
}
