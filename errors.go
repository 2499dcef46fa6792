package bls

import (
	"errors"

	"github.com/signatory-io/bls/internal/engine"
)

// Engine failure reasons. Decoding and verification return these directly;
// nothing in this module wraps one failure inside another.
var (
	// ErrBadEncoding reports bytes that are structurally not a point
	// encoding: wrong length, bad flag bits, a non-canonical infinity or an
	// out-of-range field element.
	ErrBadEncoding = engine.ErrBadEncoding

	// ErrPointNotOnCurve reports coordinates that do not satisfy the curve
	// equation.
	ErrPointNotOnCurve = engine.ErrPointNotOnCurve

	// ErrPointNotInGroup reports a curve point outside the prime-order
	// subgroup.
	ErrPointNotInGroup = engine.ErrPointNotInGroup

	// ErrAggrTypeMismatch reports inconsistent encode methods within one
	// pairing accumulation.
	ErrAggrTypeMismatch = engine.ErrAggrTypeMismatch

	// ErrVerifyFail reports a failed pairing check: the signature does not
	// validate against the given key(s) and message(s).
	ErrVerifyFail = engine.ErrVerifyFail

	// ErrPkIsInfinity reports a public key encoding the group identity.
	ErrPkIsInfinity = engine.ErrPkIsInfinity

	// ErrBadScalar reports a secret key encoding that is zero or not below
	// the group order.
	ErrBadScalar = engine.ErrBadScalar

	// ErrShortSeed reports input keying material below the 32-byte minimum.
	ErrShortSeed = engine.ErrShortSeed
)

// Input validation failures raised before any engine call.
var (
	ErrNoSignatures   = errors.New("bls: no signatures to aggregate")
	ErrNoPublicKeys   = errors.New("bls: no public keys to verify against")
	ErrLengthMismatch = errors.New("bls: public key and message counts differ")
)
