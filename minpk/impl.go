package minpk

import (
	"github.com/signatory-io/bls"
	"github.com/signatory-io/bls/internal/engine"
	blst "github.com/supranational/blst/bindings/go"
)

func signOptions(opts *bls.Options) (bls.Scheme, []byte) {
	if opts == nil {
		return bls.Basic, nil
	}
	return opts.Scheme, opts.CipherSuite
}

// PublicKeyFromSecretKey multiplies the G1 generator by the secret scalar.
func PublicKeyFromSecretKey(sk *bls.SecretKey) *PublicKey {
	var pk PublicKey
	pk.p.From(sk.Scalar())
	return &pk
}

// Sign maps msg onto G2 under the options' ciphersuite and multiplies the
// result by the secret scalar. Under MessageAugmentation the signer's
// compressed public key is fed into the mapping alongside the message.
func Sign(sk *bls.SecretKey, msg []byte, opts *bls.Options) *Signature {
	scheme, dst := signOptions(opts)
	var aug []byte
	if scheme == bls.MessageAugmentation {
		aug = PublicKeyFromSecretKey(sk).Bytes()
	}
	var sig Signature
	sig.p.Sign(sk.Scalar(), msg, dst, true, aug)
	return &sig
}

// Verify runs the single pairing check of s against pk and msg. It returns
// nil on success and ErrVerifyFail otherwise; the options must match the
// ones used at signing time. Group checks are skipped here because both
// operands were validated when they were constructed.
func (s *Signature) Verify(pk *PublicKey, msg []byte, opts *bls.Options) error {
	scheme, dst := signOptions(opts)
	var aug []byte
	if scheme == bls.MessageAugmentation {
		aug = pk.Bytes()
	}
	if !s.p.Verify(false, &pk.p, false, msg, dst, true, aug) {
		return bls.ErrVerifyFail
	}
	return nil
}

// AggregateSignatures adds the signatures together. Accumulation happens in
// projective form; only the final sum is normalized back to affine, so the
// cost is one inversion regardless of the input length. Group addition is
// commutative, hence any permutation of sigs yields the same point.
func AggregateSignatures(sigs []*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, bls.ErrNoSignatures
	}
	points := make([]*blst.P2Affine, len(sigs))
	for i, s := range sigs {
		points[i] = &s.p
	}
	var agg blst.P2Aggregate
	if !agg.Aggregate(points, false) {
		return nil, bls.ErrPointNotInGroup
	}
	return &Signature{p: *agg.ToAffine()}, nil
}

// AggregatePublicKeys adds the public keys together. The sum of valid keys
// can still be the identity (keys may cancel), which is rejected.
func AggregatePublicKeys(pks []*PublicKey) (*PublicKey, error) {
	if len(pks) == 0 {
		return nil, bls.ErrNoPublicKeys
	}
	points := make([]*blst.P1Affine, len(pks))
	for i, pk := range pks {
		points[i] = &pk.p
	}
	var agg blst.P1Aggregate
	if !agg.Aggregate(points, false) {
		return nil, bls.ErrPointNotInGroup
	}
	sum := agg.ToAffine()
	if !sum.KeyValidate() {
		return nil, bls.ErrPkIsInfinity
	}
	return &PublicKey{p: *sum}, nil
}

// AggregateVerify checks that sig is the aggregate of one signature per
// (pks[i], msgs[i]) pair. It folds every pair into one pairing accumulation
// context (the aggregate signature enters once, with the first pair), then
// commits and runs a single final pairing check. A structural failure while
// folding stops the accumulation and is returned as the error; the boolean
// is solely the outcome of the final check.
func AggregateVerify(pks []*PublicKey, msgs [][]byte, sig *Signature, opts *bls.Options) (bool, error) {
	if len(pks) == 0 {
		return false, bls.ErrNoPublicKeys
	}
	if len(pks) != len(msgs) {
		return false, bls.ErrLengthMismatch
	}
	scheme, dst := signOptions(opts)

	ctx := blst.PairingCtx(true, dst)
	for i, pk := range pks {
		var s *blst.P2Affine
		if i == 0 {
			s = &sig.p
		}
		var aug []byte
		if scheme == bls.MessageAugmentation {
			aug = pk.Bytes()
		}
		rc := blst.PairingAggregatePkInG1(ctx, &pk.p, false, s, false, msgs[i], aug)
		if err := engine.FromCode(rc); err != nil {
			return false, err
		}
	}
	blst.PairingCommit(ctx)
	return blst.PairingFinalVerify(ctx), nil
}

// FastAggregateVerify checks an aggregate signature where every key signed
// the same message under the basic encoding. Options only contribute the
// ciphersuite here.
func FastAggregateVerify(pks []*PublicKey, msg []byte, sig *Signature, opts *bls.Options) (bool, error) {
	if len(pks) == 0 {
		return false, bls.ErrNoPublicKeys
	}
	_, dst := signOptions(opts)
	points := make([]*blst.P1Affine, len(pks))
	for i, pk := range pks {
		points[i] = &pk.p
	}
	return sig.p.FastAggregateVerify(false, points, msg, dst), nil
}

// Prove signs the compressed public key under the possession ciphersuite,
// producing the proof that the signer holds the secret scalar behind it.
func Prove(sk *bls.SecretKey) *Signature {
	pk := PublicKeyFromSecretKey(sk)
	var sig Signature
	sig.p.Sign(sk.Scalar(), pk.Bytes(), []byte(CipherSuitePop))
	return &sig
}

// VerifyPossession checks a proof created by Prove for pk.
func (s *Signature) VerifyPossession(pk *PublicKey) error {
	if !s.p.Verify(false, &pk.p, false, pk.Bytes(), []byte(CipherSuitePop)) {
		return bls.ErrVerifyFail
	}
	return nil
}
