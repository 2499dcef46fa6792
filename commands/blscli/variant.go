package blscli

import (
	"github.com/signatory-io/bls"
	"github.com/signatory-io/bls/minpk"
	"github.com/signatory-io/bls/minsig"
	"github.com/sirupsen/logrus"
)

var log = logrus.StandardLogger()

// variant folds the two curve assignments into one byte-oriented interface
// for command code; typed keys and signatures never leave the closures below.
type variant interface {
	Name() string
	StandardCipherSuite(s bls.Scheme) string
	PublicKey(sk *bls.SecretKey) []byte
	Sign(sk *bls.SecretKey, msg []byte, opts *bls.Options) []byte
	Verify(pk, sig, msg []byte, opts *bls.Options) error
	Aggregate(sigs [][]byte) ([]byte, error)
	AggregateVerify(pks, msgs [][]byte, sig []byte, opts *bls.Options) (bool, error)
	Prove(sk *bls.SecretKey) []byte
	VerifyPossession(pk, proof []byte) error
}

type minPkVariant struct{}

func (minPkVariant) Name() string { return "minpk" }

func (minPkVariant) StandardCipherSuite(s bls.Scheme) string {
	switch s {
	case bls.MessageAugmentation:
		return minpk.CipherSuiteMessageAugmentation
	case bls.ProofOfPossession:
		return minpk.CipherSuiteProofOfPossession
	default:
		return minpk.CipherSuiteBasic
	}
}

func (minPkVariant) PublicKey(sk *bls.SecretKey) []byte {
	return minpk.PublicKeyFromSecretKey(sk).Bytes()
}

func (minPkVariant) Sign(sk *bls.SecretKey, msg []byte, opts *bls.Options) []byte {
	return minpk.Sign(sk, msg, opts).Bytes()
}

func (minPkVariant) Verify(pk, sig, msg []byte, opts *bls.Options) error {
	p, err := minpk.PublicKeyFromBytes(pk)
	if err != nil {
		return err
	}
	s, err := minpk.SignatureFromBytes(sig)
	if err != nil {
		return err
	}
	return s.Verify(p, msg, opts)
}

func (minPkVariant) Aggregate(sigs [][]byte) ([]byte, error) {
	parsed := make([]*minpk.Signature, len(sigs))
	for i, b := range sigs {
		s, err := minpk.SignatureFromBytes(b)
		if err != nil {
			return nil, err
		}
		parsed[i] = s
	}
	agg, err := minpk.AggregateSignatures(parsed)
	if err != nil {
		return nil, err
	}
	return agg.Bytes(), nil
}

func (minPkVariant) AggregateVerify(pks, msgs [][]byte, sig []byte, opts *bls.Options) (bool, error) {
	parsed := make([]*minpk.PublicKey, len(pks))
	for i, b := range pks {
		p, err := minpk.PublicKeyFromBytes(b)
		if err != nil {
			return false, err
		}
		parsed[i] = p
	}
	s, err := minpk.SignatureFromBytes(sig)
	if err != nil {
		return false, err
	}
	return minpk.AggregateVerify(parsed, msgs, s, opts)
}

func (minPkVariant) Prove(sk *bls.SecretKey) []byte {
	return minpk.Prove(sk).Bytes()
}

func (minPkVariant) VerifyPossession(pk, proof []byte) error {
	p, err := minpk.PublicKeyFromBytes(pk)
	if err != nil {
		return err
	}
	s, err := minpk.SignatureFromBytes(proof)
	if err != nil {
		return err
	}
	return s.VerifyPossession(p)
}

type minSigVariant struct{}

func (minSigVariant) Name() string { return "minsig" }

func (minSigVariant) StandardCipherSuite(s bls.Scheme) string {
	switch s {
	case bls.MessageAugmentation:
		return minsig.CipherSuiteMessageAugmentation
	case bls.ProofOfPossession:
		return minsig.CipherSuiteProofOfPossession
	default:
		return minsig.CipherSuiteBasic
	}
}

func (minSigVariant) PublicKey(sk *bls.SecretKey) []byte {
	return minsig.PublicKeyFromSecretKey(sk).Bytes()
}

func (minSigVariant) Sign(sk *bls.SecretKey, msg []byte, opts *bls.Options) []byte {
	return minsig.Sign(sk, msg, opts).Bytes()
}

func (minSigVariant) Verify(pk, sig, msg []byte, opts *bls.Options) error {
	p, err := minsig.PublicKeyFromBytes(pk)
	if err != nil {
		return err
	}
	s, err := minsig.SignatureFromBytes(sig)
	if err != nil {
		return err
	}
	return s.Verify(p, msg, opts)
}

func (minSigVariant) Aggregate(sigs [][]byte) ([]byte, error) {
	parsed := make([]*minsig.Signature, len(sigs))
	for i, b := range sigs {
		s, err := minsig.SignatureFromBytes(b)
		if err != nil {
			return nil, err
		}
		parsed[i] = s
	}
	agg, err := minsig.AggregateSignatures(parsed)
	if err != nil {
		return nil, err
	}
	return agg.Bytes(), nil
}

func (minSigVariant) AggregateVerify(pks, msgs [][]byte, sig []byte, opts *bls.Options) (bool, error) {
	parsed := make([]*minsig.PublicKey, len(pks))
	for i, b := range pks {
		p, err := minsig.PublicKeyFromBytes(b)
		if err != nil {
			return false, err
		}
		parsed[i] = p
	}
	s, err := minsig.SignatureFromBytes(sig)
	if err != nil {
		return false, err
	}
	return minsig.AggregateVerify(parsed, msgs, s, opts)
}

func (minSigVariant) Prove(sk *bls.SecretKey) []byte {
	return minsig.Prove(sk).Bytes()
}

func (minSigVariant) VerifyPossession(pk, proof []byte) error {
	p, err := minsig.PublicKeyFromBytes(pk)
	if err != nil {
		return err
	}
	s, err := minsig.SignatureFromBytes(proof)
	if err != nil {
		return err
	}
	return s.VerifyPossession(p)
}
