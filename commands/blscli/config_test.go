package blscli

import (
	"testing"

	"github.com/signatory-io/bls"
	"github.com/signatory-io/bls/minpk"
	"github.com/signatory-io/bls/minsig"
	"github.com/stretchr/testify/require"
)

func TestConfigOptions(t *testing.T) {
	cases := []struct {
		name    string
		conf    Config
		opts    *bls.Options
		wantErr bool
	}{
		{name: "zero value", conf: Config{}, opts: &bls.Options{}},
		{
			name: "standard suite minpk pop",
			conf: Config{Variant: "minpk", Scheme: "pop", CipherSuite: "standard"},
			opts: &bls.Options{Scheme: bls.ProofOfPossession, CipherSuite: []byte(minpk.CipherSuiteProofOfPossession)},
		},
		{
			name: "standard suite minsig aug",
			conf: Config{Variant: "minsig", Scheme: "aug", CipherSuite: "standard"},
			opts: &bls.Options{Scheme: bls.MessageAugmentation, CipherSuite: []byte(minsig.CipherSuiteMessageAugmentation)},
		},
		{
			name: "verbatim tag",
			conf: Config{Scheme: "basic", CipherSuite: "MY_APP_V1"},
			opts: &bls.Options{Scheme: bls.Basic, CipherSuite: []byte("MY_APP_V1")},
		},
		{name: "unknown scheme", conf: Config{Scheme: "threshold"}, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts, err := c.conf.options()
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.opts, opts)
		})
	}

	bad := Config{Variant: "maxpk"}
	_, err := bad.variant()
	require.Error(t, err)
}

func TestParseDerivationPath(t *testing.T) {
	indices, err := parseDerivationPath("m/12381/3600/0/0")
	require.NoError(t, err)
	require.Equal(t, []uint32{12381, 3600, 0, 0}, indices)

	indices, err = parseDerivationPath("m")
	require.NoError(t, err)
	require.Empty(t, indices)

	for _, bad := range []string{"12381/0", "m/x", "m/-1", "m/4294967296"} {
		_, err := parseDerivationPath(bad)
		require.Error(t, err, bad)
	}
}
