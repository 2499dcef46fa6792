package blscli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/signatory-io/bls"
	"github.com/signatory-io/bls/keystore"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func decodeHex(name, value string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return data, nil
}

func promptPassword(confirm bool) ([]byte, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	if confirm {
		fmt.Fprint(os.Stderr, "Confirm password: ")
		again, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, err
		}
		if string(password) != string(again) {
			return nil, errors.New("passwords do not match")
		}
	}
	return password, nil
}

// loadSecretKey resolves the --sk / --keystore pair shared by every command
// that needs a secret key.
func loadSecretKey(skHex, keystorePath string) (*bls.SecretKey, error) {
	switch {
	case skHex != "":
		data, err := decodeHex("secret key", skHex)
		if err != nil {
			return nil, err
		}
		return bls.SecretKeyFromBytes(data)
	case keystorePath != "":
		k, err := keystore.Read(keystorePath)
		if err != nil {
			return nil, err
		}
		password, err := promptPassword(false)
		if err != nil {
			return nil, err
		}
		return k.Decrypt(password)
	default:
		return nil, errors.New("one of --sk or --keystore is required")
	}
}

func newKeygenCommand(conf *Config) *cobra.Command {
	var (
		ikmHex       string
		keystorePath string
		path         string
	)
	cmd := cobra.Command{
		Use:   "keygen",
		Short: "Generate a secret key, optionally sealed in an EIP-2335 keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				sk  *bls.SecretKey
				err error
			)
			if ikmHex != "" {
				ikm, err2 := decodeHex("ikm", ikmHex)
				if err2 != nil {
					return err2
				}
				sk, err = bls.KeyGen(ikm)
			} else {
				sk, err = bls.GenerateSecretKey()
			}
			if err != nil {
				return err
			}

			if keystorePath == "" {
				out := bls.SerializeSecretKey(sk)
				fmt.Println(hex.EncodeToString(out[:]))
				return nil
			}

			v, err := conf.variant()
			if err != nil {
				return err
			}
			password, err := promptPassword(true)
			if err != nil {
				return err
			}
			k, err := keystore.Encrypt(sk, v.PublicKey(sk), password, path)
			if err != nil {
				return err
			}
			if err := k.Write(keystorePath, 0600); err != nil {
				return err
			}
			log.WithField("path", keystorePath).Info("keystore written")
			fmt.Println(hex.EncodeToString(v.PublicKey(sk)))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&ikmHex, "ikm", "", "derive the key from this keying material (hex, at least 32 bytes) instead of random")
	f.StringVar(&keystorePath, "keystore", "", "write an EIP-2335 keystore here instead of printing the key")
	f.StringVar(&path, "path", "", "derivation path to record in the keystore")
	return &cmd
}

func newPubkeyCommand(conf *Config) *cobra.Command {
	var (
		skHex        string
		keystorePath string
		art          bool
	)
	cmd := cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key for a secret key",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := conf.variant()
			if err != nil {
				return err
			}
			sk, err := loadSecretKey(skHex, keystorePath)
			if err != nil {
				return err
			}
			pub := v.PublicKey(sk)
			fmt.Println(hex.EncodeToString(pub))
			if art {
				fmt.Print(fingerprintArt(v.Name(), pub))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&skHex, "sk", "", "secret key (hex)")
	f.StringVar(&keystorePath, "keystore", "", "EIP-2335 keystore file")
	f.BoolVar(&art, "art", false, "also print the fingerprint random art")
	return &cmd
}

// parseDerivationPath accepts the EIP-2334 notation m/i/j/... and returns the
// child indices.
func parseDerivationPath(path string) ([]uint32, error) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("derivation path must start with m: %s", path)
	}
	indices := make([]uint32, 0, len(parts)-1)
	for _, p := range parts[1:] {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad child index %q: %w", p, err)
		}
		indices = append(indices, uint32(n))
	}
	return indices, nil
}

func newDeriveCommand() *cobra.Command {
	var (
		seedHex string
		path    string
	)
	cmd := cobra.Command{
		Use:   "derive",
		Short: "Derive a key from a seed along an EIP-2333 path",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := decodeHex("seed", seedHex)
			if err != nil {
				return err
			}
			indices, err := parseDerivationPath(path)
			if err != nil {
				return err
			}
			sk, err := bls.DeriveMaster(seed)
			if err != nil {
				return err
			}
			for _, index := range indices {
				sk = sk.DeriveChild(index)
			}
			out := bls.SerializeSecretKey(sk)
			fmt.Println(hex.EncodeToString(out[:]))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&seedHex, "seed", "", "seed (hex, at least 32 bytes)")
	f.StringVar(&path, "path", "m", "derivation path, e.g. m/12381/3600/0/0")
	cmd.MarkFlagRequired("seed")
	return &cmd
}
