package blscli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func messageBytes(msg, msgHex string) ([]byte, error) {
	if msgHex != "" {
		return decodeHex("message", msgHex)
	}
	if msg == "" {
		return nil, errors.New("one of --msg or --msg-hex is required")
	}
	return []byte(msg), nil
}

func newSignCommand(conf *Config) *cobra.Command {
	var (
		skHex        string
		keystorePath string
		msg          string
		msgHex       string
	)
	cmd := cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := conf.variant()
			if err != nil {
				return err
			}
			opts, err := conf.options()
			if err != nil {
				return err
			}
			sk, err := loadSecretKey(skHex, keystorePath)
			if err != nil {
				return err
			}
			m, err := messageBytes(msg, msgHex)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(v.Sign(sk, m, opts)))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&skHex, "sk", "", "secret key (hex)")
	f.StringVar(&keystorePath, "keystore", "", "EIP-2335 keystore file")
	f.StringVar(&msg, "msg", "", "message text")
	f.StringVar(&msgHex, "msg-hex", "", "message bytes (hex)")
	return &cmd
}

func newVerifyCommand(conf *Config) *cobra.Command {
	var (
		pkHex  string
		sigHex string
		msg    string
		msgHex string
	)
	cmd := cobra.Command{
		Use:   "verify",
		Short: "Verify a signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := conf.variant()
			if err != nil {
				return err
			}
			opts, err := conf.options()
			if err != nil {
				return err
			}
			pk, err := decodeHex("public key", pkHex)
			if err != nil {
				return err
			}
			sig, err := decodeHex("signature", sigHex)
			if err != nil {
				return err
			}
			m, err := messageBytes(msg, msgHex)
			if err != nil {
				return err
			}
			if err := v.Verify(pk, sig, m, opts); err != nil {
				return err
			}
			fmt.Println("OK")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&pkHex, "pk", "", "public key (hex)")
	f.StringVar(&sigHex, "sig", "", "signature (hex)")
	f.StringVar(&msg, "msg", "", "message text")
	f.StringVar(&msgHex, "msg-hex", "", "message bytes (hex)")
	cmd.MarkFlagRequired("pk")
	cmd.MarkFlagRequired("sig")
	return &cmd
}

func newAggregateCommand(conf *Config) *cobra.Command {
	cmd := cobra.Command{
		Use:   "aggregate <signature hex>...",
		Short: "Aggregate signatures into one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := conf.variant()
			if err != nil {
				return err
			}
			sigs := make([][]byte, len(args))
			for i, a := range args {
				s, err := decodeHex("signature", a)
				if err != nil {
					return err
				}
				sigs[i] = s
			}
			agg, err := v.Aggregate(sigs)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(agg))
			return nil
		},
	}
	return &cmd
}

func newAggregateVerifyCommand(conf *Config) *cobra.Command {
	var (
		sigHex string
		pairs  []string
	)
	cmd := cobra.Command{
		Use:   "aggregate-verify",
		Short: "Verify an aggregate signature over (public key, message) pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := conf.variant()
			if err != nil {
				return err
			}
			opts, err := conf.options()
			if err != nil {
				return err
			}
			sig, err := decodeHex("signature", sigHex)
			if err != nil {
				return err
			}
			pks := make([][]byte, len(pairs))
			msgs := make([][]byte, len(pairs))
			for i, pair := range pairs {
				pkHex, msgHex, ok := strings.Cut(pair, ":")
				if !ok {
					return fmt.Errorf("pair must be <pk hex>:<msg hex>: %s", pair)
				}
				if pks[i], err = decodeHex("public key", pkHex); err != nil {
					return err
				}
				if msgs[i], err = decodeHex("message", msgHex); err != nil {
					return err
				}
			}
			ok, err := v.AggregateVerify(pks, msgs, sig, opts)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("aggregate signature does not verify")
			}
			fmt.Println("OK")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&sigHex, "sig", "", "aggregate signature (hex)")
	f.StringArrayVar(&pairs, "pair", nil, "<pk hex>:<msg hex>, repeatable")
	cmd.MarkFlagRequired("sig")
	cmd.MarkFlagRequired("pair")
	return &cmd
}

func newProveCommand(conf *Config) *cobra.Command {
	var (
		skHex        string
		keystorePath string
	)
	cmd := cobra.Command{
		Use:   "prove",
		Short: "Produce a proof of possession for a secret key",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := conf.variant()
			if err != nil {
				return err
			}
			sk, err := loadSecretKey(skHex, keystorePath)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(v.Prove(sk)))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&skHex, "sk", "", "secret key (hex)")
	f.StringVar(&keystorePath, "keystore", "", "EIP-2335 keystore file")
	return &cmd
}

func newVerifyPossessionCommand(conf *Config) *cobra.Command {
	var (
		pkHex    string
		proofHex string
	)
	cmd := cobra.Command{
		Use:   "verify-possession",
		Short: "Verify a proof of possession",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := conf.variant()
			if err != nil {
				return err
			}
			pk, err := decodeHex("public key", pkHex)
			if err != nil {
				return err
			}
			proof, err := decodeHex("proof", proofHex)
			if err != nil {
				return err
			}
			if err := v.VerifyPossession(pk, proof); err != nil {
				return err
			}
			fmt.Println("OK")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&pkHex, "pk", "", "public key (hex)")
	f.StringVar(&proofHex, "proof", "", "proof of possession (hex)")
	cmd.MarkFlagRequired("pk")
	cmd.MarkFlagRequired("proof")
	return &cmd
}
