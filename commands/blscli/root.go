// Package blscli implements the bls-cli command set: key generation and
// EIP-2333 derivation, signing, verification, aggregation and EIP-2335
// keystore handling, over either curve assignment.
package blscli

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:   "bls-cli [options]",
		Short: "BLS12-381 signature tool",
	}

	var conf Config
	conf.Default()
	conf.RegisterFlags(cmd.PersistentFlags())
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return conf.Load(cmd.Flags())
	}

	cmd.AddCommand(newConfigCommand(&conf))
	cmd.AddCommand(newKeygenCommand(&conf))
	cmd.AddCommand(newPubkeyCommand(&conf))
	cmd.AddCommand(newDeriveCommand())
	cmd.AddCommand(newSignCommand(&conf))
	cmd.AddCommand(newVerifyCommand(&conf))
	cmd.AddCommand(newAggregateCommand(&conf))
	cmd.AddCommand(newAggregateVerifyCommand(&conf))
	cmd.AddCommand(newProveCommand(&conf))
	cmd.AddCommand(newVerifyPossessionCommand(&conf))

	return &cmd
}
