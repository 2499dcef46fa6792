package main

import (
	"fmt"
	"os"

	"github.com/signatory-io/bls/commands/blscli"
)

func main() {
	cmd := blscli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
