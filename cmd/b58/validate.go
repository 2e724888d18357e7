package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamingfast/b58"
	. "github.com/streamingfast/cli"
)

var ValidateCmd = Command(validateRunE,
	"validate <base58-string>",
	"Check that every character of the input belongs to the Base58 alphabet",
	ExactArgs(1),
)

func validateRunE(cmd *cobra.Command, args []string) error {
	if err := b58.Validate(args[0]); err != nil {
		return err
	}

	fmt.Println("valid")
	return nil
}
