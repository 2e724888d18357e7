package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/streamingfast/b58"
	. "github.com/streamingfast/cli"
)

var DecodeCheckCmd = Command(decodeCheckRunE,
	"decode-check <base58-string>",
	"Decode a Base58Check string, verify its checksum and print its payload",
	ExactArgs(1),
)

func decodeCheckRunE(cmd *cobra.Command, args []string) error {
	input := args[0]
	zlog.Debug("decoding base58check input",
		zap.String("input", input),
	)

	payload, version, err := b58.CheckDecode(input)
	if err != nil {
		return fmt.Errorf("decode base58check: %w", err)
	}

	fmt.Println("")
	fmt.Printf("Version\t->\t%d\n", version)
	fmt.Printf("Payload\t->\t%s\n", b58.H(payload))
	return nil
}
