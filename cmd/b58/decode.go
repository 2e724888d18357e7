package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/streamingfast/b58"
	"github.com/streamingfast/b58/cmd/b58/output"
	. "github.com/streamingfast/cli"
)

var DecodeCmd = Command(decodeRunE,
	"decode <base58-string>",
	"Decode a Base58 string and print its bytes",
	ExactArgs(1),
	Flags(func(flags *pflag.FlagSet) {
		flags.String("output", "hex", "output display scheme. Supported schemes: 'hex', 'ascii', 'base64', 'proto:///path/to/file.proto@<full_qualified_message_type>'")
	}),
)

func decodeRunE(cmd *cobra.Command, args []string) error {
	display, err := output.NewDisplay(viper.GetString("decode-output"))
	if err != nil {
		return fmt.Errorf("output display: %w", err)
	}

	input := args[0]
	zlog.Debug("decoding base58 input",
		zap.String("input", input),
	)

	out, err := b58.Decode(input)
	if err != nil {
		return fmt.Errorf("decode base58: %w", err)
	}

	fmt.Println(display.Display(out))
	return nil
}
