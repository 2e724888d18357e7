package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/streamingfast/b58"
	"github.com/streamingfast/b58/cmd/b58/input"
	. "github.com/streamingfast/cli"
)

var EncodeCmd = Command(encodeRunE,
	"encode <input>",
	"Encode bytes as a Base58 string",
	ExactArgs(1),
	Flags(func(flags *pflag.FlagSet) {
		flags.String("input", "hex", "input reading scheme. Supported schemes: 'hex', 'ascii'")
	}),
)

func encodeRunE(cmd *cobra.Command, args []string) error {
	reader, err := input.NewReader(viper.GetString("encode-input"))
	if err != nil {
		return fmt.Errorf("input reader: %w", err)
	}

	zlog.Debug("encoding input to base58",
		zap.String("input", args[0]),
	)

	data, err := reader.Read(args[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Println(b58.Encode(data))
	return nil
}
