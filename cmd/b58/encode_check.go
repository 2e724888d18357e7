package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/streamingfast/b58"
	. "github.com/streamingfast/cli"
)

var EncodeCheckCmd = Command(encodeCheckRunE,
	"encode-check <hex-payload>",
	"Encode a payload as a Base58Check string",
	ExactArgs(1),
	Flags(func(flags *pflag.FlagSet) {
		flags.Uint8("version", 0, "version byte prepended to the payload")
	}),
)

func encodeCheckRunE(cmd *cobra.Command, args []string) error {
	payload, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("payload must be hex: %w", err)
	}

	version := byte(viper.GetUint("encode-check-version"))
	zlog.Debug("encoding payload to base58check",
		zap.String("payload", args[0]),
		zap.Uint8("version", version),
	)

	fmt.Println(b58.CheckEncode(payload, version))
	return nil
}
