package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/streamingfast/logging"

	"github.com/streamingfast/b58"
	. "github.com/streamingfast/cli"
)

// Commit sha1 value, injected via go build `ldflags` at build time
var commit = ""

// Version value, injected via go build `ldflags` at build time
var version = "dev"

// Date value, injected via go build `ldflags` at build time
var date = ""

var zlog, tracer = logging.RootLogger("b58", "github.com/streamingfast/b58/cmd/b58")

func init() {
	logging.InstantiateLoggers()
}

func main() {
	Run("b58", "Base58 conversion tool",
		ConfigureViper("B58"),
		ConfigureVersion(),

		DecodeCmd,
		EncodeCmd,
		DecodeCheckCmd,
		EncodeCheckCmd,
		ValidateCmd,

		AfterAllHook(func(cmd *cobra.Command) {
			// The historical surface is `b58 <base58-string>`, a single
			// positional argument decoded and printed as hex. Keep it working
			// on the root command, subcommands still resolve first.
			cmd.Args = cobra.ExactArgs(1)
			cmd.RunE = rootDecodeRunE
			cmd.Long = "Base58 conversion tool.\n\n" +
				"A bare 'b58 <base58-string>' invocation decodes the argument and prints\n" +
				"its bytes as lowercase hex. Subcommand names win over positional\n" +
				"arguments: an input that spells a subcommand name (like 'decode', a\n" +
				"valid Base58 string) must go through 'b58 decode <base58-string>'."
		}),
	)
}

func rootDecodeRunE(cmd *cobra.Command, args []string) error {
	out, err := b58.Decode(args[0])
	if err != nil {
		return fmt.Errorf("decode base58: %w", err)
	}

	fmt.Println(b58.H(out))
	return nil
}

func ConfigureVersion() CommandOption {
	return CommandOptionFunc(func(cmd *cobra.Command) {
		cmd.Version = versionString(version)
	})
}

func versionString(version string) string {
	var labels []string
	if len(commit) >= 7 {
		labels = append(labels, fmt.Sprintf("Commit %s", commit[0:7]))
	}

	if date != "" {
		labels = append(labels, fmt.Sprintf("Built %s", date))
	}

	if len(labels) == 0 {
		return version
	}

	return fmt.Sprintf("%s (%s)", version, strings.Join(labels, ", "))
}
