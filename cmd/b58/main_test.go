package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "b58-test")
	if err != nil {
		fmt.Fprintln(os.Stderr, "temp dir:", err)
		os.Exit(1)
	}

	binaryPath = filepath.Join(dir, "b58")
	if out, err := exec.Command("go", "build", "-o", binaryPath, ".").CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "build b58: %s\n%s", err, out)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestBareInvocation(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectExitCode int
		expectStdout   string
		expectInOutput string
	}{
		{
			name:           "decode to hex",
			args:           []string{"2NEpo7TZRRrLZSi2U"},
			expectExitCode: 0,
			expectStdout:   "48656c6c6f20576f726c6421\n",
		},
		{
			name:           "empty string decodes to empty line",
			args:           []string{""},
			expectExitCode: 0,
			expectStdout:   "\n",
		},
		{
			name:           "no arguments",
			args:           nil,
			expectExitCode: 1,
		},
		{
			name:           "too many arguments",
			args:           []string{"2g", "2g"},
			expectExitCode: 1,
		},
		{
			name:           "invalid character",
			args:           []string{"0OIl"},
			expectExitCode: 1,
			expectInOutput: "invalid base58 character",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := exec.Command(binaryPath, test.args...)
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			if test.expectExitCode == 0 {
				require.NoError(t, err, "stderr: %s", stderr.String())
				assert.Equal(t, test.expectStdout, stdout.String())
			} else {
				exitErr, ok := err.(*exec.ExitError)
				require.True(t, ok, "expected a non-zero exit, stdout: %s", stdout.String())
				assert.Equal(t, test.expectExitCode, exitErr.ExitCode())
			}

			if test.expectInOutput != "" {
				assert.Contains(t, stdout.String()+stderr.String(), test.expectInOutput)
			}
		})
	}
}

func TestSubcommandInvocation(t *testing.T) {
	var stdout bytes.Buffer
	cmd := exec.Command(binaryPath, "decode", "--output", "ascii", "2NEpo7TZRRrLZSi2U")
	cmd.Stdout = &stdout

	require.NoError(t, cmd.Run())
	assert.Equal(t, "Hello World!\n", stdout.String())
}
