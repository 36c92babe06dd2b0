package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/skinuse/internal/config"
	"github.com/roach88/skinuse/internal/testutil"
)

// execute runs the full root command with args, returning stdout and stderr.
func execute(t *testing.T, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(cfg)
	return executeCommand(t, cmd, args...)
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func testRootOptions() *RootOptions {
	return &RootOptions{Format: "text", IDs: testutil.NewSequentialIDs("")}
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, GetExitCode(err), "error: %v", err)
}
