package testutil

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
)

// SetupCobraCommand sets args on cmd and routes both of its output streams
// into the returned buffer. Usage and error printing are silenced so the
// buffer holds only what the command itself wrote.
func SetupCobraCommand(cmd *cobra.Command, args []string) *bytes.Buffer {
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &out
}

// ExecuteCommand runs cmd with args and returns everything it printed
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out := SetupCobraCommand(cmd, args)
	err := cmd.Execute()
	return out.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
