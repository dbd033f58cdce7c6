package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/app"
	swimcli "github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance
// The app is injected through the context so commands use the test database
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	out := testutil.SetupCobraCommand(cmd, args)
	err := cmd.ExecuteContext(swimcli.WithApp(ctx, testApp))
	return out.String(), err
}
