package column

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// RemoveCmd returns the column remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an empty column",
		Long: `Remove an empty column. Move or delete its cards first.

Examples:
  swimlane column remove D
`,
		Args: cobra.ExactArgs(1),
		RunE: runRemove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id := types.ColumnID(args[0])

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	session, err := cliInstance.App.OpenSession(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	if err := session.RemoveColumn(ctx, id); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON {
		return formatter.Success(map[string]string{"column_id": id.String()})
	}
	formatter.Print("✓ Column %s removed\n", id)
	return nil
}
