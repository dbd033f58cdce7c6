package column

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Change a column's display name",
		Args:  cobra.ExactArgs(2),
		RunE:  runRename,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.BoardService.RenameColumn(ctx, id, args[1]); err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.JSON {
		return formatter.Success(map[string]string{"column_id": id.String(), "name": args[1]})
	}
	formatter.Print("✓ Column %s renamed to '%s'\n", id, args[1])
	return nil
}
