package column

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Drag a column onto another column's place",
		Long: `Drag a column onto another column; it takes that column's index.

Examples:
  swimlane column move C --to=A
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("to", "", "Column ID whose place is taken (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id := types.ColumnID(args[0])
	to, _ := cmd.Flags().GetString("to")

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
	if !session.Board().Has(id) {
		return cli.Fail(formatter, fmt.Errorf("column %s: %w", id, app.ErrUnknownID))
	}

	outcome, err := session.Drop(ctx, id, types.ID(to))
	if err != nil {
		return cli.Fail(formatter, err)
	}
	if !outcome.Committed() {
		return cli.Fail(formatter, fmt.Errorf("%w: %s", app.ErrNotCommitted, outcome))
	}

	columns := session.Container().Columns()
	if formatter.JSON {
		return formatter.Success(map[string]any{"column_id": id.String(), "columns": columns})
	}
	formatter.Print("✓ Column %s moved to position %d\n", id, slices.Index(columns, id))
	return nil
}
