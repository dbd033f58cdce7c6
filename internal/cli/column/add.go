package column

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [ID]",
		Short: "Append a column",
		Long: `Append a column to the board. Without an ID the next letter after the
last column is used (A, B, C -> D).

Examples:
  swimlane column add
  swimlane column add R --name="Review"
  COLUMN_ID=$(swimlane column add --quiet)
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().String("name", "", "Column name")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	name, _ := cmd.Flags().GetString("name")

	var id types.ColumnID
	if len(args) == 1 {
		id = types.ColumnID(args[0])
	}

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

	column, err := session.AddColumn(ctx, id, name)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	view := cli.ColumnView{ID: column.ID.String(), Name: column.Name, Cards: []cli.CardView{}}
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(view)
	}

	formatter.Print("✓ Column %s created\n", column.ID)
	return nil
}
