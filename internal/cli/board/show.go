package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/cli/styles"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show every column and its cards",
		Long: `Show the board in column order.

Examples:
  # Columns side by side
  swimlane board show

  # JSON output for agents
  swimlane board show --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	snapshot, err := cliInstance.App.BoardService.Load(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	view := cli.NewBoardView(snapshot.Board, snapshot.Order(), snapshot)

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(view)
	}

	vertical := cliInstance.App.Config().Board.Orientation == "vertical"
	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.RenderBoard(view.StyledColumns(), vertical))
	return err
}
