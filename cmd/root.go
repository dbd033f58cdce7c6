package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/cli/board"
	"github.com/thenoetrevino/swimlane/internal/cli/card"
	"github.com/thenoetrevino/swimlane/internal/cli/column"
	"github.com/thenoetrevino/swimlane/internal/launcher"
	"github.com/thenoetrevino/swimlane/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "swimlane",
	Short: "Swimlane - a drag-and-drop kanban board for the terminal",
	Long: `Swimlane is a multi-column kanban board. Cards and columns are moved by
dragging them with the mouse or the keyboard; the board is stored in sqlite.

Run without arguments in a terminal to open the board. When stdout is not a
terminal the board is printed instead.

Examples:
  # Open the board
  swimlane

  # Script against the same board
  swimlane card add --column A --title "Write docs"
  swimlane card move <card-id> --to B
  swimlane board show --json
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The TUI initializes logging itself
		if cmd.Root() == cmd {
			return
		}
		if err := logging.Init(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
		}
	},
	RunE: runRoot,
}

func init() {
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
}

func runRoot(cmd *cobra.Command, args []string) error {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return launcher.Launch(cmd.Context())
	}

	show := board.ShowCmd()
	show.SetContext(cmd.Context())
	show.SetOut(cmd.OutOrStdout())
	show.SetErr(cmd.ErrOrStderr())
	return show.RunE(show, nil)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
