package card

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/cli"
	boardservice "github.com/thenoetrevino/swimlane/internal/services/board"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// AddCmd returns the card add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card to the end of a column",
		Long: `Add a card to the end of a column.

Examples:
  # Add to the first column
  swimlane card add --column=A --title="Write docs"

  # With a markdown description
  swimlane card add --column=B --title="Fix login" --description="## Steps"

  # Quiet mode for bash capture
  CARD_ID=$(swimlane card add --column=A --title="Ship" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("title", "", "Card title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Card description (markdown)")
	cmd.Flags().String("id", "", "Card ID (generated when empty)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	column, _ := cmd.Flags().GetString("column")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	id, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	card, err := cliInstance.App.BoardService.CreateCard(ctx, boardservice.CreateCardRequest{
		ID:          types.CardID(id),
		ColumnID:    types.ColumnID(column),
		Title:       title,
		Description: description,
	})
	if err != nil {
		return cli.Fail(formatter, err)
	}

	view := cli.NewCardView(card.ID, types.ColumnID(column), card)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(view)
	}

	formatter.Print("✓ Card '%s' added to column %s (ID: %s)\n", card.Title, column, card.ID)
	return nil
}
