package card

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/cli/styles"
	"github.com/thenoetrevino/swimlane/internal/tui/components"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show CARD",
		Short: "Show a card with its rendered description",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	id := types.CardID(args[0])

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
	card, err := cliInstance.App.BoardService.GetCard(ctx, id)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	column := types.None
	for _, col := range snapshot.Board.Keys() {
		for _, c := range snapshot.Board.Cards(col) {
			if c == id {
				column = col
			}
		}
	}

	view := cli.NewCardView(id, column, card)
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(view)
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(card.DisplayTitle()))
	b.WriteString("\n")
	b.WriteString(styles.LabelStyle.Render("Column: "))
	b.WriteString(styles.ValueStyle.Render(snapshot.Column(column).DisplayName()))
	b.WriteString("\n")
	b.WriteString(styles.LabelStyle.Render("Created: "))
	b.WriteString(styles.ValueStyle.Render(card.CreatedAt.Format("2006-01-02 15:04")))
	b.WriteString("\n\n")
	b.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: card.Description,
		Width:       styles.CardWidth - 6,
	}))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.RenderCard(b.String()))
	return err
}
