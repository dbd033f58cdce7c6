package card

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/app"
	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/kanban"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// MoveResult describes a simulated drop
type MoveResult struct {
	Card    string        `json:"card"`
	Target  string        `json:"target"`
	Outcome string        `json:"outcome"`
	Board   cli.BoardView `json:"board"`
}

// GetID returns the moved card for quiet output
func (r MoveResult) GetID() string {
	return r.Card
}

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move CARD",
		Short: "Drag a card onto a card, a column, the trash or a new column",
		Long: `Drag a card onto a target exactly as the board would.

TARGET may be another card (the card lands at its index), a column (the card
lands at the end), "void" (the card is deleted) or "placeholder" (the card
moves into a new column).

Examples:
  swimlane card move 3f2a --to=B
  swimlane card move 3f2a --to=9c1e
  swimlane card move 3f2a --to=placeholder
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("to", "", "Drop target: card ID, column ID, void or placeholder (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("to")
	return drop(cmd, types.CardID(args[0]), types.ID(target))
}

// drop runs one simulated gesture and reports it
func drop(cmd *cobra.Command, active, over types.ID) error {
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

	session, err := cliInstance.App.OpenSession(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	if session.Board().Has(active) {
		return cli.Fail(formatter, fmt.Errorf("%s is a column, use column move: %w", active, app.ErrUnknownID))
	}

	outcome, err := session.Drop(ctx, active, over)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	if !outcome.Committed() && outcome != kanban.OutcomeUnchanged {
		return cli.Fail(formatter, fmt.Errorf("%w: %s", app.ErrNotCommitted, outcome))
	}

	snapshot, err := cliInstance.App.BoardService.Load(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	result := MoveResult{
		Card:    active.String(),
		Target:  over.String(),
		Outcome: outcome.String(),
		Board:   cli.NewBoardView(session.Board(), session.Container().Columns(), snapshot),
	}
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(result)
	}

	switch outcome {
	case kanban.OutcomeDeleted:
		formatter.Print("✓ Card %s deleted\n", active)
	case kanban.OutcomeColumnCreated:
		column, _ := session.Container().FindColumn(active)
		formatter.Print("✓ Card %s moved to new column %s\n", active, column)
	case kanban.OutcomeUnchanged:
		formatter.Print("Card %s did not move\n", active)
	default:
		pos := session.Container().Position(active)
		formatter.Print("✓ Card %s moved to column %s at position %d\n", active, pos.ColumnID, pos.Index)
	}
	return nil
}
