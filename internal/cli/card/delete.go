package card

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/swimlane/internal/cli"
	"github.com/thenoetrevino/swimlane/internal/types"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete CARD",
		Short: "Delete a card by dropping it on the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return drop(cmd, types.CardID(args[0]), types.TrashID)
		},
	}

	cli.AddOutputFlags(cmd)

	return cmd
}
