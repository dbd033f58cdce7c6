package card

import (
	"github.com/spf13/cobra"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
