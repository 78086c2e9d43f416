package lend

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
)

// NewReturnCommand creates the return command.
func NewReturnCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "return <title>",
		GroupID: "lending",
		Short:   "Put one copy of a book back",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]

			lib, err := app.Library()
			if err != nil {
				return err
			}

			if _, err := lib.Return(title); err != nil {
				return err
			}

			onHand, err := lib.Quantity(title)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Returned %s (%d on hand)\n", emoji.Success, title, onHand)
			return nil
		},
	}
}
