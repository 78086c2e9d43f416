// Package lend provides the borrow and return commands.
package lend

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// ErrUnavailable is returned by borrow when no copies are left.
var ErrUnavailable = errors.New(constants.ErrMsgUnavailable)

// NewBorrowCommand creates the borrow command.
func NewBorrowCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "borrow <title>",
		GroupID: "lending",
		Short:   "Take one copy of a book",
		Long: `Borrow takes one copy of a book off the shelf. It fails when the
title is unknown or when no copies are left.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]

			lib, err := app.Library()
			if err != nil {
				return err
			}

			ok, err := lib.Borrow(title)
			if err != nil {
				return err
			}
			if !ok {
				return ErrUnavailable
			}

			left, err := lib.Quantity(title)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Borrowed %s (%d left)\n", emoji.Success, title, left)
			return nil
		},
	}
}
