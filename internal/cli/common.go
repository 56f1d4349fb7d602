package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type listFlags struct {
	search string
	page   int
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "case-insensitive text filter")
	cmd.Flags().IntVar(&f.page, "page", 1, "page to show")
}

// deleteCmd builds an admin-only "delete <id>" command.
func (a *app) deleteCmd(entity string, remove func(cmd *cobra.Command, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + entity,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			if err := remove(cmd, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", entity, args[0])
			return nil
		},
	}
}
