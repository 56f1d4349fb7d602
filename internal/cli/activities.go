package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galeria/admin-api/internal/client/form"
	"github.com/galeria/admin-api/internal/client/resource"
	"github.com/galeria/admin-api/internal/client/table"
	"github.com/galeria/admin-api/internal/client/views"
)

func (a *app) newActivitiesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "activities", Short: "Manage activities"}
	fields := views.ActivityFields()

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			items, err := a.activities.List(cmd.Context())
			if err != nil {
				return err
			}
			return table.View[*resource.Activity]{
				Columns: views.ActivityColumns(), Search: lf.search, Page: lf.page, PageSize: a.cfg.PageSize,
			}.Render(cmd.OutOrStdout(), items)
		},
	}
	lf.bind(list)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create an activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			values, err := collect(cmd, fields)
			if err != nil {
				return err
			}
			if err := form.Validate(fields, values); err != nil {
				return err
			}
			item, err := a.activities.Create(cmd.Context(), views.ToActivityFields(values))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created activity %s\n", item.ID)
			return nil
		},
	}
	bindFields(create, fields)

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			current, err := a.activities.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			changes, err := collect(cmd, fields)
			if err != nil {
				return err
			}
			values := form.Merge(views.ActivityValues(current), changes)
			if err := form.Validate(fields, values); err != nil {
				return err
			}
			item, err := a.activities.Update(cmd.Context(), args[0], views.ToActivityFields(values))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated activity %s\n", item.ID)
			return nil
		},
	}
	bindFields(update, fields)

	del := a.deleteCmd("activity", func(cmd *cobra.Command, id string) error {
		return a.activities.Delete(cmd.Context(), id)
	})

	cmd.AddCommand(list, create, update, del)
	return cmd
}
