package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galeria/admin-api/internal/client/form"
	"github.com/galeria/admin-api/internal/client/resource"
	"github.com/galeria/admin-api/internal/client/table"
	"github.com/galeria/admin-api/internal/client/views"
)

func (a *app) newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "users", Short: "Manage user accounts"}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			users, err := a.users.List(cmd.Context())
			if err != nil {
				return err
			}
			return table.View[*resource.User]{
				Columns: views.UserColumns(), Search: lf.search, Page: lf.page, PageSize: a.cfg.PageSize,
			}.Render(cmd.OutOrStdout(), users)
		},
	}
	lf.bind(list)

	createFields := views.UserFields(true)
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			values, err := collect(cmd, createFields)
			if err != nil {
				return err
			}
			if values.Get("password") == "" {
				p, err := a.readPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
				values.Set("password", p)
			}
			if !values.Has("role") {
				values.Set("role", "user")
			}
			if err := form.Validate(createFields, values); err != nil {
				return err
			}
			u, err := a.users.Create(cmd.Context(), views.ToUserFields(values))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", u.ID, u.Email)
			return nil
		},
	}
	bindFields(create, createFields)

	updateFields := views.UserFields(false)
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a user; a blank password keeps the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			current, err := a.users.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			changes, err := collect(cmd, updateFields)
			if err != nil {
				return err
			}
			values := form.Merge(views.UserValues(current), changes)
			if err := form.Validate(updateFields, values); err != nil {
				return err
			}
			u, err := a.users.Update(cmd.Context(), args[0], views.ToUserFields(values))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated user %s\n", u.ID)
			return nil
		},
	}
	bindFields(update, updateFields)

	del := a.deleteCmd("user", func(cmd *cobra.Command, id string) error {
		return a.users.Delete(cmd.Context(), id)
	})

	cmd.AddCommand(list, create, update, del)
	return cmd
}
