package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galeria/admin-api/internal/client/form"
	"github.com/galeria/admin-api/internal/client/resource"
	"github.com/galeria/admin-api/internal/client/table"
	"github.com/galeria/admin-api/internal/client/views"
)

func (a *app) newPhotosCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "photos", Short: "Manage photos"}
	fields := views.PhotoFields()

	var (
		lf        listFlags
		galleryID string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List photos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			var (
				items []*resource.Photo
				err   error
			)
			if galleryID != "" {
				items, err = a.photos.ListByGallery(cmd.Context(), galleryID)
			} else {
				items, err = a.photos.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			return table.View[*resource.Photo]{
				Columns: views.PhotoColumns(a.client.ResolveURL), Search: lf.search, Page: lf.page, PageSize: a.cfg.PageSize,
			}.Render(cmd.OutOrStdout(), items)
		},
	}
	lf.bind(list)
	list.Flags().StringVar(&galleryID, "gallery", "", "only photos of this gallery")

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a photo or move it to another gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			p, err := a.photos.Update(cmd.Context(), args[0], views.ToPhotoFields(values))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated photo %s (%s)\n", p.ID, p.Title)
			return nil
		},
	}
	bindFields(update, fields)

	del := a.deleteCmd("photo", func(cmd *cobra.Command, id string) error {
		return a.photos.Delete(cmd.Context(), id)
	})

	cmd.AddCommand(list, update, del)
	return cmd
}
