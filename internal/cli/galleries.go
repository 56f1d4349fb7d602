package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/galeria/admin-api/internal/client/form"
	"github.com/galeria/admin-api/internal/client/resource"
	"github.com/galeria/admin-api/internal/client/table"
	"github.com/galeria/admin-api/internal/client/views"
)

func (a *app) newGalleriesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "galleries", Short: "Manage photo galleries"}

	var lf listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List galleries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			items, err := a.galleries.List(cmd.Context())
			if err != nil {
				return err
			}
			return table.View[*resource.Gallery]{
				Columns: views.GalleryColumns(), Search: lf.search, Page: lf.page, PageSize: a.cfg.PageSize,
			}.Render(cmd.OutOrStdout(), items)
		},
	}
	lf.bind(list)

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a gallery and its photos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			g, err := a.galleries.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\ndate: %s\nsite: %s\n\n", g.Title, g.Date, g.Site)
			return table.Write(out, views.PhotoColumns(a.client.ResolveURL), g.Photos)
		},
	}

	createFields := views.GalleryFields(true)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a gallery, optionally uploading images into it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			values, err := collect(cmd, createFields)
			if err != nil {
				return err
			}
			if err := form.Validate(createFields, values); err != nil {
				return err
			}
			files := views.ToFiles(values.Files("images"))
			g, err := a.galleries.CreateWithImages(cmd.Context(), views.ToGalleryFields(values), files)
			if g != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Created gallery %s with %d photo(s)\n", g.ID, len(g.Photos))
			}
			return err
		},
	}
	bindFields(create, createFields)

	updateFields := views.GalleryFields(false)
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			current, err := a.galleries.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			changes, err := collect(cmd, updateFields)
			if err != nil {
				return err
			}
			values := form.Merge(views.GalleryValues(current), changes)
			if err := form.Validate(updateFields, values); err != nil {
				return err
			}
			g, err := a.galleries.Update(cmd.Context(), args[0], views.ToGalleryFields(values))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated gallery %s\n", g.ID)
			return nil
		},
	}
	bindFields(update, updateFields)

	uploadFields := []form.Field{views.ImagesField(true)}
	upload := &cobra.Command{
		Use:   "upload <id>",
		Short: "Upload images into a gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAdmin(); err != nil {
				return err
			}
			values, err := collect(cmd, uploadFields)
			if err != nil {
				return err
			}
			if err := form.Validate(uploadFields, values); err != nil {
				return err
			}
			photos, err := a.galleries.UploadImages(cmd.Context(), args[0], views.ToFiles(values.Files("images")))
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %d photo(s)\n", len(photos))
			var upErr *resource.UploadError
			if errors.As(err, &upErr) {
				return fmt.Errorf("%d of %d uploads failed: %w", upErr.Failed, upErr.Total, upErr.Err)
			}
			return err
		},
	}
	bindFields(upload, uploadFields)

	del := a.deleteCmd("gallery", func(cmd *cobra.Command, id string) error {
		return a.galleries.Delete(cmd.Context(), id)
	})

	cmd.AddCommand(list, show, create, update, upload, del)
	return cmd
}
