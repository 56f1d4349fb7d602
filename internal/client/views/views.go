// Package views holds the field and column descriptors of each entity and
// converts between form values and resource fields.
package views

import (
	"strconv"

	"github.com/galeria/admin-api/internal/client/form"
	"github.com/galeria/admin-api/internal/client/resource"
	"github.com/galeria/admin-api/internal/client/table"
)

// Photo upload constraints, mirrored from the server.
var (
	ImageTypes          = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	MaxImageBytes int64 = 2 << 20
)

var roleOptions = []form.Option{
	{Value: "admin", Label: "Administrator"},
	{Value: "user", Label: "User"},
}

// UserFields is the user form. Passwords are required on create only.
func UserFields(creating bool) []form.Field {
	return []form.Field{
		form.TextField{Base: form.Base{Name: "name", Label: "Name", Required: creating}, MaxLength: 255},
		form.TextField{Base: form.Base{Name: "email", Label: "Email", Required: creating}, Kind: form.KindEmail, MaxLength: 255},
		form.SelectField{Base: form.Base{Name: "role", Label: "Role", Required: creating}, Options: roleOptions},
		form.TextField{Base: form.Base{Name: "password", Label: "Password", Required: creating}, Kind: form.KindPassword},
		form.TextField{Base: form.Base{Name: "password_confirmation", Label: "Confirm password"}, Kind: form.KindPassword},
	}
}

func UserColumns() []table.Column[*resource.User] {
	return []table.Column[*resource.User]{
		{Label: "ID", Render: func(u *resource.User) string { return u.ID }},
		{Label: "Name", Value: func(u *resource.User) string { return u.Name }},
		{Label: "Email", Value: func(u *resource.User) string { return u.Email }},
		{Label: "Role", Value: func(u *resource.User) string { return u.Role }},
	}
}

func UserValues(u *resource.User) form.Values {
	return form.NewValues().Set("name", u.Name).Set("email", u.Email).Set("role", u.Role)
}

func ToUserFields(v form.Values) resource.UserFields {
	return resource.UserFields{
		Name:                 v.Get("name"),
		Email:                v.Get("email"),
		Role:                 v.Get("role"),
		Password:             v.Get("password"),
		PasswordConfirmation: v.Get("password_confirmation"),
	}
}

func ActivityFields() []form.Field {
	return []form.Field{
		form.TextField{Base: form.Base{Name: "title", Label: "Title", Required: true}, MaxLength: 255},
		form.TextField{Base: form.Base{Name: "description", Label: "Description", Required: true}},
		form.TextField{Base: form.Base{Name: "date", Label: "Date", Required: true}, Kind: form.KindDate},
		form.TextField{Base: form.Base{Name: "site", Label: "Site"}, MaxLength: 255},
	}
}

func ActivityColumns() []table.Column[*resource.Activity] {
	return []table.Column[*resource.Activity]{
		{Label: "ID", Render: func(a *resource.Activity) string { return a.ID }},
		{Label: "Title", Value: func(a *resource.Activity) string { return a.Title }},
		{Label: "Date", Value: func(a *resource.Activity) string { return a.Date }},
		{Label: "Site", Value: func(a *resource.Activity) string { return a.Site }},
		{Label: "Description", Value: func(a *resource.Activity) string { return a.Description }},
	}
}

func ActivityValues(a *resource.Activity) form.Values {
	return form.NewValues().
		Set("title", a.Title).
		Set("description", a.Description).
		Set("date", a.Date).
		Set("site", a.Site)
}

func ToActivityFields(v form.Values) resource.ActivityFields {
	return resource.ActivityFields{
		Title:       v.Get("title"),
		Description: v.Get("description"),
		Date:        v.Get("date"),
		Site:        v.Get("site"),
	}
}

// GalleryFields is the gallery form. images is only offered on create.
func GalleryFields(creating bool) []form.Field {
	fields := []form.Field{
		form.TextField{Base: form.Base{Name: "title", Label: "Title", Required: true}, MaxLength: 255},
		form.TextField{Base: form.Base{Name: "date", Label: "Date", Required: true}, Kind: form.KindDate},
		form.TextField{Base: form.Base{Name: "site", Label: "Site"}, MaxLength: 255},
	}
	if creating {
		fields = append(fields, ImagesField(false))
	}
	return fields
}

// ImagesField accepts any number of images.
func ImagesField(required bool) form.FileField {
	return form.FileField{
		Base:     form.Base{Name: "images", Label: "Images", Required: required},
		Accept:   ImageTypes,
		MaxBytes: MaxImageBytes,
		Multiple: true,
	}
}

func GalleryColumns() []table.Column[*resource.Gallery] {
	return []table.Column[*resource.Gallery]{
		{Label: "ID", Render: func(g *resource.Gallery) string { return g.ID }},
		{Label: "Title", Value: func(g *resource.Gallery) string { return g.Title }},
		{Label: "Date", Value: func(g *resource.Gallery) string { return g.Date }},
		{Label: "Site", Value: func(g *resource.Gallery) string { return g.Site }},
		{Label: "Photos", Render: func(g *resource.Gallery) string { return strconv.Itoa(len(g.Photos)) }},
	}
}

func GalleryValues(g *resource.Gallery) form.Values {
	return form.NewValues().Set("title", g.Title).Set("date", g.Date).Set("site", g.Site)
}

func ToGalleryFields(v form.Values) resource.GalleryFields {
	return resource.GalleryFields{Title: v.Get("title"), Date: v.Get("date"), Site: v.Get("site")}
}

// PhotoFields is the photo edit form.
func PhotoFields() []form.Field {
	return []form.Field{
		form.TextField{Base: form.Base{Name: "title", Label: "Title"}, MaxLength: 255},
		form.TextField{Base: form.Base{Name: "gallery_id", Label: "Gallery"}},
	}
}

// PhotoColumns renders locations through resolve so they can be opened directly.
func PhotoColumns(resolve func(string) string) []table.Column[*resource.Photo] {
	return []table.Column[*resource.Photo]{
		{Label: "ID", Render: func(p *resource.Photo) string { return p.ID }},
		{Label: "Title", Value: func(p *resource.Photo) string { return p.Title }},
		{Label: "Gallery", Value: func(p *resource.Photo) string { return p.GalleryID }},
		{Label: "URL", Render: func(p *resource.Photo) string { return resolve(p.Location) }},
	}
}

func ToPhotoFields(v form.Values) resource.PhotoFields {
	return resource.PhotoFields{Title: v.Get("title"), GalleryID: v.Get("gallery_id")}
}

// ToFiles converts attached form files, sniffing types the caller left empty.
func ToFiles(files []form.File) []resource.File {
	out := make([]resource.File, len(files))
	for i, f := range files {
		ct := f.ContentType
		if ct == "" {
			ct = form.DetectContentType(f.Data)
		}
		out[i] = resource.File{Name: f.Name, ContentType: ct, Data: f.Data}
	}
	return out
}
