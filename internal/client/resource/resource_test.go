package resource

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galeria/admin-api/internal/api/apitest"
	"github.com/galeria/admin-api/internal/client/apiclient"
	"github.com/galeria/admin-api/internal/client/credential"
	"github.com/galeria/admin-api/internal/client/session"
)

type fixture struct {
	client     *apiclient.Client
	sessions   *session.Service
	users      *Users
	activities *Activities
	galleries  *Galleries
	photos     *Photos
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := apitest.NewServer(t)

	client, err := apiclient.New(srv.URL, credential.NewMemoryStore())
	require.NoError(t, err)

	sessions := session.NewService(client, zerolog.Nop())
	res := sessions.Login(context.Background(), apitest.AdminEmail, apitest.AdminPassword)
	require.True(t, res.Success, res.Error)

	photos := NewPhotos(client)
	return &fixture{
		client:     client,
		sessions:   sessions,
		users:      NewUsers(client),
		activities: NewActivities(client),
		galleries:  NewGalleries(client, photos),
		photos:     photos,
	}
}

func countID[T any](items []*T, id func(*T) string, want string) int {
	n := 0
	for _, it := range items {
		if id(it) == want {
			n++
		}
	}
	return n
}

func TestActivities_CreateListDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.activities.Create(ctx, ActivityFields{Title: "Cleanup", Description: "Beach", Date: "2024-05-01", Site: "Coast"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	list, err := f.activities.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, countID(list, func(a *Activity) string { return a.ID }, created.ID))

	got, err := f.activities.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cleanup", got.Title)

	updated, err := f.activities.Update(ctx, created.ID, ActivityFields{Title: "Cleanup 2", Description: "Beach", Date: "2024-05-02"})
	require.NoError(t, err)
	assert.Equal(t, "Cleanup 2", updated.Title)

	require.NoError(t, f.activities.Delete(ctx, created.ID))
	list, err = f.activities.List(ctx)
	require.NoError(t, err)
	assert.Zero(t, countID(list, func(a *Activity) string { return a.ID }, created.ID))

	_, err = f.activities.Get(ctx, created.ID)
	require.ErrorIs(t, err, apiclient.ErrRequestRejected)
}

func TestUsers_CreateListDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.users.Create(ctx, UserFields{Name: "Ana", Email: "ana@example.com", Role: "user", Password: "secret1"})
	require.NoError(t, err)

	list, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, countID(list, func(u *User) string { return u.ID }, created.ID))

	require.NoError(t, f.users.Delete(ctx, created.ID))
	list, err = f.users.List(ctx)
	require.NoError(t, err)
	assert.Zero(t, countID(list, func(u *User) string { return u.ID }, created.ID))
}

func TestUsers_BlankPasswordLeavesPasswordUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.users.Create(ctx, UserFields{Name: "Ana", Email: "ana@example.com", Role: "user", Password: "secret1"})
	require.NoError(t, err)

	_, err = f.users.Update(ctx, created.ID, UserFields{Name: "Ana María", Password: ""})
	require.NoError(t, err)

	other, err := apiclient.New(f.client.ResolveURL("/"), credential.NewMemoryStore())
	require.NoError(t, err)
	res := session.NewService(other, zerolog.Nop()).Login(ctx, "ana@example.com", "secret1")
	assert.True(t, res.Success, res.Error)
}

func TestUserPayload(t *testing.T) {
	assert.Equal(t, map[string]string{"name": "Ana"}, userPayload(UserFields{Name: "Ana"}))
	assert.Equal(t,
		map[string]string{"password": "secret1", "password_confirmation": "secret1"},
		userPayload(UserFields{Password: "secret1"}),
	)
	assert.Equal(t,
		map[string]string{"password": "secret1", "password_confirmation": "other"},
		userPayload(UserFields{Password: "secret1", PasswordConfirmation: "other"}),
	)
}

func TestUsers_NonAdminWriteDenied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, UserFields{Name: "Bob", Email: "bob@example.com", Role: "user", Password: "secret1"})
	require.NoError(t, err)

	bob, err := apiclient.New(f.client.ResolveURL("/"), credential.NewMemoryStore())
	require.NoError(t, err)
	require.True(t, session.NewService(bob, zerolog.Nop()).Login(ctx, "bob@example.com", "secret1").Success)

	_, err = NewActivities(bob).Create(ctx, ActivityFields{Title: "x", Description: "y", Date: "2024-01-01"})
	require.ErrorIs(t, err, apiclient.ErrAuthorizationDenied)

	tok, _ := bob.Store().Get()
	assert.NotEmpty(t, tok, "403 keeps the token")
}

func TestGalleries_CreateListDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g, err := f.galleries.Create(ctx, GalleryFields{Title: "Spring", Date: "2024-03-21", Site: "Park"})
	require.NoError(t, err)

	list, err := f.galleries.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, countID(list, func(g *Gallery) string { return g.ID }, g.ID))

	require.NoError(t, f.galleries.Delete(ctx, g.ID))
	list, err = f.galleries.List(ctx)
	require.NoError(t, err)
	assert.Zero(t, countID(list, func(g *Gallery) string { return g.ID }, g.ID))
}

func TestPhotos_CreateServeDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g, err := f.galleries.Create(ctx, GalleryFields{Title: "Spring", Date: "2024-03-21"})
	require.NoError(t, err)

	p, err := f.photos.Create(ctx, PhotoFields{GalleryID: g.ID, Title: "Tree", File: &File{Name: "tree.png", ContentType: "image/png", Data: apitest.PNG}})
	require.NoError(t, err)
	assert.Equal(t, "Tree", p.Title)

	resp, err := http.Get(f.client.ResolveURL(p.Location))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, apitest.PNG, body)

	byGallery, err := f.photos.ListByGallery(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, countID(byGallery, func(p *Photo) string { return p.ID }, p.ID))

	require.NoError(t, f.photos.Delete(ctx, p.ID))
	all, err := f.photos.List(ctx)
	require.NoError(t, err)
	assert.Zero(t, countID(all, func(x *Photo) string { return x.ID }, p.ID))
}

func TestPhotos_CreateNeedsFile(t *testing.T) {
	f := newFixture(t)
	_, err := f.photos.Create(context.Background(), PhotoFields{GalleryID: "g"})
	require.Error(t, err)
}

func TestGalleries_UploadImagesPartialFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g, err := f.galleries.Create(ctx, GalleryFields{Title: "Spring", Date: "2024-03-21"})
	require.NoError(t, err)

	files := []File{
		{Name: "a.png", ContentType: "image/png", Data: apitest.PNG},
		{Name: "b.txt", ContentType: "text/plain", Data: []byte("not an image")},
	}
	photos, err := f.galleries.UploadImages(ctx, g.ID, files)
	require.Error(t, err)
	require.ErrorIs(t, err, apiclient.ErrRequestRejected)

	var upErr *UploadError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, 1, upErr.Failed)
	assert.Equal(t, 2, upErr.Total)

	require.Len(t, photos, 1)
	assert.Equal(t, "a", photos[0].Title)

	listed, err := f.photos.ListByGallery(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, photos[0].ID, listed[0].ID)
}

func TestGalleries_CreateWithImagesKeepsGalleryOnFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g, err := f.galleries.CreateWithImages(ctx,
		GalleryFields{Title: "Orphan", Date: "2024-03-21"},
		[]File{{Name: "bad.txt", Data: []byte("text")}},
	)
	require.Error(t, err)
	require.NotNil(t, g)
	assert.Empty(t, g.Photos)

	got, err := f.galleries.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Photos)
}

func TestGalleries_CreateWithImages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g, err := f.galleries.CreateWithImages(ctx,
		GalleryFields{Title: "Full", Date: "2024-03-21"},
		[]File{
			{Name: "a.png", ContentType: "image/png", Data: apitest.PNG},
			{Name: "b.png", ContentType: "image/png", Data: apitest.PNG},
		},
	)
	require.NoError(t, err)
	assert.Len(t, g.Photos, 2)

	got, err := f.galleries.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Len(t, got.Photos, 2)
}
