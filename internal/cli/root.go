// Package cli is the adminctl command tree.
package cli

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/galeria/admin-api/internal/client/apiclient"
	"github.com/galeria/admin-api/internal/client/credential"
	"github.com/galeria/admin-api/internal/client/resource"
	"github.com/galeria/admin-api/internal/client/session"
	"github.com/galeria/admin-api/internal/pkg/config"
	"github.com/galeria/admin-api/pkg/logger"
)

var (
	errNotLoggedIn = errors.New("not logged in, run `adminctl login` first")
	errNotAdmin    = errors.New("this action needs the admin role")
)

// app is the state shared by every command of one invocation.
type app struct {
	cfg config.Config
	log zerolog.Logger

	client     *apiclient.Client
	sessions   *session.Service
	gate       *session.Gate
	users      *resource.Users
	activities *resource.Activities
	galleries  *resource.Galleries
	photos     *resource.Photos

	readPassword func(cmd *cobra.Command, prompt string) (string, error)
}

// NewRootCmd returns the adminctl root command. cfg supplies flag defaults.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	return newRootCmd(cfg, promptPassword)
}

func newRootCmd(cfg *config.Config, readPassword func(*cobra.Command, string) (string, error)) *cobra.Command {
	a := &app{cfg: *cfg, readPassword: readPassword}

	root := &cobra.Command{
		Use:               "adminctl",
		Short:             "Back-office client for the Galeria admin API",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Server, "server", cfg.Server, "API server base URL")
	flags.StringVar(&a.cfg.TokenDir, "token-dir", cfg.TokenDir, "directory the access token is stored in")
	flags.IntVar(&a.cfg.PageSize, "page-size", cfg.PageSize, "rows per page in list output")

	root.AddCommand(
		a.newLoginCmd(),
		a.newLogoutCmd(),
		a.newWhoamiCmd(),
		a.newUsersCmd(),
		a.newActivitiesCmd(),
		a.newGalleriesCmd(),
		a.newPhotosCmd(),
	)
	return root
}

// setup builds the client stack and hydrates the session from a stored token.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log = logger.Component("adminctl")

	client, err := apiclient.New(a.cfg.Server, credential.NewFileStore(a.cfg.TokenDir),
		apiclient.WithLogger(logger.Component("apiclient")))
	if err != nil {
		return err
	}
	a.client = client
	a.sessions = session.NewService(client, logger.Component("session"))
	a.gate = session.NewGate(a.sessions)
	a.users = resource.NewUsers(client)
	a.activities = resource.NewActivities(client)
	a.photos = resource.NewPhotos(client)
	a.galleries = resource.NewGalleries(client, a.photos)

	if err := a.sessions.Init(cmd.Context()); err != nil {
		a.log.Warn().Err(err).Msg("could not restore session")
	}
	return nil
}

func (a *app) requireSession() error {
	if !a.gate.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}

func (a *app) requireAdmin() error {
	if err := a.requireSession(); err != nil {
		return err
	}
	if !a.gate.IsAdmin() {
		return errNotAdmin
	}
	return nil
}
