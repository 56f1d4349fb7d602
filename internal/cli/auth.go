package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" {
				return errors.New("--email is required")
			}
			if password == "" {
				p, err := a.readPassword(cmd, "Password: ")
				if err != nil {
					return err
				}
				password = p
			}
			res := a.sessions.Login(cmd.Context(), email, password)
			if !res.Success {
				return fmt.Errorf("login failed: %s", res.Error)
			}
			s := a.sessions.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", s.Email, s.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func (a *app) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.sessions.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *app) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			s := a.sessions.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\nrole: %s\nadmin: %t\n", s.DisplayName, s.Email, s.Role, a.gate.IsAdmin())
			return nil
		},
	}
}
