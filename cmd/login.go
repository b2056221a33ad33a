package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/pharmacy-intel-cli/internal/application"
	"github.com/bnema/pharmacy-intel-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign into the registry service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Login(cmd.Context(), application.LoginCommand{
				Email:    email,
				Password: password,
			})
			if err != nil {
				var authErr *domain.AuthError
				if errors.As(err, &authErr) {
					return fmt.Errorf("login rejected: %s", authErr.Error())
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.Identity.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.sessions.Logout(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Bootstrap(cmd.Context()); err != nil {
				return fmt.Errorf("bootstrap session: %w", err)
			}

			session := app.sessions.Current()
			if !session.Authenticated() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}

			identity := session.Identity
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", identity.Email, identity.Name)
			return nil
		},
	}
}
