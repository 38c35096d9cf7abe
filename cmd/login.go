package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(username) == "" {
				return errors.New("username is required")
			}

			app.coordinator.Start(cmd.Context())
			app.coordinator.SetLoginField(username, password)
			if _, err := app.coordinator.Login(cmd.Context()); err != nil {
				return fmt.Errorf("login: %s", app.coordinator.State().Login.Error)
			}

			session := app.coordinator.Session()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s (%s)\n", session.Name, session.Role)
			return err
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.coordinator.Start(cmd.Context())
			if _, err := app.coordinator.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.sessions.Restore(cmd.Context())
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(session)
			}

			if session == nil {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s), id %s\n", session.Name, session.Role, session.ID)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the session as JSON")

	return cmd
}
