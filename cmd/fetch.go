package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	listingadapter "github.com/bnema/dcms-cli/internal/adapters/render/listing"
	"github.com/bnema/dcms-cli/internal/application"
	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newFetchCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Refresh data for the active session and show the home dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, err := loadWithSpinner(cmd, app, application.TabHome)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, domain.Bundle{
					User:            app.coordinator.Session(),
					Correspondences: snapshot.Correspondences,
					Meetings:        snapshot.Meetings,
					Stats:           &snapshot.Stats,
				})
			}

			return writeView(cmd, app, listingadapter.View{
				Kind:     listingadapter.KindHome,
				Session:  app.coordinator.Session(),
				Snapshot: snapshot,
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// loadWithSpinner runs loadForTab behind the fetch spinner.
func loadWithSpinner(cmd *cobra.Command, app *app, tab application.Tab) (application.Snapshot, error) {
	return runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), tab, func(ctx context.Context) (application.Snapshot, error) {
		return app.loadForTab(ctx, tab)
	})
}

func writeView(cmd *cobra.Command, app *app, view listingadapter.View) error {
	rendered, err := app.render(view)
	if err != nil {
		return fmt.Errorf("render %s: %w", view.Kind, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(cmd *cobra.Command, payload any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
