package cmd

import (
	tuiadapter "github.com/bnema/dcms-cli/internal/adapters/render/tui"
	"github.com/spf13/cobra"
)

func newTUICmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive tabbed view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ticket := app.coordinator.Start(cmd.Context())
			return tuiadapter.Run(cmd.Context(), app.coordinator, ticket, app.gateway.ResolveAttachmentURL)
		},
	}
}
