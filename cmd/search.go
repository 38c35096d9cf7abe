package cmd

import (
	"fmt"
	"strconv"
	"strings"

	listingadapter "github.com/bnema/dcms-cli/internal/adapters/render/listing"
	"github.com/bnema/dcms-cli/internal/application"
	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "List correspondence matching subject, reference number or engineer",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			snapshot, err := loadWithSpinner(cmd, app, application.TabHome)
			if err != nil {
				return err
			}

			items := app.coordinator.Filter(query)
			if asJSON {
				return writeJSON(cmd, items)
			}

			return writeView(cmd, app, listingadapter.View{
				Kind:     listingadapter.KindSearch,
				Session:  app.coordinator.Session(),
				Snapshot: snapshot,
				Items:    items,
				Query:    query,
				Cursor:   -1,
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one correspondence with its resolved attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, snapshot, err := loadCorrespondence(cmd, app, args[0])
			if err != nil {
				return err
			}

			app.coordinator.Select(item)
			return writeView(cmd, app, listingadapter.View{
				Kind:     listingadapter.KindDetail,
				Session:  app.coordinator.Session(),
				Snapshot: snapshot,
				Selected: app.coordinator.State().Selected,
				Resolve:  app.gateway.ResolveAttachmentURL,
			})
		},
	}
}

func newAgendaCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "List meetings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, err := loadWithSpinner(cmd, app, application.TabAgenda)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, snapshot.Meetings)
			}

			return writeView(cmd, app, listingadapter.View{
				Kind:     listingadapter.KindAgenda,
				Session:  app.coordinator.Session(),
				Snapshot: snapshot,
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAttachmentCmd(app *app) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "attachment ID",
		Short: "Print the resolved URL of a correspondence attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, _, err := loadCorrespondence(cmd, app, args[0])
			if err != nil {
				return err
			}

			rows := listingadapter.Attachments(item, app.gateway.ResolveAttachmentURL)
			if index < 1 || index > len(rows) {
				return fmt.Errorf("correspondence %d attachment %d: %w", item.ID, index, domain.ErrAttachmentUnavailable)
			}

			row := rows[index-1]
			if row.URL == "" {
				return fmt.Errorf("correspondence %d attachment %d: %w", item.ID, index, domain.ErrAttachmentUnavailable)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), row.URL)
			return err
		},
	}

	cmd.Flags().IntVar(&index, "index", 1, "Attachment position as listed by 'dcms show' (1-based)")

	return cmd
}

func loadCorrespondence(cmd *cobra.Command, app *app, rawID string) (domain.Correspondence, application.Snapshot, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return domain.Correspondence{}, application.Snapshot{}, fmt.Errorf("invalid correspondence id %q", rawID)
	}

	snapshot, err := loadWithSpinner(cmd, app, application.TabHome)
	if err != nil {
		return domain.Correspondence{}, snapshot, err
	}

	item, err := domain.FindCorrespondence(snapshot.Correspondences, id)
	if err != nil {
		return domain.Correspondence{}, snapshot, fmt.Errorf("correspondence %d: %w", id, err)
	}

	return item, snapshot, nil
}
