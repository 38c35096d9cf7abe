package cmd

import (
	"errors"

	"github.com/bnema/dcms-cli/internal/config"
	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return execute(newRootCmd())
}

// reportedError is a failure already shown to the user. Its text is the user-facing message.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return domain.UserMessage(e.err)
}

func (e *reportedError) Unwrap() error {
	return e.err
}

func execute(root *cobra.Command) error {
	err := root.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		root.PrintErrln(root.ErrPrefix(), err.Error())
	}
	return err
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "dcms",
		Short:         "DCMS viewer: correspondence, meetings and stats from the terminal",
		Long:          "dcms signs in to a DCMS backend, keeps the session on disk, and shows the correspondence, meeting agenda and dashboard stats for the signed-in engineer.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlag(config.KeyBaseURL, cmd.Root().PersistentFlags().Lookup("base-url")); err != nil {
				return err
			}

			wired, err := wireApp(v)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.close()
		},
	}

	rootCmd.PersistentFlags().String("base-url", "", "DCMS backend base URL (overrides config and DCMS_BASE_URL)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newFetchCmd(app),
		newSearchCmd(app),
		newShowCmd(app),
		newAgendaCmd(app),
		newAttachmentCmd(app),
		newTUICmd(app),
		newFixtureServerCmd(app),
	)

	return rootCmd
}
