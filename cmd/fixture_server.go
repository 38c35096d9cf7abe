package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/dcms-cli/internal/adapters/fixture"
	"github.com/spf13/cobra"
)

func newFixtureServerCmd(app *app) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "fixture-server",
		Short: "Serve a local DCMS backend with sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := log.New(cmd.ErrOrStderr(), "fixture ", log.LstdFlags)
			server := &http.Server{
				Addr:              listenAddr,
				Handler:           fixture.NewRouter(fixture.DefaultDataset(), logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.ListenAndServe()
			}()

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving DCMS fixtures on http://%s (accounts: eng1/eng1, manager/manager)\n", listenAddr)
			app.logger.Printf("[fixture] listening on %s", listenAddr)

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("fixture server: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "127.0.0.1:5000", "Listen address")

	return cmd
}
