package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/bnema/dcms-cli/internal/adapters/gateway"
	chainstore "github.com/bnema/dcms-cli/internal/adapters/kv/chain"
	filestore "github.com/bnema/dcms-cli/internal/adapters/kv/file"
	listingadapter "github.com/bnema/dcms-cli/internal/adapters/render/listing"
	sessionstore "github.com/bnema/dcms-cli/internal/adapters/session"
	"github.com/bnema/dcms-cli/internal/application"
	"github.com/bnema/dcms-cli/internal/config"
	"github.com/bnema/dcms-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	logger      *log.Logger
	logCloser   io.Closer
	gateway     *gateway.HTTPGateway
	sessions    *application.SessionService
	refresh     *application.RefreshController
	coordinator *application.Coordinator
	render      func(listingadapter.View) (string, error)
}

func wireApp(v *viper.Viper) (*app, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := cfg.OpenLogger()
	if err != nil {
		return nil, err
	}

	gw := &gateway.HTTPGateway{
		API:            gateway.DefaultAPI(cfg.BaseURL),
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger,
	}

	slots, err := stateSlots(cfg)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	store := sessionstore.NewStore(slots, sessionstore.DefaultKey, logger)
	sessions := application.NewSessionService(gw, store, logger)
	refresh := application.NewRefreshController(gw, ports.SystemClock{}, logger)

	return &app{
		logger:      logger,
		logCloser:   closer,
		gateway:     gw,
		sessions:    sessions,
		refresh:     refresh,
		coordinator: application.NewCoordinator(sessions, refresh, ports.NoInstallAffordance{}),
		render:      listingadapter.Render,
	}, nil
}

func stateSlots(cfg config.Config) (ports.KeyValueStore, error) {
	if cfg.StateBackend == config.StateBackendPass {
		slots, err := chainstore.NewPassFirstWithFileFallback(cfg.StateDir)
		if err != nil {
			return nil, fmt.Errorf("wire state store chain: %w", err)
		}
		return slots, nil
	}

	return filestore.NewStore(cfg.StateDir), nil
}

// loadForTab restores the session, routes to tab and runs the first fetch. It fails with the
// restricted error when tab needs a session that is not there.
func (a *app) loadForTab(ctx context.Context, tab application.Tab) (application.Snapshot, error) {
	ticket := a.coordinator.Start(ctx)
	if err := a.coordinator.RequireSession(tab); err != nil {
		return application.Snapshot{}, fmt.Errorf("%w: run 'dcms login' first", err)
	}

	snapshot, _ := a.refresh.Run(ctx, ticket)
	if snapshot.Err != nil {
		return snapshot, snapshot.Err
	}

	return snapshot, nil
}

func (a *app) close() error {
	if a == nil || a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}
