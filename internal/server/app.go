// Package server initializes and runs the main application server. It
// wires the record store, the user repository and the HTTP endpoint
// together and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/userbook/internal/logging"
	"github.com/dmitrijs2005/userbook/internal/server/config"
	"github.com/dmitrijs2005/userbook/internal/server/httpapi"
	"github.com/dmitrijs2005/userbook/internal/server/store"
	"github.com/dmitrijs2005/userbook/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repo   users.Repository
}

func NewApp(cfg *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	fileStore := store.NewFileStore(cfg.StoreFile, logger)
	repo := users.NewStoreRepository(fileStore)

	return &App{config: cfg, logger: logger, repo: repo}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "store_file", app.config.StoreFile)

	app.initSignalHandler(cancelFunc)

	handler := httpapi.NewHandler(app.repo, app.logger)
	srv := httpapi.NewServer(app.config.EndpointAddrHTTP, handler, app.logger, app.config.ShutdownTimeout)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})

	return g.Wait()
}
