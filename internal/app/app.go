package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tilerace/tilerace-server/internal/config"
	"github.com/tilerace/tilerace-server/internal/game"
	transporthttp "github.com/tilerace/tilerace-server/internal/transport/http"
)

// App wires together the session coordinator and the transport layer.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	coord           *game.Coordinator
	log             *zerolog.Logger
}

// New constructs the application with provided configuration. The room
// store is built here and handed to the coordinator; nothing else ever
// touches it.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	store := game.NewMemoryStore()
	coord := game.New(store, logger)
	server := transporthttp.NewServer(coord, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		coord:           coord,
		log:             logger,
	}
}

// Run starts the coordinator and the HTTP server, and blocks until
// context cancellation or a fatal server error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.coord.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
