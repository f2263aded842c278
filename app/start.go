package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/football-league/app/shared/attr"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Run starts the kickoff workers, the message router and the HTTP listeners,
// then blocks until ctx is cancelled or one of them fails. Listeners are shut
// down gracefully before Run returns; call Close afterwards.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := app.Modules.Match.Start(ctx); err != nil {
		return fmt.Errorf("failed to start match module: %w", err)
	}

	servers := app.servers()
	errs := make(chan error, len(servers)+1)

	go func() {
		if err := app.Router.Run(ctx); err != nil {
			errs <- fmt.Errorf("message router stopped: %w", err)
		}
	}()

	for _, srv := range servers {
		go func(srv *http.Server) {
			app.logger.InfoContext(ctx, "HTTP server listening", attr.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- fmt.Errorf("http server %s: %w", srv.Addr, err)
			}
		}(srv)
	}

	var runErr error
	select {
	case <-ctx.Done():
		app.logger.Info("Shutdown requested")
	case runErr = <-errs:
		app.logger.Error("Component failed, shutting down", attr.Error(runErr))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error("HTTP server shutdown failed", attr.String("addr", srv.Addr), attr.Error(err))
		}
	}
	return runErr
}

func (app *App) servers() []*http.Server {
	servers := []*http.Server{{
		Addr:              app.Config.HTTP.Addr,
		Handler:           app.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}}

	if addr := app.Config.Observability.MetricsAddress; addr != "" {
		servers = append(servers, &http.Server{
			Addr:              addr,
			Handler:           app.metricsHandler(),
			ReadHeaderTimeout: readHeaderTimeout,
		})
	}
	return servers
}
