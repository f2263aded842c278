package standings

import (
	"context"
	"log/slog"

	standingsservice "github.com/Black-And-White-Club/football-league/app/modules/standings/application"
	standingshandlers "github.com/Black-And-White-Club/football-league/app/modules/standings/infrastructure/handlers"
	standingsdb "github.com/Black-And-White-Club/football-league/app/modules/standings/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the standings module.
type Module struct {
	Service  standingsservice.Service
	handlers *standingshandlers.StandingsHandlers
	logger   *slog.Logger
}

// NewModule creates the standings module and mounts its routes on api when given.
func NewModule(ctx context.Context, obs observability.Observability, db *bun.DB, api chi.Router) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing standings module")

	repo := standingsdb.NewRepository(db)
	service := standingsservice.NewStandingsService(repo, logger, obs.Metrics, obs.Tracer)
	handlers := standingshandlers.NewStandingsHandlers(service, logger)

	if api != nil {
		handlers.Routes(api)
	}

	logger.InfoContext(ctx, "Standings module initialized successfully")

	return &Module{
		Service:  service,
		handlers: handlers,
		logger:   logger,
	}, nil
}
