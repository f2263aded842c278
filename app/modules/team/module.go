package team

import (
	"context"
	"log/slog"

	teamservice "github.com/Black-And-White-Club/football-league/app/modules/team/application"
	teamhandlers "github.com/Black-And-White-Club/football-league/app/modules/team/infrastructure/handlers"
	teamdb "github.com/Black-And-White-Club/football-league/app/modules/team/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the team module.
type Module struct {
	Service  teamservice.Service
	handlers *teamhandlers.TeamHandlers
	logger   *slog.Logger
}

// NewModule creates the team module and mounts its routes on api when given.
func NewModule(ctx context.Context, obs observability.Observability, db *bun.DB, api chi.Router) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing team module")

	repo := teamdb.NewRepository(db)
	service := teamservice.NewTeamService(repo, logger, obs.Metrics, obs.Tracer, db)
	handlers := teamhandlers.NewTeamHandlers(service, logger)

	if api != nil {
		handlers.Routes(api)
	}

	logger.InfoContext(ctx, "Team module initialized successfully")

	return &Module{
		Service:  service,
		handlers: handlers,
		logger:   logger,
	}, nil
}
