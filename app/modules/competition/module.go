package competition

import (
	"context"
	"log/slog"

	competitionservice "github.com/Black-And-White-Club/football-league/app/modules/competition/application"
	competitionhandlers "github.com/Black-And-White-Club/football-league/app/modules/competition/infrastructure/handlers"
	competitiondb "github.com/Black-And-White-Club/football-league/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the competition module.
type Module struct {
	Service  competitionservice.Service
	handlers *competitionhandlers.CompetitionHandlers
	logger   *slog.Logger
}

// NewModule creates the competition module and mounts its routes on api when given.
func NewModule(ctx context.Context, obs observability.Observability, db *bun.DB, api chi.Router) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing competition module")

	repo := competitiondb.NewRepository(db)
	service := competitionservice.NewCompetitionService(repo, logger, obs.Metrics, obs.Tracer, db)
	handlers := competitionhandlers.NewCompetitionHandlers(service, logger)

	if api != nil {
		handlers.Routes(api)
	}

	logger.InfoContext(ctx, "Competition module initialized successfully")

	return &Module{
		Service:  service,
		handlers: handlers,
		logger:   logger,
	}, nil
}
