package match

import (
	"context"
	"fmt"
	"log/slog"

	matchservice "github.com/Black-And-White-Club/football-league/app/modules/match/application"
	matchhandlers "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/handlers"
	matchqueue "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/queue"
	matchdb "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories"
	matchrouter "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/router"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"github.com/Black-And-White-Club/football-league/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the match module.
type Module struct {
	Service     matchservice.Service
	MatchRouter *matchrouter.MatchRouter
	Queue       *matchqueue.Service
	handlers    *matchhandlers.MatchHandlers
	logger      *slog.Logger
}

// Bus is the message bus the match router consumes from and publishes to.
type Bus interface {
	message.Publisher
	message.Subscriber
}

// NewModule creates the match module. Routes are mounted on api when given,
// event handlers on router when given, and the kickoff queue is created when
// automatic kickoffs are enabled.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	db *bun.DB,
	api chi.Router,
	bus Bus,
	router *message.Router,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "Initializing match module")

	repo := matchdb.NewRepository(db)
	service := matchservice.NewMatchService(repo, logger, obs.Metrics, obs.Tracer, db)
	handlers := matchhandlers.NewMatchHandlers(service, logger)

	module := &Module{
		Service:  service,
		handlers: handlers,
		logger:   logger,
	}

	if api != nil {
		handlers.Routes(api)
	}

	if router != nil && bus != nil {
		module.MatchRouter = matchrouter.NewMatchRouter(logger, router, bus, bus, obs.Registry)
		if err := module.MatchRouter.Configure(ctx, matchhandlers.NewEventHandlers(service, logger, obs.Tracer)); err != nil {
			return nil, fmt.Errorf("failed to configure match router: %w", err)
		}
	}

	if cfg != nil && cfg.Queue.AutoKickoffEnabled {
		queue, err := matchqueue.NewService(ctx, cfg.Postgres.DSN, cfg.Queue.MaxWorkers, logger, obs.Metrics, service)
		if err != nil {
			return nil, fmt.Errorf("failed to create kickoff queue: %w", err)
		}
		service.SetScheduler(queue)
		module.Queue = queue
	}

	logger.InfoContext(ctx, "Match module initialized successfully")
	return module, nil
}

// Start runs the kickoff workers when the queue is enabled.
func (m *Module) Start(ctx context.Context) error {
	if m.Queue == nil {
		return nil
	}
	return m.Queue.Start(ctx)
}

// Close stops the kickoff workers.
func (m *Module) Close(ctx context.Context) error {
	m.logger.InfoContext(ctx, "Stopping match module")
	if m.Queue != nil {
		if err := m.Queue.Stop(ctx); err != nil {
			return err
		}
	}
	return nil
}
