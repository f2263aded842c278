package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/football-league/app/eventbus"
	"github.com/Black-And-White-Club/football-league/app/modules/competition"
	"github.com/Black-And-White-Club/football-league/app/modules/match"
	"github.com/Black-And-White-Club/football-league/app/modules/standings"
	"github.com/Black-And-White-Club/football-league/app/modules/team"
	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"github.com/Black-And-White-Club/football-league/config"
	"github.com/Black-And-White-Club/football-league/db/bundb"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

const routerCloseTimeout = 10 * time.Second

// Modules holds the league modules.
type Modules struct {
	Team        *team.Module
	Competition *competition.Module
	Match       *match.Module
	Standings   *standings.Module
}

// App owns every long lived resource of the server process.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB
	EventBus      *eventbus.EventBus
	Router        *message.Router
	Modules       Modules

	handler http.Handler
	logger  *slog.Logger
}

// NewApp opens the database and the event bus, then builds the modules on top
// of them. Resources opened before a failure are released.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.New(config.ToObsConfig(cfg))
	logger := obs.Logger

	app := &App{
		Config:        cfg,
		Observability: obs,
		logger:        logger,
	}

	db, err := bundb.Open(ctx, cfg.Postgres.DSN, logger, bundb.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.DB = db

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS, logger)
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}
	app.EventBus = bus

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: routerCloseTimeout}, watermill.NewSlogLogger(logger))
	if err != nil {
		app.Close(ctx)
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}
	app.Router = router

	mux, api := app.newHTTPRouter()
	if err := app.initializeModules(ctx, api); err != nil {
		app.Close(ctx)
		return nil, err
	}
	app.handler = mux

	logger.InfoContext(ctx, "Application initialized",
		attr.String("http_addr", cfg.HTTP.Addr),
		attr.Bool("nats", cfg.NATS.URL != ""),
		attr.Bool("auto_kickoff", cfg.Queue.AutoKickoffEnabled),
	)
	return app, nil
}

func (app *App) initializeModules(ctx context.Context, api chi.Router) error {
	obs := app.Observability

	teamModule, err := team.NewModule(ctx, obs, app.DB, api)
	if err != nil {
		return fmt.Errorf("failed to initialize team module: %w", err)
	}
	app.Modules.Team = teamModule

	competitionModule, err := competition.NewModule(ctx, obs, app.DB, api)
	if err != nil {
		return fmt.Errorf("failed to initialize competition module: %w", err)
	}
	app.Modules.Competition = competitionModule

	matchModule, err := match.NewModule(ctx, app.Config, obs, app.DB, api, app.EventBus, app.Router)
	if err != nil {
		return fmt.Errorf("failed to initialize match module: %w", err)
	}
	app.Modules.Match = matchModule

	standingsModule, err := standings.NewModule(ctx, obs, app.DB, api)
	if err != nil {
		return fmt.Errorf("failed to initialize standings module: %w", err)
	}
	app.Modules.Standings = standingsModule

	return nil
}

// Handler returns the HTTP handler serving the API, health and metrics routes.
func (app *App) Handler() http.Handler {
	return app.handler
}
