package app

import (
	"context"

	"github.com/Black-And-White-Club/football-league/app/shared/attr"
)

// Close releases everything NewApp opened, in reverse order. It is safe to
// call on a partially built App.
func (app *App) Close(ctx context.Context) {
	if app.Modules.Match != nil {
		if err := app.Modules.Match.Close(ctx); err != nil {
			app.logger.ErrorContext(ctx, "Error stopping match module", attr.Error(err))
		}
	}

	if app.Router != nil {
		if err := app.Router.Close(); err != nil {
			app.logger.ErrorContext(ctx, "Error closing message router", attr.Error(err))
		}
	}

	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			app.logger.ErrorContext(ctx, "Error closing event bus", attr.Error(err))
		}
	}

	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.logger.ErrorContext(ctx, "Error closing database", attr.Error(err))
		}
	}

	app.logger.InfoContext(ctx, "Application shut down")
}
