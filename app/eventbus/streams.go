package eventbus

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/nats-io/nats.go/jetstream"
)

// EnsureStream creates the stream or adds any missing subjects to it.
func (eb *EventBus) EnsureStream(ctx context.Context, name string, subjects []string) error {
	if eb.js == nil {
		return fmt.Errorf("jetstream is not enabled")
	}

	stream, err := eb.js.Stream(ctx, name)
	if errors.Is(err, jetstream.ErrStreamNotFound) {
		if _, err := eb.js.CreateStream(ctx, jetstream.StreamConfig{Name: name, Subjects: subjects}); err != nil {
			return fmt.Errorf("failed to create stream %s: %w", name, err)
		}
		eb.logger.Info("Stream created", attr.String("stream", name))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check stream %s: %w", name, err)
	}

	info, err := stream.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stream info: %w", err)
	}

	cfg := info.Config
	missing := false
	for _, s := range subjects {
		if !slices.Contains(cfg.Subjects, s) {
			cfg.Subjects = append(cfg.Subjects, s)
			missing = true
		}
	}
	if !missing {
		return nil
	}
	if _, err := eb.js.UpdateStream(ctx, cfg); err != nil {
		return fmt.Errorf("failed to update stream %s: %w", name, err)
	}
	eb.logger.Info("Stream updated with new subjects", attr.String("stream", name))
	return nil
}
