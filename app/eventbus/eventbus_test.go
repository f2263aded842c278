package eventbus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Black-And-White-Club/football-league/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInProcessBusRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bus, err := NewEventBus(ctx, config.NATSConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer bus.Close()

	assert.NoError(t, bus.Healthy())

	messages, err := bus.Subscribe(ctx, "match.event.applied.v1")
	require.NoError(t, err)

	msg := message.NewMessage("", []byte(`{"event_id":1}`))
	require.NoError(t, bus.Publish("match.event.applied.v1", msg))
	assert.NotEmpty(t, msg.UUID)

	select {
	case got := <-messages:
		got.Ack()
		assert.Equal(t, msg.UUID, got.UUID)
		assert.JSONEq(t, `{"event_id":1}`, string(got.Payload))
	case <-ctx.Done():
		t.Fatal("message not delivered")
	}
}

func TestEnsureStreamRequiresJetStream(t *testing.T) {
	bus, err := NewEventBus(context.Background(), config.NATSConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer bus.Close()

	assert.Error(t, bus.EnsureStream(context.Background(), MatchStream, matchSubjects))
}
