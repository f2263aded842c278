// Package eventbus provides the watermill publisher and subscriber used by the
// match router: NATS when a URL is configured, an in-process channel otherwise.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/config"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// MatchStream is the JetStream stream holding the match topics.
const MatchStream = "MATCH"

var matchSubjects = []string{"match.>"}

// EventBus is a watermill publisher and subscriber pair.
type EventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	natsConn   *nc.Conn
	js         jetstream.JetStream
	logger     *slog.Logger
}

// NewEventBus connects to NATS when cfg.URL is set. With JetStream enabled the
// match stream is created or extended before the bus is returned.
func NewEventBus(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*EventBus, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	if cfg.URL == "" {
		logger.Info("No NATS URL configured, using in-process event bus")
		ch := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, wmLogger)
		return &EventBus{publisher: ch, subscriber: ch, logger: logger}, nil
	}

	natsOptions := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(10 * time.Second),
		nc.ReconnectWait(time.Second),
		nc.MaxReconnects(-1),
	}

	natsConn, err := nc.Connect(cfg.URL, natsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	bus := &EventBus{natsConn: natsConn, logger: logger}

	if cfg.JetStream {
		js, err := jetstream.New(natsConn)
		if err != nil {
			natsConn.Close()
			return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
		}
		bus.js = js
		if err := bus.EnsureStream(ctx, MatchStream, matchSubjects); err != nil {
			natsConn.Close()
			return nil, err
		}
	}

	// JetStream consumers are ephemeral; the queue group applies to core NATS only.
	jsConfig := nats.JetStreamConfig{
		Disabled:         !cfg.JetStream,
		SubscribeOptions: []nc.SubOpt{nc.DeliverNew(), nc.AckExplicit()},
	}
	queueGroupPrefix := ""
	if !cfg.JetStream {
		queueGroupPrefix = "football-league"
	}
	marshaler := &nats.NATSMarshaler{}

	bus.publisher, err = nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			Marshaler:   marshaler,
			NatsOptions: natsOptions,
			JetStream:   jsConfig,
		},
		wmLogger,
	)
	if err != nil {
		natsConn.Close()
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	bus.subscriber, err = nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:              cfg.URL,
			Unmarshaler:      marshaler,
			NatsOptions:      natsOptions,
			QueueGroupPrefix: queueGroupPrefix,
			SubscribersCount: 1,
			AckWaitTimeout:   30 * time.Second,
			JetStream:        jsConfig,
		},
		wmLogger,
	)
	if err != nil {
		_ = bus.publisher.Close()
		natsConn.Close()
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	logger.Info("Connected to NATS", attr.String("url", cfg.URL), attr.Bool("jetstream", cfg.JetStream))
	return bus, nil
}

// Publish implements message.Publisher.
func (eb *EventBus) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		if msg.UUID == "" {
			msg.UUID = watermill.NewUUID()
		}
	}
	if err := eb.publisher.Publish(topic, messages...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe implements message.Subscriber.
func (eb *EventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	eb.logger.Info("Subscribing to topic", attr.String("topic", topic))
	return eb.subscriber.Subscribe(ctx, topic)
}

// Healthy reports whether the NATS connection is up. The in-process bus is
// always healthy.
func (eb *EventBus) Healthy() error {
	if eb.natsConn == nil {
		return nil
	}
	if !eb.natsConn.IsConnected() {
		return fmt.Errorf("nats connection is %s", eb.natsConn.Status())
	}
	return nil
}

// Close closes the publisher, the subscriber and the NATS connection.
func (eb *EventBus) Close() error {
	if err := eb.publisher.Close(); err != nil {
		eb.logger.Error("Error closing publisher", attr.Error(err))
	}
	if any(eb.subscriber) != any(eb.publisher) {
		if err := eb.subscriber.Close(); err != nil {
			eb.logger.Error("Error closing subscriber", attr.Error(err))
		}
	}
	if eb.natsConn != nil {
		eb.natsConn.Close()
	}
	return nil
}
