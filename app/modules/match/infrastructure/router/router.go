package matchrouter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	matchhandlers "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/handlers"
	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/app/shared/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// MatchRouter feeds match event requests from the bus into the event processor
// and publishes the outcome.
type MatchRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     message.Subscriber
	publisher      message.Publisher
	metricsBuilder *metrics.PrometheusMetricsBuilder
}

func NewMatchRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
	prometheusRegistry *prometheus.Registry,
) *MatchRouter {
	if logger == nil {
		logger = slog.Default()
	}
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}
	return &MatchRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		publisher:      publisher,
		metricsBuilder: metricsBuilder,
	}
}

// Configure adds middleware and registers the match handlers.
func (r *MatchRouter) Configure(ctx context.Context, handlers *matchhandlers.EventHandlers) error {
	if r.metricsBuilder != nil {
		r.logger.Info("Adding Prometheus router metrics middleware")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	if err := r.RegisterHandlers(ctx, handlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

// RegisterHandlers subscribes each handler to its topic. Outgoing messages
// are published to the topic named in their metadata. A failed publish is
// logged and the request still acked: the event is already committed and a
// retry would apply it again.
func (r *MatchRouter) RegisterHandlers(ctx context.Context, handlers *matchhandlers.EventHandlers) error {
	eventsToHandlers := map[string]message.HandlerFunc{
		matchhandlers.ApplyEventRequestedV1: handlers.HandleApplyEventRequested(),
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := "match." + topic
		r.Router.AddNoPublisherHandler(
			handlerName,
			topic,
			r.subscriber,
			r.publishing(ctx, handlerName, handlerFunc),
		)
	}
	return nil
}

func (r *MatchRouter) publishing(ctx context.Context, handlerName string, handlerFunc message.HandlerFunc) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		messages, err := handlerFunc(msg)
		if err != nil {
			r.logger.ErrorContext(ctx, "Error processing message",
				attr.String("handler", handlerName),
				attr.String("message_id", msg.UUID),
				attr.Error(err),
			)
			return err
		}
		for _, m := range messages {
			topic := m.Metadata.Get(handlerwrapper.MetadataTopic)
			if topic == "" {
				r.logger.ErrorContext(ctx, "Dropping message without publish topic",
					attr.String("handler", handlerName),
					attr.String("message_id", m.UUID),
				)
				continue
			}
			if err := r.publisher.Publish(topic, m); err != nil {
				r.logger.ErrorContext(ctx, "Failed to publish outcome; request acked without it",
					attr.String("handler", handlerName),
					attr.String("message_id", msg.UUID),
					attr.String("topic", topic),
					attr.Error(err),
				)
			}
		}
		return nil
	}
}

func (r *MatchRouter) Close() error {
	return r.Router.Close()
}
