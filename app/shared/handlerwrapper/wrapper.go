// Package handlerwrapper adapts typed payload handlers to watermill handler funcs.
package handlerwrapper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// MetadataTopic is the metadata key the router reads to pick the publish topic.
const MetadataTopic = "topic"

// Result is one outgoing message produced by a handler.
type Result struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// WrapTyped decodes the JSON payload into T, runs handler and turns its
// results into messages carrying their topic and the inbound correlation id.
// Payloads that cannot be decoded are logged and acked.
func WrapTyped[T any](
	handlerName string,
	logger *slog.Logger,
	tracer trace.Tracer,
	handler func(ctx context.Context, payload *T) ([]Result, error),
) message.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(handlerName)
	}

	return func(msg *message.Message) ([]*message.Message, error) {
		correlationID := middleware.MessageCorrelationID(msg)
		if correlationID == "" {
			correlationID = watermill.NewUUID()
		}
		ctx := attr.WithCorrelationID(msg.Context(), correlationID)

		ctx, span := tracer.Start(ctx, handlerName, trace.WithAttributes(
			attribute.String("message.uuid", msg.UUID),
			attribute.String("correlation_id", correlationID),
		))
		defer span.End()

		payload := new(T)
		if err := json.Unmarshal(msg.Payload, payload); err != nil {
			logger.ErrorContext(ctx, "Dropping message with undecodable payload",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.String("message_id", msg.UUID),
				attr.Error(err),
			)
			span.RecordError(err)
			return nil, nil
		}

		results, err := handler(ctx, payload)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}

		out := make([]*message.Message, 0, len(results))
		for _, r := range results {
			m, err := NewMessage(ctx, r)
			if err != nil {
				span.RecordError(err)
				return nil, err
			}
			out = append(out, m)
		}
		return out, nil
	}
}

// NewMessage marshals a result into a watermill message.
func NewMessage(ctx context.Context, r Result) (*message.Message, error) {
	body, err := json.Marshal(r.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for %s: %w", r.Topic, err)
	}

	m := message.NewMessage(watermill.NewUUID(), body)
	for k, v := range r.Metadata {
		m.Metadata.Set(k, v)
	}
	m.Metadata.Set(MetadataTopic, r.Topic)
	if id := attr.CorrelationIDFromContext(ctx); id != "" {
		middleware.SetCorrelationID(id, m)
	}
	m.SetContext(ctx)
	return m, nil
}
