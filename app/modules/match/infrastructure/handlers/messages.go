package matchhandlers

import (
	"context"
	"errors"
	"log/slog"

	matchservice "github.com/Black-And-White-Club/football-league/app/modules/match/application"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/app/shared/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// EventHandlers consumes match event requests from the message bus.
type EventHandlers struct {
	service matchservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewEventHandlers creates a new EventHandlers instance.
func NewEventHandlers(service matchservice.Service, logger *slog.Logger, tracer trace.Tracer) *EventHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandlers{service: service, logger: logger, tracer: tracer}
}

// HandleApplyEventRequested applies one event. Rejected events are acked and
// reported on EventApplyFailedV1; infrastructure errors are returned so the
// router retries the message.
func (h *EventHandlers) HandleApplyEventRequested() message.HandlerFunc {
	return handlerwrapper.WrapTyped(
		"HandleApplyEventRequested",
		h.logger,
		h.tracer,
		func(ctx context.Context, payload *ApplyEventRequestedPayload) ([]handlerwrapper.Result, error) {
			applied, err := h.service.ApplyEvent(ctx, payload.ApplyEventRequest)
			if err != nil {
				if !isRejection(err) {
					return nil, err
				}
				h.logger.WarnContext(ctx, "Match event rejected",
					attr.ExtractCorrelationID(ctx),
					attr.MatchID(payload.MatchID),
					attr.String("type", payload.Type),
					attr.Error(err),
				)
				return []handlerwrapper.Result{{
					Topic:   EventApplyFailedV1,
					Payload: EventApplyFailedPayload{Request: payload.ApplyEventRequest, Reason: err.Error()},
				}}, nil
			}
			return []handlerwrapper.Result{{Topic: EventAppliedV1, Payload: applied}}, nil
		},
	)
}

func isRejection(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrConstraintViolation)
}
