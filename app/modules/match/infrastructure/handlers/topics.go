package matchhandlers

import matchservice "github.com/Black-And-White-Club/football-league/app/modules/match/application"

// Topics of the match event stream.
const (
	ApplyEventRequestedV1 = "match.event.apply.requested.v1"
	EventAppliedV1        = "match.event.applied.v1"
	EventApplyFailedV1    = "match.event.apply.failed.v1"
)

// ApplyEventRequestedPayload is the body of an ApplyEventRequestedV1 message.
type ApplyEventRequestedPayload struct {
	matchservice.ApplyEventRequest
}

// EventApplyFailedPayload reports an event that was rejected.
type EventApplyFailedPayload struct {
	Request matchservice.ApplyEventRequest `json:"request"`
	Reason  string                         `json:"reason"`
}
