package matchservice

import (
	"context"
	"strconv"
	"strings"

	matchdomain "github.com/Black-And-White-Club/football-league/app/modules/match/domain"
	matchdb "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/app/shared/results"
	"github.com/uptrace/bun"
)

// ApplyEvent validates the event, then inside one transaction locks the
// match, appends the event, credits any goal to the score and bumps the
// player statistic the event type maps to. Any failure leaves nothing changed.
// Events are not deduplicated; submitting the same event twice counts twice.
func (s *MatchService) ApplyEvent(ctx context.Context, req ApplyEventRequest) (*AppliedEvent, error) {
	applied, err := unwrap[*AppliedEvent](withTelemetry(s, ctx, "ApplyEvent", strconv.FormatInt(req.MatchID, 10), func(ctx context.Context) (results.OperationResult[*AppliedEvent, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*AppliedEvent, error], error) {
			return s.applyEventLogic(ctx, db, req)
		})
	}))
	if err != nil {
		return nil, err
	}

	// Recorded only after the commit so rolled back events are not counted.
	if s.metrics != nil {
		s.metrics.RecordEventApplied(ctx, applied.Event.Type)
		if applied.CreditedSide != "" {
			s.metrics.RecordGoalCredited(ctx, applied.CreditedSide)
		}
	}
	return applied, nil
}

func (s *MatchService) applyEventLogic(ctx context.Context, db bun.IDB, req ApplyEventRequest) (results.OperationResult[*AppliedEvent, error], error) {
	eventType, err := matchdomain.ParseEventType(req.Type)
	if err != nil {
		return results.FailureResult[*AppliedEvent, error](err), nil
	}
	if err := matchdomain.ValidateMinute(req.Minute); err != nil {
		return results.FailureResult[*AppliedEvent, error](err), nil
	}
	if req.MatchID <= 0 {
		return results.FailureResult[*AppliedEvent, error](apperrors.Validation("match_id is required")), nil
	}
	if req.Notes != nil && strings.ContainsRune(*req.Notes, 0) {
		return results.FailureResult[*AppliedEvent, error](apperrors.Validation("notes must not contain NUL characters")), nil
	}

	match, err := s.repo.GetMatchForUpdate(ctx, db, req.MatchID)
	if err != nil {
		return classify[*AppliedEvent](err, "failed to load match")
	}

	event := &matchdb.MatchEvent{
		MatchID:  match.ID,
		Minute:   req.Minute,
		Type:     string(eventType),
		PlayerID: req.PlayerID,
		TeamID:   req.TeamID,
		Notes:    trimmedNotes(req.Notes),
	}
	if err := s.repo.InsertEvent(ctx, db, event); err != nil {
		return classify[*AppliedEvent](err, "failed to record match event")
	}

	side := matchdomain.SideOf(req.TeamID, match.HomeTeamID, match.AwayTeamID)
	home, away := matchdomain.ScoreIncrements(eventType, side)
	if home != 0 || away != 0 {
		if err := s.repo.IncrementScore(ctx, db, match.ID, home, away); err != nil {
			return classify[*AppliedEvent](err, "failed to update score")
		}
		match.HomeScore += home
		match.AwayScore += away
	}

	if req.PlayerID != nil {
		if counter := matchdomain.PlayerCounter(eventType); counter != matchdomain.CounterNone {
			if err := s.repo.IncrementPlayerCounter(ctx, db, *req.PlayerID, counter); err != nil {
				return classify[*AppliedEvent](err, "failed to update player statistics")
			}
		}
	}

	logAttrs := []any{
		attr.ExtractCorrelationID(ctx),
		attr.MatchID(match.ID),
		attr.Int64("event_id", event.ID),
		attr.String("type", event.Type),
		attr.Int("minute", event.Minute),
		attr.String("team_side", side.String()),
	}
	isGoal := eventType == matchdomain.EventGoal || eventType == matchdomain.EventOwnGoal
	if isGoal && req.TeamID != nil && side == matchdomain.SideNone {
		s.logger.WarnContext(ctx, "Goal credited to a team outside the match, score unchanged",
			append(logAttrs, attr.TeamID(*req.TeamID))...,
		)
	} else {
		s.logger.InfoContext(ctx, "Match event applied", logAttrs...)
	}

	applied := &AppliedEvent{
		EventID:   event.ID,
		MatchID:   match.ID,
		HomeScore: match.HomeScore,
		AwayScore: match.AwayScore,
		Event:     *event,
	}
	if isGoal {
		applied.CreditedSide = creditedSide(home, away).String()
	}
	return results.SuccessResult[*AppliedEvent, error](applied), nil
}

// ListEvents returns the event log of a match in minute order.
func (s *MatchService) ListEvents(ctx context.Context, matchID int64) ([]matchdb.MatchEvent, error) {
	return unwrap[[]matchdb.MatchEvent](withTelemetry(s, ctx, "ListEvents", strconv.FormatInt(matchID, 10), func(ctx context.Context) (results.OperationResult[[]matchdb.MatchEvent, error], error) {
		if _, err := s.repo.GetMatch(ctx, nil, matchID); err != nil {
			return classify[[]matchdb.MatchEvent](err, "failed to load match")
		}
		events, err := s.repo.ListEvents(ctx, nil, matchID)
		if err != nil {
			return classify[[]matchdb.MatchEvent](err, "failed to list events")
		}
		if events == nil {
			events = []matchdb.MatchEvent{}
		}
		return results.SuccessResult[[]matchdb.MatchEvent, error](events), nil
	}))
}

// AuditScore never writes. A mismatch means the stored score was changed
// outside event processing.
func (s *MatchService) AuditScore(ctx context.Context, matchID int64) (*ScoreAudit, error) {
	return unwrap[*ScoreAudit](withTelemetry(s, ctx, "AuditScore", strconv.FormatInt(matchID, 10), func(ctx context.Context) (results.OperationResult[*ScoreAudit, error], error) {
		match, err := s.repo.GetMatch(ctx, nil, matchID)
		if err != nil {
			return classify[*ScoreAudit](err, "failed to load match")
		}
		events, err := s.repo.ListEvents(ctx, nil, matchID)
		if err != nil {
			return classify[*ScoreAudit](err, "failed to list events")
		}

		replay := make([]matchdomain.ReplayEvent, len(events))
		for i, e := range events {
			replay[i] = matchdomain.ReplayEvent{Type: matchdomain.EventType(e.Type), TeamID: e.TeamID}
		}
		home, away := matchdomain.Replay(match.HomeTeamID, match.AwayTeamID, replay)

		audit := &ScoreAudit{
			MatchID:      match.ID,
			StoredHome:   match.HomeScore,
			StoredAway:   match.AwayScore,
			ReplayedHome: home,
			ReplayedAway: away,
			Events:       len(events),
			Consistent:   home == match.HomeScore && away == match.AwayScore,
		}
		if !audit.Consistent {
			s.logger.WarnContext(ctx, "Stored score differs from event log",
				attr.ExtractCorrelationID(ctx),
				attr.MatchID(match.ID),
				attr.Any("audit", audit),
			)
		}
		return results.SuccessResult[*ScoreAudit, error](audit), nil
	}))
}

func creditedSide(home, away int) matchdomain.Side {
	switch {
	case home > 0:
		return matchdomain.SideHome
	case away > 0:
		return matchdomain.SideAway
	default:
		return matchdomain.SideNone
	}
}

func trimmedNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	t := strings.TrimSpace(*notes)
	if t == "" {
		return nil
	}
	return &t
}
