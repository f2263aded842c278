package matchservice

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	matchdomain "github.com/Black-And-White-Club/football-league/app/modules/match/domain"
	matchdb "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories"
	teamdomain "github.com/Black-And-White-Club/football-league/app/modules/team/domain"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/app/shared/results"
	"github.com/uptrace/bun"
)

// CreateMatch stores a SCHEDULED match with a zero score and, when a
// scheduler is attached, queues its kickoff.
func (s *MatchService) CreateMatch(ctx context.Context, req CreateMatchRequest) (*matchdb.Match, error) {
	match, err := unwrap[*matchdb.Match](withTelemetry(s, ctx, "CreateMatch", "", func(ctx context.Context) (results.OperationResult[*matchdb.Match, error], error) {
		return s.createMatchLogic(ctx, req)
	}))
	if err != nil {
		return nil, err
	}
	s.scheduleKickoff(ctx, match)
	return match, nil
}

func (s *MatchService) createMatchLogic(ctx context.Context, req CreateMatchRequest) (results.OperationResult[*matchdb.Match, error], error) {
	if req.HomeTeamID <= 0 || req.AwayTeamID <= 0 {
		return results.FailureResult[*matchdb.Match, error](apperrors.Validation("home_team_id and away_team_id are required")), nil
	}
	if req.HomeTeamID == req.AwayTeamID {
		return results.FailureResult[*matchdb.Match, error](apperrors.Validation("a team cannot play itself")), nil
	}
	if err := validateOfficials(req.Venue, req.Referee); err != nil {
		return results.FailureResult[*matchdb.Match, error](err), nil
	}
	kickoff, err := s.resolveKickoff(req.ScheduledAt, req.ScheduledAtText, req.TimeZone)
	if err != nil {
		return results.FailureResult[*matchdb.Match, error](err), nil
	}
	if kickoff == nil {
		return results.FailureResult[*matchdb.Match, error](apperrors.Validation("scheduled_at or scheduled_at_text is required")), nil
	}

	match := &matchdb.Match{
		CompetitionID: req.CompetitionID,
		HomeTeamID:    req.HomeTeamID,
		AwayTeamID:    req.AwayTeamID,
		ScheduledAt:   *kickoff,
		Venue:         trimmedNotes(req.Venue),
		Referee:       trimmedNotes(req.Referee),
		Status:        string(matchdomain.StatusScheduled),
	}
	if err := s.repo.CreateMatch(ctx, nil, match); err != nil {
		return classify[*matchdb.Match](err, "failed to create match")
	}
	return results.SuccessResult[*matchdb.Match, error](match), nil
}

// GetMatch returns one match with its current score.
func (s *MatchService) GetMatch(ctx context.Context, id int64) (*matchdb.Match, error) {
	return unwrap[*matchdb.Match](withTelemetry(s, ctx, "GetMatch", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*matchdb.Match, error], error) {
		match, err := s.repo.GetMatch(ctx, nil, id)
		if err != nil {
			return classify[*matchdb.Match](err, "failed to get match")
		}
		return results.SuccessResult[*matchdb.Match, error](match), nil
	}))
}

// ListMatches returns matches in kickoff order.
func (s *MatchService) ListMatches(ctx context.Context, req ListMatchesRequest) ([]matchdb.Match, error) {
	return unwrap[[]matchdb.Match](withTelemetry(s, ctx, "ListMatches", "", func(ctx context.Context) (results.OperationResult[[]matchdb.Match, error], error) {
		filter := matchdb.MatchFilter{CompetitionID: req.CompetitionID}
		if req.Status != nil {
			status, err := matchdomain.ParseStatus(*req.Status)
			if err != nil {
				return results.FailureResult[[]matchdb.Match, error](err), nil
			}
			st := string(status)
			filter.Status = &st
		}
		matches, err := s.repo.ListMatches(ctx, nil, filter)
		if err != nil {
			return classify[[]matchdb.Match](err, "failed to list matches")
		}
		if matches == nil {
			matches = []matchdb.Match{}
		}
		return results.SuccessResult[[]matchdb.Match, error](matches), nil
	}))
}

// UpdateMatch edits venue, referee and, before kickoff, the scheduled time.
func (s *MatchService) UpdateMatch(ctx context.Context, id int64, req UpdateMatchRequest) (*matchdb.Match, error) {
	var rescheduled bool
	match, err := unwrap[*matchdb.Match](withTelemetry(s, ctx, "UpdateMatch", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*matchdb.Match, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*matchdb.Match, error], error) {
			if err := validateOfficials(req.Venue, req.Referee); err != nil {
				return results.FailureResult[*matchdb.Match, error](err), nil
			}
			kickoff, err := s.resolveKickoff(req.ScheduledAt, req.ScheduledAtText, req.TimeZone)
			if err != nil {
				return results.FailureResult[*matchdb.Match, error](err), nil
			}

			match, err := s.repo.GetMatchForUpdate(ctx, db, id)
			if err != nil {
				return classify[*matchdb.Match](err, "failed to load match")
			}

			if kickoff != nil {
				if match.Status != string(matchdomain.StatusScheduled) {
					return results.FailureResult[*matchdb.Match, error](
						apperrors.Constraint("match %d is %s and can no longer be rescheduled", id, match.Status),
					), nil
				}
				rescheduled = !kickoff.Equal(match.ScheduledAt)
				match.ScheduledAt = *kickoff
			}
			if req.Venue != nil {
				match.Venue = trimmedNotes(req.Venue)
			}
			if req.Referee != nil {
				match.Referee = trimmedNotes(req.Referee)
			}

			if err := s.repo.UpdateMatch(ctx, db, match); err != nil {
				return classify[*matchdb.Match](err, "failed to update match")
			}
			return results.SuccessResult[*matchdb.Match, error](match), nil
		})
	}))
	if err != nil {
		return nil, err
	}
	if rescheduled {
		s.scheduleKickoff(ctx, match)
	}
	return match, nil
}

// DeleteMatch removes a match and its events.
func (s *MatchService) DeleteMatch(ctx context.Context, id int64) error {
	_, err := unwrap[struct{}](withTelemetry(s, ctx, "DeleteMatch", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.DeleteMatch(ctx, nil, id); err != nil {
			return classify[struct{}](err, "failed to delete match")
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	}))
	return err
}

// AdvanceStatus rejects transitions that do not move forward.
func (s *MatchService) AdvanceStatus(ctx context.Context, id int64, status string) (*matchdb.Match, error) {
	return unwrap[*matchdb.Match](withTelemetry(s, ctx, "AdvanceStatus", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*matchdb.Match, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*matchdb.Match, error], error) {
			target, err := matchdomain.ParseStatus(status)
			if err != nil {
				return results.FailureResult[*matchdb.Match, error](err), nil
			}

			match, err := s.repo.GetMatchForUpdate(ctx, db, id)
			if err != nil {
				return classify[*matchdb.Match](err, "failed to load match")
			}
			if err := matchdomain.CanAdvance(matchdomain.Status(match.Status), target); err != nil {
				return results.FailureResult[*matchdb.Match, error](err), nil
			}
			if err := s.repo.UpdateStatus(ctx, db, id, target); err != nil {
				return classify[*matchdb.Match](err, "failed to update match status")
			}

			s.logger.InfoContext(ctx, "Match status advanced",
				attr.ExtractCorrelationID(ctx),
				attr.MatchID(id),
				attr.String("from", match.Status),
				attr.String("to", string(target)),
			)
			match.Status = string(target)
			return results.SuccessResult[*matchdb.Match, error](match), nil
		})
	}))
}

// KickOff is run by the kickoff queue. Matches that already started, were
// rescheduled away from scheduledAt, or were deleted are left alone.
func (s *MatchService) KickOff(ctx context.Context, id int64, scheduledAt time.Time) (bool, error) {
	return unwrap[bool](withTelemetry(s, ctx, "KickOff", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[bool, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
			match, err := s.repo.GetMatchForUpdate(ctx, db, id)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return results.SuccessResult[bool, error](false), nil
				}
				return classify[bool](err, "failed to load match")
			}
			if match.Status != string(matchdomain.StatusScheduled) || !match.ScheduledAt.Equal(scheduledAt) {
				return results.SuccessResult[bool, error](false), nil
			}
			if err := s.repo.UpdateStatus(ctx, db, id, matchdomain.StatusInPlay); err != nil {
				return classify[bool](err, "failed to start match")
			}
			s.logger.InfoContext(ctx, "Match kicked off", attr.ExtractCorrelationID(ctx), attr.MatchID(id))
			return results.SuccessResult[bool, error](true), nil
		})
	}))
}

// resolveKickoff returns nil when neither form of kickoff is given. The
// result has the microsecond precision postgres stores, so a queued kickoff
// compares equal to the stored time.
func (s *MatchService) resolveKickoff(at *time.Time, text *string, zone string) (*time.Time, error) {
	switch {
	case at != nil && text != nil:
		return nil, apperrors.Validation("give scheduled_at or scheduled_at_text, not both")
	case at != nil:
		t := at.UTC().Truncate(time.Microsecond)
		return &t, nil
	case text != nil:
		t, err := s.kickoff.Parse(*text, zone, s.now())
		if err != nil {
			return nil, err
		}
		t = t.Truncate(time.Microsecond)
		return &t, nil
	default:
		return nil, nil
	}
}

// scheduleKickoff is best effort; a failure is logged and the match can still
// be started by hand.
func (s *MatchService) scheduleKickoff(ctx context.Context, match *matchdb.Match) {
	if s.scheduler == nil || match == nil || !match.ScheduledAt.After(s.now()) {
		return
	}
	if err := s.scheduler.ScheduleKickoff(ctx, match.ID, match.ScheduledAt); err != nil {
		s.logger.WarnContext(ctx, "Failed to schedule kickoff",
			attr.ExtractCorrelationID(ctx),
			attr.MatchID(match.ID),
			attr.Time("scheduled_at", match.ScheduledAt),
			attr.Error(err),
		)
	}
}

func validateOfficials(venue, referee *string) error {
	if venue != nil && strings.TrimSpace(*venue) != "" {
		if err := teamdomain.ValidateName("venue", *venue); err != nil {
			return err
		}
	}
	if referee != nil && strings.TrimSpace(*referee) != "" {
		if err := teamdomain.ValidateName("referee", *referee); err != nil {
			return err
		}
	}
	return nil
}
