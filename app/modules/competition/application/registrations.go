package competitionservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	competitiondb "github.com/Black-And-White-Club/football-league/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/app/shared/results"
	"github.com/uptrace/bun"
)

// RegisterTeam checks squad size and the age limit, then records the
// registration. A team can be registered once per competition.
func (s *CompetitionService) RegisterTeam(ctx context.Context, competitionID, teamID int64) (*competitiondb.Registration, error) {
	return unwrap[*competitiondb.Registration](withTelemetry(s, ctx, "RegisterTeam", strconv.FormatInt(competitionID, 10), func(ctx context.Context) (results.OperationResult[*competitiondb.Registration, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*competitiondb.Registration, error], error) {
			return s.registerTeamLogic(ctx, db, competitionID, teamID)
		})
	}))
}

func (s *CompetitionService) registerTeamLogic(ctx context.Context, db bun.IDB, competitionID, teamID int64) (results.OperationResult[*competitiondb.Registration, error], error) {
	if teamID <= 0 {
		return results.FailureResult[*competitiondb.Registration, error](apperrors.Validation("team_id is required")), nil
	}

	c, err := s.repo.GetCompetition(ctx, db, competitionID)
	if err != nil {
		return classify[*competitiondb.Registration](err, "failed to load competition")
	}

	ages, err := s.repo.SquadAges(ctx, db, teamID)
	if err != nil {
		return classify[*competitiondb.Registration](err, "failed to load squad")
	}

	if err := rulesOf(c).CheckEligibility(ages); err != nil {
		return results.FailureResult[*competitiondb.Registration, error](fmt.Errorf("team %d not eligible for %s: %w", teamID, c.Name, err)), nil
	}

	reg := &competitiondb.Registration{TeamID: teamID, CompetitionID: competitionID}
	if err := s.repo.CreateRegistration(ctx, db, reg); err != nil {
		if errors.Is(err, apperrors.ErrConstraintViolation) {
			return results.FailureResult[*competitiondb.Registration, error](
				apperrors.Constraint("team %d is already registered for competition %d", teamID, competitionID),
			), nil
		}
		return classify[*competitiondb.Registration](err, "failed to create registration")
	}

	s.logger.InfoContext(ctx, "Team registered",
		attr.ExtractCorrelationID(ctx),
		attr.CompetitionID(competitionID),
		attr.TeamID(teamID),
		attr.Int("squad_size", len(ages)),
	)

	return results.SuccessResult[*competitiondb.Registration, error](reg), nil
}

// ListRegistrations returns the teams registered for a competition.
func (s *CompetitionService) ListRegistrations(ctx context.Context, competitionID int64) ([]competitiondb.Registration, error) {
	return unwrap[[]competitiondb.Registration](withTelemetry(s, ctx, "ListRegistrations", strconv.FormatInt(competitionID, 10), func(ctx context.Context) (results.OperationResult[[]competitiondb.Registration, error], error) {
		if _, err := s.repo.GetCompetition(ctx, nil, competitionID); err != nil {
			return classify[[]competitiondb.Registration](err, "failed to load competition")
		}
		regs, err := s.repo.ListRegistrations(ctx, nil, competitionID)
		if err != nil {
			return classify[[]competitiondb.Registration](err, "failed to list registrations")
		}
		if regs == nil {
			regs = []competitiondb.Registration{}
		}
		return results.SuccessResult[[]competitiondb.Registration, error](regs), nil
	}))
}
