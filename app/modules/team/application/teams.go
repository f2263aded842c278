package teamservice

import (
	"context"
	"strconv"
	"strings"

	teamdomain "github.com/Black-And-White-Club/football-league/app/modules/team/domain"
	teamdb "github.com/Black-And-White-Club/football-league/app/modules/team/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/results"
	"github.com/uptrace/bun"
)

// CreateTeam validates and stores a new team.
func (s *TeamService) CreateTeam(ctx context.Context, req CreateTeamRequest) (*teamdb.Team, error) {
	return unwrap[*teamdb.Team](withTelemetry(s, ctx, "CreateTeam", req.Name, func(ctx context.Context) (results.OperationResult[*teamdb.Team, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*teamdb.Team, error], error) {
			return s.createTeamLogic(ctx, db, req)
		})
	}))
}

func (s *TeamService) createTeamLogic(ctx context.Context, db bun.IDB, req CreateTeamRequest) (results.OperationResult[*teamdb.Team, error], error) {
	if err := s.validateTeamFields(&req.Name, req.Coach, req.FoundedYear, req.Stadium); err != nil {
		return results.FailureResult[*teamdb.Team, error](err), nil
	}

	team := &teamdb.Team{
		Name:        strings.TrimSpace(req.Name),
		Coach:       trimmed(req.Coach),
		FoundedYear: req.FoundedYear,
		Stadium:     trimmed(req.Stadium),
	}
	if err := s.repo.CreateTeam(ctx, db, team); err != nil {
		return classify[*teamdb.Team](err, "failed to create team")
	}
	return results.SuccessResult[*teamdb.Team, error](team), nil
}

// GetTeam returns one team.
func (s *TeamService) GetTeam(ctx context.Context, id int64) (*teamdb.Team, error) {
	return unwrap[*teamdb.Team](withTelemetry(s, ctx, "GetTeam", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*teamdb.Team, error], error) {
		team, err := s.repo.GetTeam(ctx, nil, id)
		if err != nil {
			return classify[*teamdb.Team](err, "failed to get team")
		}
		return results.SuccessResult[*teamdb.Team, error](team), nil
	}))
}

// ListTeams returns all teams ordered by name.
func (s *TeamService) ListTeams(ctx context.Context) ([]teamdb.Team, error) {
	return unwrap[[]teamdb.Team](withTelemetry(s, ctx, "ListTeams", "", func(ctx context.Context) (results.OperationResult[[]teamdb.Team, error], error) {
		teams, err := s.repo.ListTeams(ctx, nil)
		if err != nil {
			return classify[[]teamdb.Team](err, "failed to list teams")
		}
		if teams == nil {
			teams = []teamdb.Team{}
		}
		return results.SuccessResult[[]teamdb.Team, error](teams), nil
	}))
}

// UpdateTeam applies the set fields of req.
func (s *TeamService) UpdateTeam(ctx context.Context, id int64, req UpdateTeamRequest) (*teamdb.Team, error) {
	return unwrap[*teamdb.Team](withTelemetry(s, ctx, "UpdateTeam", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*teamdb.Team, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*teamdb.Team, error], error) {
			return s.updateTeamLogic(ctx, db, id, req)
		})
	}))
}

func (s *TeamService) updateTeamLogic(ctx context.Context, db bun.IDB, id int64, req UpdateTeamRequest) (results.OperationResult[*teamdb.Team, error], error) {
	if err := s.validateTeamFields(req.Name, req.Coach, req.FoundedYear, req.Stadium); err != nil {
		return results.FailureResult[*teamdb.Team, error](err), nil
	}

	team, err := s.repo.GetTeam(ctx, db, id)
	if err != nil {
		return classify[*teamdb.Team](err, "failed to load team")
	}

	if req.Name != nil {
		team.Name = strings.TrimSpace(*req.Name)
	}
	if req.Coach != nil {
		team.Coach = trimmed(req.Coach)
	}
	if req.FoundedYear != nil {
		team.FoundedYear = req.FoundedYear
	}
	if req.Stadium != nil {
		team.Stadium = trimmed(req.Stadium)
	}

	if err := s.repo.UpdateTeam(ctx, db, team); err != nil {
		return classify[*teamdb.Team](err, "failed to update team")
	}
	return results.SuccessResult[*teamdb.Team, error](team), nil
}

// DeleteTeam removes a team and, through cascades, its players, registrations and matches.
func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	_, err := unwrap[struct{}](withTelemetry(s, ctx, "DeleteTeam", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.DeleteTeam(ctx, nil, id); err != nil {
			return classify[struct{}](err, "failed to delete team")
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	}))
	return err
}

// validateTeamFields checks the team fields that are present.
func (s *TeamService) validateTeamFields(name, coach *string, foundedYear *int, stadium *string) error {
	if err := teamdomain.ValidateOptionalName("name", name); err != nil {
		return err
	}
	if err := teamdomain.ValidateOptionalName("coach", coach); err != nil {
		return err
	}
	if err := teamdomain.ValidateOptionalName("stadium", stadium); err != nil {
		return err
	}
	return teamdomain.ValidateFoundedYear(foundedYear, s.now())
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
