package competitionservice

import (
	"context"
	"strconv"
	"strings"

	competitiondomain "github.com/Black-And-White-Club/football-league/app/modules/competition/domain"
	competitiondb "github.com/Black-And-White-Club/football-league/app/modules/competition/infrastructure/repositories"
	teamdomain "github.com/Black-And-White-Club/football-league/app/modules/team/domain"
	"github.com/Black-And-White-Club/football-league/app/shared/results"
	"github.com/uptrace/bun"
)

// CreateCompetition validates and stores a new competition.
func (s *CompetitionService) CreateCompetition(ctx context.Context, req CreateCompetitionRequest) (*competitiondb.Competition, error) {
	return unwrap[*competitiondb.Competition](withTelemetry(s, ctx, "CreateCompetition", req.Name, func(ctx context.Context) (results.OperationResult[*competitiondb.Competition, error], error) {
		if err := teamdomain.ValidateName("name", req.Name); err != nil {
			return results.FailureResult[*competitiondb.Competition, error](err), nil
		}
		kind, err := competitiondomain.ParseType(req.Type)
		if err != nil {
			return results.FailureResult[*competitiondb.Competition, error](err), nil
		}
		rules := competitiondomain.Rules{MinSquad: req.MinSquad, MaxSquad: req.MaxSquad, AgeLimit: req.AgeLimit}
		if err := rules.Validate(); err != nil {
			return results.FailureResult[*competitiondb.Competition, error](err), nil
		}

		c := &competitiondb.Competition{
			Name:     strings.TrimSpace(req.Name),
			Type:     string(kind),
			MinSquad: req.MinSquad,
			MaxSquad: req.MaxSquad,
			AgeLimit: req.AgeLimit,
		}
		if err := s.repo.CreateCompetition(ctx, nil, c); err != nil {
			return classify[*competitiondb.Competition](err, "failed to create competition")
		}
		return results.SuccessResult[*competitiondb.Competition, error](c), nil
	}))
}

// GetCompetition returns one competition.
func (s *CompetitionService) GetCompetition(ctx context.Context, id int64) (*competitiondb.Competition, error) {
	return unwrap[*competitiondb.Competition](withTelemetry(s, ctx, "GetCompetition", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*competitiondb.Competition, error], error) {
		c, err := s.repo.GetCompetition(ctx, nil, id)
		if err != nil {
			return classify[*competitiondb.Competition](err, "failed to get competition")
		}
		return results.SuccessResult[*competitiondb.Competition, error](c), nil
	}))
}

// ListCompetitions returns all competitions ordered by name.
func (s *CompetitionService) ListCompetitions(ctx context.Context) ([]competitiondb.Competition, error) {
	return unwrap[[]competitiondb.Competition](withTelemetry(s, ctx, "ListCompetitions", "", func(ctx context.Context) (results.OperationResult[[]competitiondb.Competition, error], error) {
		competitions, err := s.repo.ListCompetitions(ctx, nil)
		if err != nil {
			return classify[[]competitiondb.Competition](err, "failed to list competitions")
		}
		if competitions == nil {
			competitions = []competitiondb.Competition{}
		}
		return results.SuccessResult[[]competitiondb.Competition, error](competitions), nil
	}))
}

// UpdateCompetition applies the set fields of req. Existing registrations are
// not re-checked against changed rules.
func (s *CompetitionService) UpdateCompetition(ctx context.Context, id int64, req UpdateCompetitionRequest) (*competitiondb.Competition, error) {
	return unwrap[*competitiondb.Competition](withTelemetry(s, ctx, "UpdateCompetition", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*competitiondb.Competition, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*competitiondb.Competition, error], error) {
			return s.updateCompetitionLogic(ctx, db, id, req)
		})
	}))
}

func (s *CompetitionService) updateCompetitionLogic(ctx context.Context, db bun.IDB, id int64, req UpdateCompetitionRequest) (results.OperationResult[*competitiondb.Competition, error], error) {
	if err := teamdomain.ValidateOptionalName("name", req.Name); err != nil {
		return results.FailureResult[*competitiondb.Competition, error](err), nil
	}
	var kind competitiondomain.Type
	if req.Type != nil {
		k, err := competitiondomain.ParseType(*req.Type)
		if err != nil {
			return results.FailureResult[*competitiondb.Competition, error](err), nil
		}
		kind = k
	}

	c, err := s.repo.GetCompetition(ctx, db, id)
	if err != nil {
		return classify[*competitiondb.Competition](err, "failed to load competition")
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		c.Type = string(kind)
	}
	if req.MinSquad != nil {
		c.MinSquad = *req.MinSquad
	}
	if req.MaxSquad != nil {
		c.MaxSquad = *req.MaxSquad
	}
	if req.AgeLimit != nil {
		c.AgeLimit = req.AgeLimit
	}
	if req.ClearAgeLimit {
		c.AgeLimit = nil
	}

	if err := rulesOf(c).Validate(); err != nil {
		return results.FailureResult[*competitiondb.Competition, error](err), nil
	}

	if err := s.repo.UpdateCompetition(ctx, db, c); err != nil {
		return classify[*competitiondb.Competition](err, "failed to update competition")
	}
	return results.SuccessResult[*competitiondb.Competition, error](c), nil
}

// DeleteCompetition removes a competition with its registrations and matches.
func (s *CompetitionService) DeleteCompetition(ctx context.Context, id int64) error {
	_, err := unwrap[struct{}](withTelemetry(s, ctx, "DeleteCompetition", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.DeleteCompetition(ctx, nil, id); err != nil {
			return classify[struct{}](err, "failed to delete competition")
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	}))
	return err
}

func rulesOf(c *competitiondb.Competition) competitiondomain.Rules {
	return competitiondomain.Rules{MinSquad: c.MinSquad, MaxSquad: c.MaxSquad, AgeLimit: c.AgeLimit}
}
