package competitionhandlers

import (
	"context"

	competitionservice "github.com/Black-And-White-Club/football-league/app/modules/competition/application"
	competitiondb "github.com/Black-And-White-Club/football-league/app/modules/competition/infrastructure/repositories"
)

type FakeService struct {
	CreateCompetitionFunc func(ctx context.Context, req competitionservice.CreateCompetitionRequest) (*competitiondb.Competition, error)
	GetCompetitionFunc    func(ctx context.Context, id int64) (*competitiondb.Competition, error)
	UpdateCompetitionFunc func(ctx context.Context, id int64, req competitionservice.UpdateCompetitionRequest) (*competitiondb.Competition, error)
	RegisterTeamFunc      func(ctx context.Context, competitionID, teamID int64) (*competitiondb.Registration, error)
	ListRegistrationsFunc func(ctx context.Context, competitionID int64) ([]competitiondb.Registration, error)
}

func (f *FakeService) CreateCompetition(ctx context.Context, req competitionservice.CreateCompetitionRequest) (*competitiondb.Competition, error) {
	if f.CreateCompetitionFunc != nil {
		return f.CreateCompetitionFunc(ctx, req)
	}
	return &competitiondb.Competition{ID: 1, Name: req.Name, Type: req.Type}, nil
}

func (f *FakeService) GetCompetition(ctx context.Context, id int64) (*competitiondb.Competition, error) {
	if f.GetCompetitionFunc != nil {
		return f.GetCompetitionFunc(ctx, id)
	}
	return &competitiondb.Competition{ID: id}, nil
}

func (f *FakeService) ListCompetitions(ctx context.Context) ([]competitiondb.Competition, error) {
	return []competitiondb.Competition{}, nil
}

func (f *FakeService) UpdateCompetition(ctx context.Context, id int64, req competitionservice.UpdateCompetitionRequest) (*competitiondb.Competition, error) {
	if f.UpdateCompetitionFunc != nil {
		return f.UpdateCompetitionFunc(ctx, id, req)
	}
	return &competitiondb.Competition{ID: id}, nil
}

func (f *FakeService) DeleteCompetition(ctx context.Context, id int64) error {
	return nil
}

func (f *FakeService) RegisterTeam(ctx context.Context, competitionID, teamID int64) (*competitiondb.Registration, error) {
	if f.RegisterTeamFunc != nil {
		return f.RegisterTeamFunc(ctx, competitionID, teamID)
	}
	return &competitiondb.Registration{ID: 1, CompetitionID: competitionID, TeamID: teamID}, nil
}

func (f *FakeService) ListRegistrations(ctx context.Context, competitionID int64) ([]competitiondb.Registration, error) {
	if f.ListRegistrationsFunc != nil {
		return f.ListRegistrationsFunc(ctx, competitionID)
	}
	return []competitiondb.Registration{}, nil
}

var _ competitionservice.Service = (*FakeService)(nil)
