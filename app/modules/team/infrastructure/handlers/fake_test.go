package teamhandlers

import (
	"context"

	teamservice "github.com/Black-And-White-Club/football-league/app/modules/team/application"
	teamdb "github.com/Black-And-White-Club/football-league/app/modules/team/infrastructure/repositories"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	CreateTeamFunc   func(ctx context.Context, req teamservice.CreateTeamRequest) (*teamdb.Team, error)
	GetTeamFunc      func(ctx context.Context, id int64) (*teamdb.Team, error)
	ListTeamsFunc    func(ctx context.Context) ([]teamdb.Team, error)
	UpdateTeamFunc   func(ctx context.Context, id int64, req teamservice.UpdateTeamRequest) (*teamdb.Team, error)
	DeleteTeamFunc   func(ctx context.Context, id int64) error
	CreatePlayerFunc func(ctx context.Context, teamID int64, req teamservice.CreatePlayerRequest) (*teamdb.Player, error)
	GetPlayerFunc    func(ctx context.Context, id int64) (*teamdb.Player, error)
	ListPlayersFunc  func(ctx context.Context, teamID int64) ([]teamdb.Player, error)
	UpdatePlayerFunc func(ctx context.Context, id int64, req teamservice.UpdatePlayerRequest) (*teamdb.Player, error)
	DeletePlayerFunc func(ctx context.Context, id int64) error
	ImportSquadFunc  func(ctx context.Context, teamID int64, filename string, data []byte) ([]teamdb.Player, error)
}

func (f *FakeService) CreateTeam(ctx context.Context, req teamservice.CreateTeamRequest) (*teamdb.Team, error) {
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, req)
	}
	return &teamdb.Team{ID: 1, Name: req.Name}, nil
}

func (f *FakeService) GetTeam(ctx context.Context, id int64) (*teamdb.Team, error) {
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, id)
	}
	return &teamdb.Team{ID: id, Name: "Harbour Town"}, nil
}

func (f *FakeService) ListTeams(ctx context.Context) ([]teamdb.Team, error) {
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx)
	}
	return []teamdb.Team{}, nil
}

func (f *FakeService) UpdateTeam(ctx context.Context, id int64, req teamservice.UpdateTeamRequest) (*teamdb.Team, error) {
	if f.UpdateTeamFunc != nil {
		return f.UpdateTeamFunc(ctx, id, req)
	}
	return &teamdb.Team{ID: id}, nil
}

func (f *FakeService) DeleteTeam(ctx context.Context, id int64) error {
	if f.DeleteTeamFunc != nil {
		return f.DeleteTeamFunc(ctx, id)
	}
	return nil
}

func (f *FakeService) CreatePlayer(ctx context.Context, teamID int64, req teamservice.CreatePlayerRequest) (*teamdb.Player, error) {
	if f.CreatePlayerFunc != nil {
		return f.CreatePlayerFunc(ctx, teamID, req)
	}
	return &teamdb.Player{ID: 1, TeamID: teamID, Name: req.Name}, nil
}

func (f *FakeService) GetPlayer(ctx context.Context, id int64) (*teamdb.Player, error) {
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, id)
	}
	return &teamdb.Player{ID: id}, nil
}

func (f *FakeService) ListPlayers(ctx context.Context, teamID int64) ([]teamdb.Player, error) {
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx, teamID)
	}
	return []teamdb.Player{}, nil
}

func (f *FakeService) UpdatePlayer(ctx context.Context, id int64, req teamservice.UpdatePlayerRequest) (*teamdb.Player, error) {
	if f.UpdatePlayerFunc != nil {
		return f.UpdatePlayerFunc(ctx, id, req)
	}
	return &teamdb.Player{ID: id}, nil
}

func (f *FakeService) DeletePlayer(ctx context.Context, id int64) error {
	if f.DeletePlayerFunc != nil {
		return f.DeletePlayerFunc(ctx, id)
	}
	return nil
}

func (f *FakeService) ImportSquad(ctx context.Context, teamID int64, filename string, data []byte) ([]teamdb.Player, error) {
	if f.ImportSquadFunc != nil {
		return f.ImportSquadFunc(ctx, teamID, filename, data)
	}
	return []teamdb.Player{}, nil
}

var _ teamservice.Service = (*FakeService)(nil)
