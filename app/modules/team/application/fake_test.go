package teamservice

import (
	"context"

	teamdb "github.com/Black-And-White-Club/football-league/app/modules/team/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Team Repo
// ------------------------

type FakeTeamRepo struct {
	trace []string

	CreateTeamFunc    func(ctx context.Context, db bun.IDB, team *teamdb.Team) error
	GetTeamFunc       func(ctx context.Context, db bun.IDB, id int64) (*teamdb.Team, error)
	ListTeamsFunc     func(ctx context.Context, db bun.IDB) ([]teamdb.Team, error)
	UpdateTeamFunc    func(ctx context.Context, db bun.IDB, team *teamdb.Team) error
	DeleteTeamFunc    func(ctx context.Context, db bun.IDB, id int64) error
	CreatePlayersFunc func(ctx context.Context, db bun.IDB, players []*teamdb.Player) error
	GetPlayerFunc     func(ctx context.Context, db bun.IDB, id int64) (*teamdb.Player, error)
	ListPlayersFunc   func(ctx context.Context, db bun.IDB, teamID int64) ([]teamdb.Player, error)
	UpdatePlayerFunc  func(ctx context.Context, db bun.IDB, player *teamdb.Player) error
	DeletePlayerFunc  func(ctx context.Context, db bun.IDB, id int64) error
}

func NewFakeTeamRepo() *FakeTeamRepo {
	return &FakeTeamRepo{
		trace: []string{},
	}
}

func (f *FakeTeamRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeTeamRepo) CreateTeam(ctx context.Context, db bun.IDB, team *teamdb.Team) error {
	f.record("CreateTeam")
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, db, team)
	}
	team.ID = 1
	return nil
}

func (f *FakeTeamRepo) GetTeam(ctx context.Context, db bun.IDB, id int64) (*teamdb.Team, error) {
	f.record("GetTeam")
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, db, id)
	}
	return nil, teamdb.ErrTeamNotFound
}

func (f *FakeTeamRepo) ListTeams(ctx context.Context, db bun.IDB) ([]teamdb.Team, error) {
	f.record("ListTeams")
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeTeamRepo) UpdateTeam(ctx context.Context, db bun.IDB, team *teamdb.Team) error {
	f.record("UpdateTeam")
	if f.UpdateTeamFunc != nil {
		return f.UpdateTeamFunc(ctx, db, team)
	}
	return nil
}

func (f *FakeTeamRepo) DeleteTeam(ctx context.Context, db bun.IDB, id int64) error {
	f.record("DeleteTeam")
	if f.DeleteTeamFunc != nil {
		return f.DeleteTeamFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeTeamRepo) CreatePlayers(ctx context.Context, db bun.IDB, players []*teamdb.Player) error {
	f.record("CreatePlayers")
	if f.CreatePlayersFunc != nil {
		return f.CreatePlayersFunc(ctx, db, players)
	}
	for i, p := range players {
		p.ID = int64(i + 1)
	}
	return nil
}

func (f *FakeTeamRepo) GetPlayer(ctx context.Context, db bun.IDB, id int64) (*teamdb.Player, error) {
	f.record("GetPlayer")
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, db, id)
	}
	return nil, teamdb.ErrPlayerNotFound
}

func (f *FakeTeamRepo) ListPlayers(ctx context.Context, db bun.IDB, teamID int64) ([]teamdb.Player, error) {
	f.record("ListPlayers")
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx, db, teamID)
	}
	return nil, nil
}

func (f *FakeTeamRepo) UpdatePlayer(ctx context.Context, db bun.IDB, player *teamdb.Player) error {
	f.record("UpdatePlayer")
	if f.UpdatePlayerFunc != nil {
		return f.UpdatePlayerFunc(ctx, db, player)
	}
	return nil
}

func (f *FakeTeamRepo) DeletePlayer(ctx context.Context, db bun.IDB, id int64) error {
	f.record("DeletePlayer")
	if f.DeletePlayerFunc != nil {
		return f.DeletePlayerFunc(ctx, db, id)
	}
	return nil
}

// --- Accessors for assertions ---

func (f *FakeTeamRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ teamdb.Repository = (*FakeTeamRepo)(nil)
