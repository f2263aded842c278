package competitionservice

import (
	"context"

	competitiondb "github.com/Black-And-White-Club/football-league/app/modules/competition/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Competition Repo
// ------------------------

type FakeCompetitionRepo struct {
	trace []string

	CreateCompetitionFunc  func(ctx context.Context, db bun.IDB, c *competitiondb.Competition) error
	GetCompetitionFunc     func(ctx context.Context, db bun.IDB, id int64) (*competitiondb.Competition, error)
	ListCompetitionsFunc   func(ctx context.Context, db bun.IDB) ([]competitiondb.Competition, error)
	UpdateCompetitionFunc  func(ctx context.Context, db bun.IDB, c *competitiondb.Competition) error
	DeleteCompetitionFunc  func(ctx context.Context, db bun.IDB, id int64) error
	SquadAgesFunc          func(ctx context.Context, db bun.IDB, teamID int64) ([]int, error)
	CreateRegistrationFunc func(ctx context.Context, db bun.IDB, reg *competitiondb.Registration) error
	ListRegistrationsFunc  func(ctx context.Context, db bun.IDB, competitionID int64) ([]competitiondb.Registration, error)
}

func NewFakeCompetitionRepo() *FakeCompetitionRepo {
	return &FakeCompetitionRepo{
		trace: []string{},
	}
}

func (f *FakeCompetitionRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeCompetitionRepo) CreateCompetition(ctx context.Context, db bun.IDB, c *competitiondb.Competition) error {
	f.record("CreateCompetition")
	if f.CreateCompetitionFunc != nil {
		return f.CreateCompetitionFunc(ctx, db, c)
	}
	c.ID = 1
	return nil
}

func (f *FakeCompetitionRepo) GetCompetition(ctx context.Context, db bun.IDB, id int64) (*competitiondb.Competition, error) {
	f.record("GetCompetition")
	if f.GetCompetitionFunc != nil {
		return f.GetCompetitionFunc(ctx, db, id)
	}
	return nil, competitiondb.ErrCompetitionNotFound
}

func (f *FakeCompetitionRepo) ListCompetitions(ctx context.Context, db bun.IDB) ([]competitiondb.Competition, error) {
	f.record("ListCompetitions")
	if f.ListCompetitionsFunc != nil {
		return f.ListCompetitionsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeCompetitionRepo) UpdateCompetition(ctx context.Context, db bun.IDB, c *competitiondb.Competition) error {
	f.record("UpdateCompetition")
	if f.UpdateCompetitionFunc != nil {
		return f.UpdateCompetitionFunc(ctx, db, c)
	}
	return nil
}

func (f *FakeCompetitionRepo) DeleteCompetition(ctx context.Context, db bun.IDB, id int64) error {
	f.record("DeleteCompetition")
	if f.DeleteCompetitionFunc != nil {
		return f.DeleteCompetitionFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeCompetitionRepo) SquadAges(ctx context.Context, db bun.IDB, teamID int64) ([]int, error) {
	f.record("SquadAges")
	if f.SquadAgesFunc != nil {
		return f.SquadAgesFunc(ctx, db, teamID)
	}
	return nil, competitiondb.ErrTeamNotFound
}

func (f *FakeCompetitionRepo) CreateRegistration(ctx context.Context, db bun.IDB, reg *competitiondb.Registration) error {
	f.record("CreateRegistration")
	if f.CreateRegistrationFunc != nil {
		return f.CreateRegistrationFunc(ctx, db, reg)
	}
	reg.ID = 1
	return nil
}

func (f *FakeCompetitionRepo) ListRegistrations(ctx context.Context, db bun.IDB, competitionID int64) ([]competitiondb.Registration, error) {
	f.record("ListRegistrations")
	if f.ListRegistrationsFunc != nil {
		return f.ListRegistrationsFunc(ctx, db, competitionID)
	}
	return nil, nil
}

func (f *FakeCompetitionRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ competitiondb.Repository = (*FakeCompetitionRepo)(nil)
