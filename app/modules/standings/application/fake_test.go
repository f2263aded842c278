package standingsservice

import (
	"context"

	standingsdb "github.com/Black-And-White-Club/football-league/app/modules/standings/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Standings Repo
// ------------------------

type FakeStandingsRepo struct {
	trace []string

	CompetitionNameFunc func(ctx context.Context, db bun.IDB, competitionID int64) (string, error)
	RegisteredTeamsFunc func(ctx context.Context, db bun.IDB, competitionID int64) ([]standingsdb.TeamRow, error)
	FinishedResultsFunc func(ctx context.Context, db bun.IDB, competitionID int64) ([]standingsdb.ResultRow, error)
}

func NewFakeStandingsRepo() *FakeStandingsRepo {
	return &FakeStandingsRepo{
		trace: []string{},
	}
}

func (f *FakeStandingsRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeStandingsRepo) CompetitionName(ctx context.Context, db bun.IDB, competitionID int64) (string, error) {
	f.record("CompetitionName")
	if f.CompetitionNameFunc != nil {
		return f.CompetitionNameFunc(ctx, db, competitionID)
	}
	return "", standingsdb.ErrCompetitionNotFound
}

func (f *FakeStandingsRepo) RegisteredTeams(ctx context.Context, db bun.IDB, competitionID int64) ([]standingsdb.TeamRow, error) {
	f.record("RegisteredTeams")
	if f.RegisteredTeamsFunc != nil {
		return f.RegisteredTeamsFunc(ctx, db, competitionID)
	}
	return []standingsdb.TeamRow{}, nil
}

func (f *FakeStandingsRepo) FinishedResults(ctx context.Context, db bun.IDB, competitionID int64) ([]standingsdb.ResultRow, error) {
	f.record("FinishedResults")
	if f.FinishedResultsFunc != nil {
		return f.FinishedResultsFunc(ctx, db, competitionID)
	}
	return []standingsdb.ResultRow{}, nil
}

func (f *FakeStandingsRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ standingsdb.Repository = (*FakeStandingsRepo)(nil)
