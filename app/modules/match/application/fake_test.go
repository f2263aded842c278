package matchservice

import (
	"context"
	"time"

	matchdomain "github.com/Black-And-White-Club/football-league/app/modules/match/domain"
	matchdb "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Match Repo
// ------------------------

type scoreCall struct {
	MatchID    int64
	Home, Away int
}

type counterCall struct {
	PlayerID int64
	Counter  matchdomain.Counter
}

type FakeMatchRepo struct {
	trace []string

	ScoreCalls   []scoreCall
	CounterCalls []counterCall
	StatusCalls  []matchdomain.Status
	Inserted     []matchdb.MatchEvent

	CreateMatchFunc            func(ctx context.Context, db bun.IDB, m *matchdb.Match) error
	GetMatchFunc               func(ctx context.Context, db bun.IDB, id int64) (*matchdb.Match, error)
	GetMatchForUpdateFunc      func(ctx context.Context, db bun.IDB, id int64) (*matchdb.Match, error)
	ListMatchesFunc            func(ctx context.Context, db bun.IDB, filter matchdb.MatchFilter) ([]matchdb.Match, error)
	UpdateMatchFunc            func(ctx context.Context, db bun.IDB, m *matchdb.Match) error
	UpdateStatusFunc           func(ctx context.Context, db bun.IDB, id int64, status matchdomain.Status) error
	DeleteMatchFunc            func(ctx context.Context, db bun.IDB, id int64) error
	InsertEventFunc            func(ctx context.Context, db bun.IDB, e *matchdb.MatchEvent) error
	ListEventsFunc             func(ctx context.Context, db bun.IDB, matchID int64) ([]matchdb.MatchEvent, error)
	IncrementScoreFunc         func(ctx context.Context, db bun.IDB, matchID int64, home, away int) error
	IncrementPlayerCounterFunc func(ctx context.Context, db bun.IDB, playerID int64, counter matchdomain.Counter) error
}

func NewFakeMatchRepo() *FakeMatchRepo {
	return &FakeMatchRepo{
		trace: []string{},
	}
}

func (f *FakeMatchRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// WithMatch makes both match reads return a copy of m.
func (f *FakeMatchRepo) WithMatch(m matchdb.Match) *FakeMatchRepo {
	read := func(ctx context.Context, db bun.IDB, id int64) (*matchdb.Match, error) {
		if id != m.ID {
			return nil, matchdb.ErrMatchNotFound
		}
		cp := m
		return &cp, nil
	}
	f.GetMatchFunc = read
	f.GetMatchForUpdateFunc = read
	return f
}

func (f *FakeMatchRepo) CreateMatch(ctx context.Context, db bun.IDB, m *matchdb.Match) error {
	f.record("CreateMatch")
	if f.CreateMatchFunc != nil {
		return f.CreateMatchFunc(ctx, db, m)
	}
	m.ID = 1
	return nil
}

func (f *FakeMatchRepo) GetMatch(ctx context.Context, db bun.IDB, id int64) (*matchdb.Match, error) {
	f.record("GetMatch")
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, db, id)
	}
	return nil, matchdb.ErrMatchNotFound
}

func (f *FakeMatchRepo) GetMatchForUpdate(ctx context.Context, db bun.IDB, id int64) (*matchdb.Match, error) {
	f.record("GetMatchForUpdate")
	if f.GetMatchForUpdateFunc != nil {
		return f.GetMatchForUpdateFunc(ctx, db, id)
	}
	return nil, matchdb.ErrMatchNotFound
}

func (f *FakeMatchRepo) ListMatches(ctx context.Context, db bun.IDB, filter matchdb.MatchFilter) ([]matchdb.Match, error) {
	f.record("ListMatches")
	if f.ListMatchesFunc != nil {
		return f.ListMatchesFunc(ctx, db, filter)
	}
	return nil, nil
}

func (f *FakeMatchRepo) UpdateMatch(ctx context.Context, db bun.IDB, m *matchdb.Match) error {
	f.record("UpdateMatch")
	if f.UpdateMatchFunc != nil {
		return f.UpdateMatchFunc(ctx, db, m)
	}
	return nil
}

func (f *FakeMatchRepo) UpdateStatus(ctx context.Context, db bun.IDB, id int64, status matchdomain.Status) error {
	f.record("UpdateStatus")
	f.StatusCalls = append(f.StatusCalls, status)
	if f.UpdateStatusFunc != nil {
		return f.UpdateStatusFunc(ctx, db, id, status)
	}
	return nil
}

func (f *FakeMatchRepo) DeleteMatch(ctx context.Context, db bun.IDB, id int64) error {
	f.record("DeleteMatch")
	if f.DeleteMatchFunc != nil {
		return f.DeleteMatchFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeMatchRepo) InsertEvent(ctx context.Context, db bun.IDB, e *matchdb.MatchEvent) error {
	f.record("InsertEvent")
	if f.InsertEventFunc != nil {
		if err := f.InsertEventFunc(ctx, db, e); err != nil {
			return err
		}
	} else {
		e.ID = int64(len(f.Inserted) + 1)
		e.CreatedAt = time.Date(2026, 10, 1, 15, 0, 0, 0, time.UTC)
	}
	f.Inserted = append(f.Inserted, *e)
	return nil
}

func (f *FakeMatchRepo) ListEvents(ctx context.Context, db bun.IDB, matchID int64) ([]matchdb.MatchEvent, error) {
	f.record("ListEvents")
	if f.ListEventsFunc != nil {
		return f.ListEventsFunc(ctx, db, matchID)
	}
	return nil, nil
}

func (f *FakeMatchRepo) IncrementScore(ctx context.Context, db bun.IDB, matchID int64, home, away int) error {
	f.record("IncrementScore")
	f.ScoreCalls = append(f.ScoreCalls, scoreCall{MatchID: matchID, Home: home, Away: away})
	if f.IncrementScoreFunc != nil {
		return f.IncrementScoreFunc(ctx, db, matchID, home, away)
	}
	return nil
}

func (f *FakeMatchRepo) IncrementPlayerCounter(ctx context.Context, db bun.IDB, playerID int64, counter matchdomain.Counter) error {
	f.record("IncrementPlayerCounter")
	f.CounterCalls = append(f.CounterCalls, counterCall{PlayerID: playerID, Counter: counter})
	if f.IncrementPlayerCounterFunc != nil {
		return f.IncrementPlayerCounterFunc(ctx, db, playerID, counter)
	}
	return nil
}

func (f *FakeMatchRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ matchdb.Repository = (*FakeMatchRepo)(nil)

// ------------------------
// Fake Scheduler
// ------------------------

type FakeScheduler struct {
	Scheduled map[int64]time.Time
	Err       error
}

func (f *FakeScheduler) ScheduleKickoff(ctx context.Context, matchID int64, at time.Time) error {
	if f.Err != nil {
		return f.Err
	}
	if f.Scheduled == nil {
		f.Scheduled = map[int64]time.Time{}
	}
	f.Scheduled[matchID] = at
	return nil
}

// ------------------------
// Recording Metrics
// ------------------------

type recordingMetrics struct {
	events []string
	goals  []string
}

func (m *recordingMetrics) RecordOperationAttempt(context.Context, string, string)                 {}
func (m *recordingMetrics) RecordOperationSuccess(context.Context, string, string)                 {}
func (m *recordingMetrics) RecordOperationFailure(context.Context, string, string)                 {}
func (m *recordingMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}

func (m *recordingMetrics) RecordEventApplied(_ context.Context, eventType string) {
	m.events = append(m.events, eventType)
}

func (m *recordingMetrics) RecordGoalCredited(_ context.Context, side string) {
	m.goals = append(m.goals, side)
}
