package matchservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	matchdomain "github.com/Black-And-White-Club/football-league/app/modules/match/domain"
	matchdb "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

var testNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func newTestService(repo *FakeMatchRepo, metrics observability.MatchMetrics) *MatchService {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewMatchService(repo, logger, metrics, noop.NewTracerProvider().Tracer("test"), nil)
	svc.now = func() time.Time { return testNow }
	return svc
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

// derby is match 7: team 1 at home to team 2.
func derby(status matchdomain.Status, home, away int) matchdb.Match {
	return matchdb.Match{
		ID:          7,
		HomeTeamID:  1,
		AwayTeamID:  2,
		ScheduledAt: testNow.Add(2 * time.Hour),
		Status:      string(status),
		HomeScore:   home,
		AwayScore:   away,
	}
}

func TestApplyEvent(t *testing.T) {
	tests := []struct {
		name         string
		req          ApplyEventRequest
		wantScores   []scoreCall
		wantCounters []counterCall
		wantHome     int
		wantAway     int
		wantCredited string
		wantTrace    []string
	}{
		{
			name:         "home goal",
			req:          ApplyEventRequest{MatchID: 7, Minute: 12, Type: "GOAL", PlayerID: int64Ptr(10), TeamID: int64Ptr(1)},
			wantScores:   []scoreCall{{MatchID: 7, Home: 1}},
			wantCounters: []counterCall{{PlayerID: 10, Counter: matchdomain.CounterGoals}},
			wantHome:     2,
			wantAway:     1,
			wantCredited: "home",
			wantTrace:    []string{"GetMatchForUpdate", "InsertEvent", "IncrementScore", "IncrementPlayerCounter"},
		},
		{
			name:         "away goal lowercase type",
			req:          ApplyEventRequest{MatchID: 7, Minute: 90, Type: "goal", TeamID: int64Ptr(2)},
			wantScores:   []scoreCall{{MatchID: 7, Away: 1}},
			wantHome:     1,
			wantAway:     2,
			wantCredited: "away",
			wantTrace:    []string{"GetMatchForUpdate", "InsertEvent", "IncrementScore"},
		},
		{
			name:         "own goal by home player counts for away",
			req:          ApplyEventRequest{MatchID: 7, Minute: 33, Type: "OWN_GOAL", PlayerID: int64Ptr(10), TeamID: int64Ptr(1)},
			wantScores:   []scoreCall{{MatchID: 7, Away: 1}},
			wantHome:     1,
			wantAway:     2,
			wantCredited: "away",
			wantTrace:    []string{"GetMatchForUpdate", "InsertEvent", "IncrementScore"},
		},
		{
			name:         "goal for a team outside the match",
			req:          ApplyEventRequest{MatchID: 7, Minute: 50, Type: "GOAL", PlayerID: int64Ptr(10), TeamID: int64Ptr(99)},
			wantCounters: []counterCall{{PlayerID: 10, Counter: matchdomain.CounterGoals}},
			wantHome:     1,
			wantAway:     1,
			wantCredited: "none",
			wantTrace:    []string{"GetMatchForUpdate", "InsertEvent", "IncrementPlayerCounter"},
		},
		{
			name:         "goal without team",
			req:          ApplyEventRequest{MatchID: 7, Minute: 50, Type: "GOAL"},
			wantHome:     1,
			wantAway:     1,
			wantCredited: "none",
			wantTrace:    []string{"GetMatchForUpdate", "InsertEvent"},
		},
		{
			name:         "yellow card",
			req:          ApplyEventRequest{MatchID: 7, Minute: 0, Type: "YELLOW", PlayerID: int64Ptr(11), TeamID: int64Ptr(2)},
			wantCounters: []counterCall{{PlayerID: 11, Counter: matchdomain.CounterYellowCards}},
			wantHome:     1,
			wantAway:     1,
			wantTrace:    []string{"GetMatchForUpdate", "InsertEvent", "IncrementPlayerCounter"},
		},
		{
			name:         "red card at the last minute",
			req:          ApplyEventRequest{MatchID: 7, Minute: 130, Type: "RED", PlayerID: int64Ptr(11)},
			wantCounters: []counterCall{{PlayerID: 11, Counter: matchdomain.CounterRedCards}},
			wantHome:     1,
			wantAway:     1,
			wantTrace:    []string{"GetMatchForUpdate", "InsertEvent", "IncrementPlayerCounter"},
		},
		{
			name:      "assist changes nothing",
			req:       ApplyEventRequest{MatchID: 7, Minute: 12, Type: "ASSIST", PlayerID: int64Ptr(12), TeamID: int64Ptr(1)},
			wantHome:  1,
			wantAway:  1,
			wantTrace: []string{"GetMatchForUpdate", "InsertEvent"},
		},
		{
			name:      "substitution changes nothing",
			req:       ApplyEventRequest{MatchID: 7, Minute: 60, Type: "SUB", PlayerID: int64Ptr(12), TeamID: int64Ptr(1)},
			wantHome:  1,
			wantAway:  1,
			wantTrace: []string{"GetMatchForUpdate", "InsertEvent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeMatchRepo().WithMatch(derby(matchdomain.StatusInPlay, 1, 1))
			metrics := &recordingMetrics{}
			svc := newTestService(repo, metrics)

			applied, err := svc.ApplyEvent(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTrace, repo.Trace())
			assert.Equal(t, tt.wantScores, repo.ScoreCalls)
			assert.Equal(t, tt.wantCounters, repo.CounterCalls)
			assert.Equal(t, tt.wantHome, applied.HomeScore)
			assert.Equal(t, tt.wantAway, applied.AwayScore)
			assert.Equal(t, tt.wantCredited, applied.CreditedSide)
			assert.Equal(t, int64(1), applied.EventID)
			assert.Equal(t, applied.EventID, applied.Event.ID)
			require.Len(t, repo.Inserted, 1)
			assert.Equal(t, tt.req.Minute, repo.Inserted[0].Minute)

			assert.Len(t, metrics.events, 1)
			if tt.wantCredited != "" {
				assert.Equal(t, []string{tt.wantCredited}, metrics.goals)
			} else {
				assert.Empty(t, metrics.goals)
			}
		})
	}
}

func TestApplyEventRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  ApplyEventRequest
	}{
		{name: "unknown type", req: ApplyEventRequest{MatchID: 7, Minute: 10, Type: "PENALTY"}},
		{name: "negative minute", req: ApplyEventRequest{MatchID: 7, Minute: -1, Type: "GOAL"}},
		{name: "minute past extra time", req: ApplyEventRequest{MatchID: 7, Minute: 131, Type: "GOAL"}},
		{name: "missing match", req: ApplyEventRequest{Minute: 10, Type: "GOAL"}},
		{name: "NUL in notes", req: ApplyEventRequest{MatchID: 7, Minute: 10, Type: "GOAL", Notes: strPtr("near\x00post")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeMatchRepo().WithMatch(derby(matchdomain.StatusInPlay, 0, 0))
			metrics := &recordingMetrics{}
			svc := newTestService(repo, metrics)

			applied, err := svc.ApplyEvent(context.Background(), tt.req)

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Nil(t, applied)
			assert.Empty(t, repo.Trace())
			assert.Empty(t, metrics.events)
		})
	}
}

func TestApplyEventFailures(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name      string
		req       ApplyEventRequest
		setupRepo func(*FakeMatchRepo)
		wantErrIs error
		wantTrace []string
	}{
		{
			name:      "unknown match",
			req:       ApplyEventRequest{MatchID: 8, Minute: 10, Type: "GOAL", TeamID: int64Ptr(1)},
			wantErrIs: apperrors.ErrNotFound,
			wantTrace: []string{"GetMatchForUpdate"},
		},
		{
			name: "unknown player",
			req:  ApplyEventRequest{MatchID: 7, Minute: 10, Type: "GOAL", PlayerID: int64Ptr(404), TeamID: int64Ptr(1)},
			setupRepo: func(f *FakeMatchRepo) {
				f.InsertEventFunc = func(ctx context.Context, db bun.IDB, e *matchdb.MatchEvent) error {
					return fmt.Errorf("player or team %w", apperrors.ErrNotFound)
				}
			},
			wantErrIs: apperrors.ErrNotFound,
			wantTrace: []string{"GetMatchForUpdate", "InsertEvent"},
		},
		{
			name: "counter update fails",
			req:  ApplyEventRequest{MatchID: 7, Minute: 10, Type: "GOAL", PlayerID: int64Ptr(10), TeamID: int64Ptr(1)},
			setupRepo: func(f *FakeMatchRepo) {
				f.IncrementPlayerCounterFunc = func(ctx context.Context, db bun.IDB, playerID int64, counter matchdomain.Counter) error {
					return boom
				}
			},
			wantErrIs: boom,
			wantTrace: []string{"GetMatchForUpdate", "InsertEvent", "IncrementScore", "IncrementPlayerCounter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeMatchRepo().WithMatch(derby(matchdomain.StatusInPlay, 0, 0))
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}
			metrics := &recordingMetrics{}
			svc := newTestService(repo, metrics)

			applied, err := svc.ApplyEvent(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErrIs)
			assert.Nil(t, applied)
			assert.Equal(t, tt.wantTrace, repo.Trace())
			assert.Empty(t, metrics.events)
		})
	}
}

func TestApplyEventSequenceMatchesReplay(t *testing.T) {
	stored := derby(matchdomain.StatusInPlay, 0, 0)
	repo := NewFakeMatchRepo()
	repo.GetMatchForUpdateFunc = func(ctx context.Context, db bun.IDB, id int64) (*matchdb.Match, error) {
		cp := stored
		return &cp, nil
	}
	repo.GetMatchFunc = repo.GetMatchForUpdateFunc
	repo.IncrementScoreFunc = func(ctx context.Context, db bun.IDB, matchID int64, home, away int) error {
		stored.HomeScore += home
		stored.AwayScore += away
		return nil
	}
	repo.ListEventsFunc = func(ctx context.Context, db bun.IDB, matchID int64) ([]matchdb.MatchEvent, error) {
		return repo.Inserted, nil
	}
	svc := newTestService(repo, nil)

	for _, req := range []ApplyEventRequest{
		{MatchID: 7, Minute: 5, Type: "GOAL", TeamID: int64Ptr(1)},
		{MatchID: 7, Minute: 20, Type: "OWN_GOAL", TeamID: int64Ptr(2)},
		{MatchID: 7, Minute: 44, Type: "YELLOW", TeamID: int64Ptr(2)},
		{MatchID: 7, Minute: 70, Type: "GOAL", TeamID: int64Ptr(2)},
		{MatchID: 7, Minute: 88, Type: "OWN_GOAL", TeamID: int64Ptr(1)},
	} {
		_, err := svc.ApplyEvent(context.Background(), req)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, stored.HomeScore)
	assert.Equal(t, 2, stored.AwayScore)

	audit, err := svc.AuditScore(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, audit.Consistent)
	assert.Equal(t, 5, audit.Events)
}

func TestAuditScoreDetectsDrift(t *testing.T) {
	repo := NewFakeMatchRepo().WithMatch(derby(matchdomain.StatusFinished, 3, 0))
	repo.ListEventsFunc = func(ctx context.Context, db bun.IDB, matchID int64) ([]matchdb.MatchEvent, error) {
		return []matchdb.MatchEvent{
			{ID: 1, MatchID: 7, Minute: 10, Type: "GOAL", TeamID: int64Ptr(1)},
			{ID: 2, MatchID: 7, Minute: 15, Type: "ASSIST", TeamID: int64Ptr(1)},
		}, nil
	}
	svc := newTestService(repo, nil)

	audit, err := svc.AuditScore(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, &ScoreAudit{
		MatchID:      7,
		StoredHome:   3,
		StoredAway:   0,
		ReplayedHome: 1,
		ReplayedAway: 0,
		Events:       2,
		Consistent:   false,
	}, audit)
	assert.Equal(t, []string{"GetMatch", "ListEvents"}, repo.Trace())
}

func TestListEvents(t *testing.T) {
	svc := newTestService(NewFakeMatchRepo(), nil)
	_, err := svc.ListEvents(context.Background(), 7)
	assert.ErrorIs(t, err, matchdb.ErrMatchNotFound)

	repo := NewFakeMatchRepo().WithMatch(derby(matchdomain.StatusScheduled, 0, 0))
	events, err := newTestService(repo, nil).ListEvents(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestAdvanceStatus(t *testing.T) {
	tests := []struct {
		name      string
		from      matchdomain.Status
		to        string
		wantErrIs error
		wantTrace []string
	}{
		{name: "scheduled to in play", from: matchdomain.StatusScheduled, to: "IN_PLAY", wantTrace: []string{"GetMatchForUpdate", "UpdateStatus"}},
		{name: "scheduled straight to finished", from: matchdomain.StatusScheduled, to: "finished", wantTrace: []string{"GetMatchForUpdate", "UpdateStatus"}},
		{name: "in play to finished", from: matchdomain.StatusInPlay, to: "FINISHED", wantTrace: []string{"GetMatchForUpdate", "UpdateStatus"}},
		{name: "finished back to in play", from: matchdomain.StatusFinished, to: "IN_PLAY", wantErrIs: apperrors.ErrConstraintViolation, wantTrace: []string{"GetMatchForUpdate"}},
		{name: "same status", from: matchdomain.StatusInPlay, to: "IN_PLAY", wantErrIs: apperrors.ErrConstraintViolation, wantTrace: []string{"GetMatchForUpdate"}},
		{name: "unknown status", from: matchdomain.StatusScheduled, to: "POSTPONED", wantErrIs: apperrors.ErrValidation, wantTrace: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeMatchRepo().WithMatch(derby(tt.from, 0, 0))
			svc := newTestService(repo, nil)

			match, err := svc.AdvanceStatus(context.Background(), 7, tt.to)

			assert.Equal(t, tt.wantTrace, repo.Trace())
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Nil(t, match)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, repo.StatusCalls[0], matchdomain.Status(match.Status))
		})
	}
}

func TestKickOff(t *testing.T) {
	kickoff := testNow.Add(2 * time.Hour)

	tests := []struct {
		name        string
		match       *matchdb.Match
		scheduledAt time.Time
		want        bool
		wantTrace   []string
	}{
		{
			name:        "starts a scheduled match",
			match:       func() *matchdb.Match { m := derby(matchdomain.StatusScheduled, 0, 0); return &m }(),
			scheduledAt: kickoff,
			want:        true,
			wantTrace:   []string{"GetMatchForUpdate", "UpdateStatus"},
		},
		{
			name:        "already started by hand",
			match:       func() *matchdb.Match { m := derby(matchdomain.StatusInPlay, 0, 0); return &m }(),
			scheduledAt: kickoff,
			wantTrace:   []string{"GetMatchForUpdate"},
		},
		{
			name:        "rescheduled since the job was queued",
			match:       func() *matchdb.Match { m := derby(matchdomain.StatusScheduled, 0, 0); return &m }(),
			scheduledAt: kickoff.Add(-time.Hour),
			wantTrace:   []string{"GetMatchForUpdate"},
		},
		{
			name:        "deleted match",
			scheduledAt: kickoff,
			wantTrace:   []string{"GetMatchForUpdate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeMatchRepo()
			if tt.match != nil {
				repo.WithMatch(*tt.match)
			}
			svc := newTestService(repo, nil)

			started, err := svc.KickOff(context.Background(), 7, tt.scheduledAt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, started)
			assert.Equal(t, tt.wantTrace, repo.Trace())
		})
	}
}

func TestCreateMatch(t *testing.T) {
	at := time.Date(2026, 10, 20, 18, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	tests := []struct {
		name          string
		req           CreateMatchRequest
		wantErrIs     error
		wantKickoff   time.Time
		wantScheduled bool
		wantTrace     []string
	}{
		{
			name:          "explicit kickoff is stored in UTC",
			req:           CreateMatchRequest{HomeTeamID: 1, AwayTeamID: 2, ScheduledAt: &at, Venue: strPtr(" Riverside ")},
			wantKickoff:   time.Date(2026, 10, 20, 16, 0, 0, 0, time.UTC),
			wantScheduled: true,
			wantTrace:     []string{"CreateMatch"},
		},
		{
			name:          "free text kickoff",
			req:           CreateMatchRequest{HomeTeamID: 1, AwayTeamID: 2, ScheduledAtText: strPtr("tomorrow at 3pm")},
			wantKickoff:   time.Date(2026, 10, 15, 15, 0, 0, 0, time.UTC),
			wantScheduled: true,
			wantTrace:     []string{"CreateMatch"},
		},
		{
			name:        "past kickoff is stored but not queued",
			req:         CreateMatchRequest{HomeTeamID: 1, AwayTeamID: 2, ScheduledAt: func() *time.Time { t := testNow.Add(-48 * time.Hour); return &t }()},
			wantKickoff: testNow.Add(-48 * time.Hour),
			wantTrace:   []string{"CreateMatch"},
		},
		{
			name:      "team plays itself",
			req:       CreateMatchRequest{HomeTeamID: 1, AwayTeamID: 1, ScheduledAt: &at},
			wantErrIs: apperrors.ErrValidation,
			wantTrace: []string{},
		},
		{
			name:      "missing kickoff",
			req:       CreateMatchRequest{HomeTeamID: 1, AwayTeamID: 2},
			wantErrIs: apperrors.ErrValidation,
			wantTrace: []string{},
		},
		{
			name:      "both kickoff forms",
			req:       CreateMatchRequest{HomeTeamID: 1, AwayTeamID: 2, ScheduledAt: &at, ScheduledAtText: strPtr("tomorrow at 3pm")},
			wantErrIs: apperrors.ErrValidation,
			wantTrace: []string{},
		},
		{
			name:      "missing away team",
			req:       CreateMatchRequest{HomeTeamID: 1, ScheduledAt: &at},
			wantErrIs: apperrors.ErrValidation,
			wantTrace: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeMatchRepo()
			scheduler := &FakeScheduler{}
			svc := newTestService(repo, nil)
			svc.SetScheduler(scheduler)

			match, err := svc.CreateMatch(context.Background(), tt.req)

			assert.Equal(t, tt.wantTrace, repo.Trace())
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				assert.Empty(t, scheduler.Scheduled)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantKickoff.Equal(match.ScheduledAt), "kickoff %s", match.ScheduledAt)
			assert.Equal(t, string(matchdomain.StatusScheduled), match.Status)
			if tt.req.Venue != nil {
				assert.Equal(t, "Riverside", *match.Venue)
			}

			at, ok := scheduler.Scheduled[match.ID]
			assert.Equal(t, tt.wantScheduled, ok)
			if ok {
				assert.True(t, at.Equal(match.ScheduledAt))
			}
		})
	}
}

func TestCreateMatchQueuesKickoffAtStoredPrecision(t *testing.T) {
	at := testNow.Add(24*time.Hour + 123456789*time.Nanosecond)
	scheduler := &FakeScheduler{}
	svc := newTestService(NewFakeMatchRepo(), nil)
	svc.SetScheduler(scheduler)

	match, err := svc.CreateMatch(context.Background(), CreateMatchRequest{HomeTeamID: 1, AwayTeamID: 2, ScheduledAt: &at})
	require.NoError(t, err)

	want := testNow.Add(24*time.Hour + 123456*time.Microsecond)
	assert.True(t, want.Equal(match.ScheduledAt), "stored %s", match.ScheduledAt)
	assert.True(t, want.Equal(scheduler.Scheduled[match.ID]), "queued %s", scheduler.Scheduled[match.ID])
}

func TestCreateMatchSchedulerFailureIsNotFatal(t *testing.T) {
	at := testNow.Add(24 * time.Hour)
	svc := newTestService(NewFakeMatchRepo(), nil)
	svc.SetScheduler(&FakeScheduler{Err: errors.New("queue unavailable")})

	match, err := svc.CreateMatch(context.Background(), CreateMatchRequest{HomeTeamID: 1, AwayTeamID: 2, ScheduledAt: &at})
	require.NoError(t, err)
	assert.Equal(t, int64(1), match.ID)
}

func TestUpdateMatch(t *testing.T) {
	later := testNow.Add(26 * time.Hour)

	t.Run("reschedules a scheduled match", func(t *testing.T) {
		repo := NewFakeMatchRepo().WithMatch(derby(matchdomain.StatusScheduled, 0, 0))
		scheduler := &FakeScheduler{}
		svc := newTestService(repo, nil)
		svc.SetScheduler(scheduler)

		match, err := svc.UpdateMatch(context.Background(), 7, UpdateMatchRequest{ScheduledAt: &later, Referee: strPtr("A. Official")})
		require.NoError(t, err)
		assert.True(t, later.Equal(match.ScheduledAt))
		assert.Equal(t, "A. Official", *match.Referee)
		assert.Equal(t, []string{"GetMatchForUpdate", "UpdateMatch"}, repo.Trace())
		assert.True(t, later.Equal(scheduler.Scheduled[7]))
	})

	t.Run("venue change does not requeue", func(t *testing.T) {
		repo := NewFakeMatchRepo().WithMatch(derby(matchdomain.StatusScheduled, 0, 0))
		scheduler := &FakeScheduler{}
		svc := newTestService(repo, nil)
		svc.SetScheduler(scheduler)

		_, err := svc.UpdateMatch(context.Background(), 7, UpdateMatchRequest{Venue: strPtr("North Stand")})
		require.NoError(t, err)
		assert.Empty(t, scheduler.Scheduled)
	})

	t.Run("started match cannot be rescheduled", func(t *testing.T) {
		repo := NewFakeMatchRepo().WithMatch(derby(matchdomain.StatusInPlay, 0, 0))
		svc := newTestService(repo, nil)

		_, err := svc.UpdateMatch(context.Background(), 7, UpdateMatchRequest{ScheduledAt: &later})
		assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)
		assert.Equal(t, []string{"GetMatchForUpdate"}, repo.Trace())
	})
}

func TestListMatchesFilters(t *testing.T) {
	repo := NewFakeMatchRepo()
	var got matchdb.MatchFilter
	repo.ListMatchesFunc = func(ctx context.Context, db bun.IDB, filter matchdb.MatchFilter) ([]matchdb.Match, error) {
		got = filter
		return nil, nil
	}
	svc := newTestService(repo, nil)

	matches, err := svc.ListMatches(context.Background(), ListMatchesRequest{CompetitionID: int64Ptr(3), Status: strPtr("finished")})
	require.NoError(t, err)
	assert.NotNil(t, matches)
	require.NotNil(t, got.Status)
	assert.Equal(t, "FINISHED", *got.Status)
	assert.Equal(t, int64(3), *got.CompetitionID)

	_, err = svc.ListMatches(context.Background(), ListMatchesRequest{Status: strPtr("abandoned")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
