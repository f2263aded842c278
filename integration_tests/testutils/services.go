package testutils

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	competitionservice "github.com/Black-And-White-Club/football-league/app/modules/competition/application"
	competitiondb "github.com/Black-And-White-Club/football-league/app/modules/competition/infrastructure/repositories"
	matchservice "github.com/Black-And-White-Club/football-league/app/modules/match/application"
	matchdb "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories"
	standingsservice "github.com/Black-And-White-Club/football-league/app/modules/standings/application"
	standingsdb "github.com/Black-And-White-Club/football-league/app/modules/standings/infrastructure/repositories"
	teamservice "github.com/Black-And-White-Club/football-league/app/modules/team/application"
	teamdb "github.com/Black-And-White-Club/football-league/app/modules/team/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
)

// Services are the module services wired to a real database with no-op
// telemetry.
type Services struct {
	Teams        teamservice.Service
	Competitions competitionservice.Service
	Matches      matchservice.Service
	Standings    standingsservice.Service
}

// NewServices wires every module service to db.
func NewServices(db *bun.DB) Services {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewNoop()
	tracer := noop.NewTracerProvider().Tracer("integration")

	return Services{
		Teams:        teamservice.NewTeamService(teamdb.NewRepository(db), logger, metrics, tracer, db),
		Competitions: competitionservice.NewCompetitionService(competitiondb.NewRepository(db), logger, metrics, tracer, db),
		Matches:      matchservice.NewMatchService(matchdb.NewRepository(db), logger, metrics, tracer, db),
		Standings:    standingsservice.NewStandingsService(standingsdb.NewRepository(db), logger, metrics, tracer),
	}
}

// SeedTeam creates a team with a squad of squadSize players aged 18 to 30.
func SeedTeam(t *testing.T, ctx context.Context, svc Services, gen *TestDataGenerator, squadSize int) (*teamdb.Team, []teamdb.Player) {
	t.Helper()

	team, err := svc.Teams.CreateTeam(ctx, gen.GenerateTeam())
	if err != nil {
		t.Fatalf("failed to create team: %v", err)
	}

	squad := make([]teamdb.Player, 0, squadSize)
	for _, req := range gen.GeneratePlayers(squadSize, 18, 30) {
		p, err := svc.Teams.CreatePlayer(ctx, team.ID, req)
		if err != nil {
			t.Fatalf("failed to create player: %v", err)
		}
		squad = append(squad, *p)
	}
	return team, squad
}

// SeedLeague creates a league and registers teamCount freshly seeded teams.
func SeedLeague(t *testing.T, ctx context.Context, svc Services, gen *TestDataGenerator, teamCount int) (*competitiondb.Competition, []*teamdb.Team) {
	t.Helper()

	league, err := svc.Competitions.CreateCompetition(ctx, gen.GenerateLeague(2, 5))
	if err != nil {
		t.Fatalf("failed to create league: %v", err)
	}

	teams := make([]*teamdb.Team, 0, teamCount)
	for i := 0; i < teamCount; i++ {
		team, _ := SeedTeam(t, ctx, svc, gen, 3)
		if _, err := svc.Competitions.RegisterTeam(ctx, league.ID, team.ID); err != nil {
			t.Fatalf("failed to register team %d: %v", team.ID, err)
		}
		teams = append(teams, team)
	}
	return league, teams
}
