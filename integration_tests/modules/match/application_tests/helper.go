package matchintegrationtests

import (
	"context"
	"testing"
	"time"

	"github.com/uptrace/bun"

	matchservice "github.com/Black-And-White-Club/football-league/app/modules/match/application"
	matchdb "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories"
	teamdb "github.com/Black-And-White-Club/football-league/app/modules/team/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/integration_tests/testutils"
)

type TestDeps struct {
	Ctx      context.Context
	BunDB    *bun.DB
	DSN      string
	Services testutils.Services
	Env      *testutils.TestEnvironment
}

// fixture is a match between two seeded teams with their squads.
type fixture struct {
	Match    *matchdb.Match
	Home     *teamdb.Team
	Away     *teamdb.Team
	HomeSide []teamdb.Player
	AwaySide []teamdb.Player
}

func SetupTestMatchService(t *testing.T) TestDeps {
	t.Helper()

	env := testutils.GetOrCreateTestEnv(t)
	if err := testutils.CleanupDatabase(env.Ctx, env.DB); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	return TestDeps{
		Ctx:      env.Ctx,
		BunDB:    env.DB,
		DSN:      env.DSN,
		Services: testutils.NewServices(env.DB),
		Env:      env,
	}
}

// seedMatch creates two teams and an IN_PLAY match between them.
func seedMatch(t *testing.T, deps TestDeps, gen *testutils.TestDataGenerator) fixture {
	t.Helper()

	home, homeSide := testutils.SeedTeam(t, deps.Ctx, deps.Services, gen, 3)
	away, awaySide := testutils.SeedTeam(t, deps.Ctx, deps.Services, gen, 3)

	kickoff := time.Now().UTC().Add(-30 * time.Minute).Truncate(time.Second)
	match, err := deps.Services.Matches.CreateMatch(deps.Ctx, matchservice.CreateMatchRequest{
		HomeTeamID:  home.ID,
		AwayTeamID:  away.ID,
		ScheduledAt: &kickoff,
	})
	if err != nil {
		t.Fatalf("Failed to create match: %v", err)
	}
	match, err = deps.Services.Matches.AdvanceStatus(deps.Ctx, match.ID, "IN_PLAY")
	if err != nil {
		t.Fatalf("Failed to start match: %v", err)
	}

	return fixture{Match: match, Home: home, Away: away, HomeSide: homeSide, AwaySide: awaySide}
}

func ptr[T any](v T) *T { return &v }
