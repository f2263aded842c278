package competitionintegrationtests

import (
	"context"
	"testing"

	"github.com/Black-And-White-Club/football-league/integration_tests/testutils"
)

type TestDeps struct {
	Ctx      context.Context
	Services testutils.Services
}

func SetupTestCompetitionService(t *testing.T) TestDeps {
	t.Helper()

	env := testutils.GetOrCreateTestEnv(t)
	if err := testutils.CleanupDatabase(env.Ctx, env.DB); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	return TestDeps{
		Ctx:      env.Ctx,
		Services: testutils.NewServices(env.DB),
	}
}
