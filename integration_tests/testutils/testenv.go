package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/nats"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/football-league/db/bundb"
	"github.com/Black-And-White-Club/football-league/integration_tests/containers"
)

// TestEnvironment holds the containers and connections shared by the tests of
// one package.
type TestEnvironment struct {
	Ctx         context.Context
	cancel      context.CancelFunc
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	DSN         string

	natsOnce      sync.Once
	natsErr       error
	natsContainer *nats.NATSContainer
	natsURL       string
}

var (
	sharedEnv  *TestEnvironment
	sharedErr  error
	sharedOnce sync.Once
)

// GetOrCreateTestEnv returns the package's environment, starting Postgres and
// running the migrations on first use. Tests are skipped under -short or when
// containers cannot be started.
func GetOrCreateTestEnv(t *testing.T) *TestEnvironment {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}

	sharedOnce.Do(func() {
		sharedEnv, sharedErr = newTestEnvironment(context.Background())
	})
	if sharedErr != nil {
		t.Skipf("integration environment unavailable: %v", sharedErr)
	}
	return sharedEnv
}

func newTestEnvironment(parent context.Context) (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(parent)

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	db, err := bundb.Open(ctx, dsn, nil, bundb.Options{})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := bundb.MigrateAll(ctx, db); err != nil {
		db.Close()
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{
		Ctx:         ctx,
		cancel:      cancel,
		PgContainer: pgContainer,
		DB:          db,
		DSN:         dsn,
	}, nil
}

// NatsURL starts a JetStream enabled NATS container the first time it is
// called. The test is skipped when the container cannot be started.
func (env *TestEnvironment) NatsURL(t *testing.T) string {
	t.Helper()
	env.natsOnce.Do(func() {
		env.natsContainer, env.natsURL, env.natsErr = containers.SetupNatsContainer(env.Ctx)
	})
	if env.natsErr != nil {
		t.Skipf("nats container unavailable: %v", env.natsErr)
	}
	return env.natsURL
}

// TeardownSharedEnv terminates the containers. Call it from TestMain after
// the tests ran.
func TeardownSharedEnv() {
	if sharedEnv == nil {
		return
	}
	env := sharedEnv
	if err := env.DB.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
	if env.natsContainer != nil {
		if err := env.natsContainer.Terminate(env.Ctx); err != nil {
			log.Printf("Failed to terminate NATS container: %v", err)
		}
	}
	if err := env.PgContainer.Terminate(env.Ctx); err != nil {
		log.Printf("Failed to terminate postgres container: %v", err)
	}
	env.cancel()
}
