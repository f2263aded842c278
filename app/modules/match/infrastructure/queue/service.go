package matchqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Service schedules automatic kickoffs with River.
type Service struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	metrics observability.ServiceMetrics
}

// NewService connects River to the database at dsn. The river tables must
// exist; they are created by the migrate command.
func NewService(ctx context.Context, dsn string, maxWorkers int, logger *slog.Logger, metrics observability.ServiceMetrics, kickoffer Kickoffer) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("operation", "new_match_queue_service"),
		attr.String("component", "river_queue"),
	)

	start := time.Now()
	metrics.RecordOperationAttempt(ctx, "initialize_service", "river")

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		metrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		metrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		ctxLogger.Error("Failed to ping database for River", attr.Error(err))
		metrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewKickoffWorker(ctxLogger, kickoffer))

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 10},
			QueueName:          {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  logger,
	})
	if err != nil {
		pool.Close()
		ctxLogger.Error("Failed to create River client", attr.Error(err))
		metrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	metrics.RecordOperationSuccess(ctx, "initialize_service", "river")
	metrics.RecordOperationDuration(ctx, "initialize_service", "river", time.Since(start))
	ctxLogger.Info("Match queue service initialized")

	return &Service{client: client, pool: pool, logger: ctxLogger, metrics: metrics}, nil
}

// Start starts the River workers.
func (s *Service) Start(ctx context.Context) error {
	s.metrics.RecordOperationAttempt(ctx, "start_service", "river")
	if err := s.client.Start(ctx); err != nil {
		s.metrics.RecordOperationFailure(ctx, "start_service", "river")
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.metrics.RecordOperationSuccess(ctx, "start_service", "river")
	s.logger.Info("Match queue service started")
	return nil
}

// Stop waits for running jobs, then releases the pool.
func (s *Service) Stop(ctx context.Context) error {
	s.metrics.RecordOperationAttempt(ctx, "stop_service", "river")
	defer s.pool.Close()

	if err := s.client.Stop(ctx); err != nil {
		s.logger.Error("Failed to stop River client", attr.Error(err))
		s.metrics.RecordOperationFailure(ctx, "stop_service", "river")
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.metrics.RecordOperationSuccess(ctx, "stop_service", "river")
	s.logger.Info("Match queue service stopped")
	return nil
}

// ScheduleKickoff queues the kickoff of a match. Scheduling the same match and
// time twice inserts one job.
func (s *Service) ScheduleKickoff(ctx context.Context, matchID int64, at time.Time) error {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "schedule_kickoff", "river")

	res, err := s.client.Insert(ctx, KickoffJob{MatchID: matchID, ScheduledAt: at.UTC()}, &river.InsertOpts{
		Queue:       QueueName,
		ScheduledAt: at,
		UniqueOpts:  river.UniqueOpts{ByArgs: true},
	})
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "schedule_kickoff", "river")
		return fmt.Errorf("failed to schedule kickoff job: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "schedule_kickoff", "river")
	s.metrics.RecordOperationDuration(ctx, "schedule_kickoff", "river", time.Since(start))
	s.logger.InfoContext(ctx, "Kickoff job scheduled",
		attr.ExtractCorrelationID(ctx),
		attr.MatchID(matchID),
		attr.Time("scheduled_at", at),
		attr.Int64("job_id", res.Job.ID),
		attr.Bool("duplicate", res.UniqueSkippedAsDuplicate),
	)
	return nil
}

// HealthCheck pings the queue's connection pool.
func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("queue service health check failed: %w", err)
	}
	return nil
}
