package matchqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/riverqueue/river"
)

// Kickoffer moves a scheduled match into play.
type Kickoffer interface {
	KickOff(ctx context.Context, id int64, scheduledAt time.Time) (bool, error)
}

// KickoffWorker runs KickoffJob.
type KickoffWorker struct {
	river.WorkerDefaults[KickoffJob]
	kickoffer Kickoffer
	logger    *slog.Logger
}

func NewKickoffWorker(logger *slog.Logger, kickoffer Kickoffer) *KickoffWorker {
	return &KickoffWorker{kickoffer: kickoffer, logger: logger}
}

// Work returns errors so River retries the job with backoff.
func (w *KickoffWorker) Work(ctx context.Context, job *river.Job[KickoffJob]) error {
	logger := w.logger.With(
		attr.MatchID(job.Args.MatchID),
		attr.Time("scheduled_at", job.Args.ScheduledAt),
		attr.Int64("job_id", job.ID),
	)

	started, err := w.kickoffer.KickOff(ctx, job.Args.MatchID, job.Args.ScheduledAt)
	if err != nil {
		logger.ErrorContext(ctx, "Kickoff job failed", attr.Error(err))
		return fmt.Errorf("failed to kick off match %d: %w", job.Args.MatchID, err)
	}
	if !started {
		logger.InfoContext(ctx, "Kickoff job skipped, match already moved or rescheduled")
		return nil
	}
	logger.InfoContext(ctx, "Match kicked off by schedule")
	return nil
}
