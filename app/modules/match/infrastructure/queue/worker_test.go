package matchqueue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/assert"
)

type fakeKickoffer struct {
	calls   []KickoffJob
	started bool
	err     error
}

func (f *fakeKickoffer) KickOff(ctx context.Context, id int64, scheduledAt time.Time) (bool, error) {
	f.calls = append(f.calls, KickoffJob{MatchID: id, ScheduledAt: scheduledAt})
	return f.started, f.err
}

func TestKickoffWorker(t *testing.T) {
	at := time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		fake    *fakeKickoffer
		wantErr bool
	}{
		{name: "starts match", fake: &fakeKickoffer{started: true}},
		{name: "stale job is acked", fake: &fakeKickoffer{started: false}},
		{name: "database error is retried", fake: &fakeKickoffer{err: errors.New("connection reset")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewKickoffWorker(slog.New(slog.NewTextHandler(io.Discard, nil)), tt.fake)
			job := &river.Job[KickoffJob]{
				JobRow: &rivertype.JobRow{ID: 42},
				Args:   KickoffJob{MatchID: 7, ScheduledAt: at},
			}

			err := w.Work(context.Background(), job)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, []KickoffJob{{MatchID: 7, ScheduledAt: at}}, tt.fake.calls)
		})
	}
}

func TestKickoffJobKind(t *testing.T) {
	assert.Equal(t, "match_kickoff", KickoffJob{}.Kind())
}
