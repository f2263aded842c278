package matchqueue

import "time"

// KickoffJob starts a match at its scheduled time. ScheduledAt is part of
// the unique args so a rescheduled match gets a new job and the old one
// finds the times no longer agree.
type KickoffJob struct {
	MatchID     int64     `json:"match_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// Kind returns the job type identifier for River
func (KickoffJob) Kind() string { return "match_kickoff" }

// QueueName is the dedicated River queue for match jobs.
const QueueName = "match"
