package matchservice

import (
	"context"
	"log/slog"
	"time"

	matchdomain "github.com/Black-And-White-Club/football-league/app/modules/match/domain"
	matchdb "github.com/Black-And-White-Club/football-league/app/modules/match/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Service manages matches and applies match events.
type Service interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*matchdb.Match, error)
	GetMatch(ctx context.Context, id int64) (*matchdb.Match, error)
	ListMatches(ctx context.Context, filter ListMatchesRequest) ([]matchdb.Match, error)
	UpdateMatch(ctx context.Context, id int64, req UpdateMatchRequest) (*matchdb.Match, error)
	DeleteMatch(ctx context.Context, id int64) error

	// AdvanceStatus moves a match forward through its lifecycle.
	AdvanceStatus(ctx context.Context, id int64, status string) (*matchdb.Match, error)
	// KickOff moves a match still SCHEDULED for scheduledAt to IN_PLAY and
	// reports whether it did.
	KickOff(ctx context.Context, id int64, scheduledAt time.Time) (bool, error)

	// ApplyEvent records an event and applies its score and player effects
	// in one transaction.
	ApplyEvent(ctx context.Context, req ApplyEventRequest) (*AppliedEvent, error)
	ListEvents(ctx context.Context, matchID int64) ([]matchdb.MatchEvent, error)
	// AuditScore replays the event log and compares it with the stored score.
	AuditScore(ctx context.Context, matchID int64) (*ScoreAudit, error)
}

// KickoffScheduler schedules the automatic kickoff of a match.
type KickoffScheduler interface {
	ScheduleKickoff(ctx context.Context, matchID int64, at time.Time) error
}

// CreateMatchRequest is the input for CreateMatch. The kickoff is given either
// as ScheduledAt or as free text in ScheduledAtText, read in TimeZone.
type CreateMatchRequest struct {
	CompetitionID   *int64     `json:"competition_id,omitempty"`
	HomeTeamID      int64      `json:"home_team_id"`
	AwayTeamID      int64      `json:"away_team_id"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	ScheduledAtText *string    `json:"scheduled_at_text,omitempty"`
	TimeZone        string     `json:"time_zone,omitempty"`
	Venue           *string    `json:"venue,omitempty"`
	Referee         *string    `json:"referee,omitempty"`
}

// UpdateMatchRequest changes only the fields that are set. The kickoff can
// only move while the match is SCHEDULED.
type UpdateMatchRequest struct {
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	ScheduledAtText *string    `json:"scheduled_at_text,omitempty"`
	TimeZone        string     `json:"time_zone,omitempty"`
	Venue           *string    `json:"venue,omitempty"`
	Referee         *string    `json:"referee,omitempty"`
}

// ListMatchesRequest filters ListMatches.
type ListMatchesRequest struct {
	CompetitionID *int64
	Status        *string
}

// ApplyEventRequest is one match event as submitted by a caller.
type ApplyEventRequest struct {
	MatchID  int64   `json:"match_id"`
	Minute   int     `json:"minute"`
	Type     string  `json:"type"`
	PlayerID *int64  `json:"player_id,omitempty"`
	TeamID   *int64  `json:"team_id,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// AppliedEvent is the outcome of ApplyEvent.
type AppliedEvent struct {
	EventID   int64 `json:"event_id"`
	MatchID   int64 `json:"match_id"`
	HomeScore int   `json:"home_score"`
	AwayScore int   `json:"away_score"`
	// CreditedSide is the side a goal event scored for, none when the score
	// did not change. Empty for other event types.
	CreditedSide string             `json:"credited_side,omitempty"`
	Event        matchdb.MatchEvent `json:"event"`
}

// ScoreAudit compares a stored score with the one replayed from events.
type ScoreAudit struct {
	MatchID      int64 `json:"match_id"`
	StoredHome   int   `json:"stored_home"`
	StoredAway   int   `json:"stored_away"`
	ReplayedHome int   `json:"replayed_home"`
	ReplayedAway int   `json:"replayed_away"`
	Events       int   `json:"events"`
	Consistent   bool  `json:"consistent"`
}

// MatchService implements the Service interface.
type MatchService struct {
	repo      matchdb.Repository
	logger    *slog.Logger
	metrics   observability.MatchMetrics
	tracer    trace.Tracer
	db        *bun.DB
	kickoff   *matchdomain.KickoffParser
	scheduler KickoffScheduler
	now       func() time.Time
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	repo matchdb.Repository,
	logger *slog.Logger,
	metrics observability.MatchMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
		kickoff: matchdomain.NewKickoffParser(),
		now:     time.Now,
	}
}

// SetScheduler enables automatic kickoffs for matches created afterwards.
// The queue needs the service to run its jobs, so it is attached after both exist.
func (s *MatchService) SetScheduler(scheduler KickoffScheduler) {
	s.scheduler = scheduler
}

var _ Service = (*MatchService)(nil)
