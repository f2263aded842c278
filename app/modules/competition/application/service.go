package competitionservice

import (
	"context"
	"log/slog"

	competitiondb "github.com/Black-And-White-Club/football-league/app/modules/competition/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Service manages competitions and team registrations.
type Service interface {
	CreateCompetition(ctx context.Context, req CreateCompetitionRequest) (*competitiondb.Competition, error)
	GetCompetition(ctx context.Context, id int64) (*competitiondb.Competition, error)
	ListCompetitions(ctx context.Context) ([]competitiondb.Competition, error)
	UpdateCompetition(ctx context.Context, id int64, req UpdateCompetitionRequest) (*competitiondb.Competition, error)
	DeleteCompetition(ctx context.Context, id int64) error

	// RegisterTeam enrols a team after checking its squad against the
	// competition rules.
	RegisterTeam(ctx context.Context, competitionID, teamID int64) (*competitiondb.Registration, error)
	ListRegistrations(ctx context.Context, competitionID int64) ([]competitiondb.Registration, error)
}

// CreateCompetitionRequest is the input for CreateCompetition.
type CreateCompetitionRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	MinSquad int    `json:"min_squad"`
	MaxSquad int    `json:"max_squad"`
	AgeLimit *int   `json:"age_limit,omitempty"`
}

// UpdateCompetitionRequest changes only the fields that are set.
// ClearAgeLimit removes the age limit.
type UpdateCompetitionRequest struct {
	Name          *string `json:"name,omitempty"`
	Type          *string `json:"type,omitempty"`
	MinSquad      *int    `json:"min_squad,omitempty"`
	MaxSquad      *int    `json:"max_squad,omitempty"`
	AgeLimit      *int    `json:"age_limit,omitempty"`
	ClearAgeLimit bool    `json:"clear_age_limit,omitempty"`
}

// RegisterTeamRequest is the body of a registration request.
type RegisterTeamRequest struct {
	TeamID int64 `json:"team_id"`
}

// CompetitionService implements the Service interface.
type CompetitionService struct {
	repo    competitiondb.Repository
	logger  *slog.Logger
	metrics observability.ServiceMetrics
	tracer  trace.Tracer
	db      *bun.DB
}

// NewCompetitionService creates a new CompetitionService.
func NewCompetitionService(
	repo competitiondb.Repository,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *CompetitionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompetitionService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
	}
}

var _ Service = (*CompetitionService)(nil)
