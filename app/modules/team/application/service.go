package teamservice

import (
	"context"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/football-league/app/modules/team/application/parsers"
	teamdb "github.com/Black-And-White-Club/football-league/app/modules/team/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Service manages teams and their squads.
type Service interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*teamdb.Team, error)
	GetTeam(ctx context.Context, id int64) (*teamdb.Team, error)
	ListTeams(ctx context.Context) ([]teamdb.Team, error)
	UpdateTeam(ctx context.Context, id int64, req UpdateTeamRequest) (*teamdb.Team, error)
	DeleteTeam(ctx context.Context, id int64) error

	CreatePlayer(ctx context.Context, teamID int64, req CreatePlayerRequest) (*teamdb.Player, error)
	GetPlayer(ctx context.Context, id int64) (*teamdb.Player, error)
	ListPlayers(ctx context.Context, teamID int64) ([]teamdb.Player, error)
	UpdatePlayer(ctx context.Context, id int64, req UpdatePlayerRequest) (*teamdb.Player, error)
	DeletePlayer(ctx context.Context, id int64) error

	// ImportSquad adds every player of a CSV or XLSX squad sheet, all or nothing.
	ImportSquad(ctx context.Context, teamID int64, filename string, data []byte) ([]teamdb.Player, error)
}

// CreateTeamRequest is the input for CreateTeam.
type CreateTeamRequest struct {
	Name        string  `json:"name"`
	Coach       *string `json:"coach,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty"`
	Stadium     *string `json:"stadium,omitempty"`
}

// UpdateTeamRequest changes only the fields that are set.
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty"`
	Coach       *string `json:"coach,omitempty"`
	FoundedYear *int    `json:"founded_year,omitempty"`
	Stadium     *string `json:"stadium,omitempty"`
}

// CreatePlayerRequest is the input for CreatePlayer.
type CreatePlayerRequest struct {
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	Age         int     `json:"age"`
	Nationality *string `json:"nationality,omitempty"`
}

// UpdatePlayerRequest changes only the fields that are set.
type UpdatePlayerRequest struct {
	Name        *string `json:"name,omitempty"`
	Position    *string `json:"position,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}

// TeamService implements the Service interface.
type TeamService struct {
	repo    teamdb.Repository
	parsers parsers.ParserFactory
	logger  *slog.Logger
	metrics observability.ServiceMetrics
	tracer  trace.Tracer
	db      *bun.DB
	now     func() time.Time
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	repo teamdb.Repository,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *TeamService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamService{
		repo:    repo,
		parsers: parsers.NewFactory(),
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		db:      db,
		now:     time.Now,
	}
}

var _ Service = (*TeamService)(nil)
