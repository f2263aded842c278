package standingsservice

import (
	"context"
	"log/slog"

	standingsdomain "github.com/Black-And-White-Club/football-league/app/modules/standings/domain"
	standingsdb "github.com/Black-And-White-Club/football-league/app/modules/standings/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/observability"
	"go.opentelemetry.io/otel/trace"
)

// Service derives standings tables. Nothing is cached; every call reads the
// current registrations and finished matches.
type Service interface {
	ComputeStandings(ctx context.Context, competitionID int64) ([]standingsdomain.TeamStanding, error)
	// ExportWorkbook returns the standings as an XLSX workbook.
	ExportWorkbook(ctx context.Context, competitionID int64) ([]byte, error)
	// ExportChart returns a PNG bar chart of points per team.
	ExportChart(ctx context.Context, competitionID int64) ([]byte, error)
}

// StandingsService implements the Service interface.
type StandingsService struct {
	repo    standingsdb.Repository
	logger  *slog.Logger
	metrics observability.ServiceMetrics
	tracer  trace.Tracer
}

// NewStandingsService creates a new StandingsService.
func NewStandingsService(
	repo standingsdb.Repository,
	logger *slog.Logger,
	metrics observability.ServiceMetrics,
	tracer trace.Tracer,
) *StandingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StandingsService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

var _ Service = (*StandingsService)(nil)
