package standingshandlers

import (
	"context"

	standingsservice "github.com/Black-And-White-Club/football-league/app/modules/standings/application"
	standingsdomain "github.com/Black-And-White-Club/football-league/app/modules/standings/domain"
)

type FakeService struct {
	ComputeStandingsFunc func(ctx context.Context, competitionID int64) ([]standingsdomain.TeamStanding, error)
	ExportWorkbookFunc   func(ctx context.Context, competitionID int64) ([]byte, error)
}

func (f *FakeService) ComputeStandings(ctx context.Context, competitionID int64) ([]standingsdomain.TeamStanding, error) {
	if f.ComputeStandingsFunc != nil {
		return f.ComputeStandingsFunc(ctx, competitionID)
	}
	return []standingsdomain.TeamStanding{}, nil
}

func (f *FakeService) ExportWorkbook(ctx context.Context, competitionID int64) ([]byte, error) {
	if f.ExportWorkbookFunc != nil {
		return f.ExportWorkbookFunc(ctx, competitionID)
	}
	return []byte("PK"), nil
}

func (f *FakeService) ExportChart(ctx context.Context, competitionID int64) ([]byte, error) {
	return []byte("\x89PNG"), nil
}

var _ standingsservice.Service = (*FakeService)(nil)
