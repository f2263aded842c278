package standingsservice

import (
	"context"
	"strconv"

	standingsdomain "github.com/Black-And-White-Club/football-league/app/modules/standings/domain"
	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/app/shared/results"
)

// table is a computed standings table with the competition it belongs to.
type table struct {
	competition string
	rows        []standingsdomain.TeamStanding
}

// ComputeStandings ranks the registered teams of a competition by their
// finished matches. The two reads are not taken from one snapshot.
func (s *StandingsService) ComputeStandings(ctx context.Context, competitionID int64) ([]standingsdomain.TeamStanding, error) {
	t, err := unwrap[table](withTelemetry(s, ctx, "ComputeStandings", strconv.FormatInt(competitionID, 10), func(ctx context.Context) (results.OperationResult[table, error], error) {
		return s.computeLogic(ctx, competitionID)
	}))
	if err != nil {
		return nil, err
	}
	return t.rows, nil
}

func (s *StandingsService) computeLogic(ctx context.Context, competitionID int64) (results.OperationResult[table, error], error) {
	name, err := s.repo.CompetitionName(ctx, nil, competitionID)
	if err != nil {
		return classify[table](err, "failed to load competition")
	}

	teamRows, err := s.repo.RegisteredTeams(ctx, nil, competitionID)
	if err != nil {
		return classify[table](err, "failed to load registered teams")
	}
	resultRows, err := s.repo.FinishedResults(ctx, nil, competitionID)
	if err != nil {
		return classify[table](err, "failed to load finished matches")
	}

	teams := make([]standingsdomain.Team, len(teamRows))
	for i, t := range teamRows {
		teams[i] = standingsdomain.Team{ID: t.ID, Name: t.Name}
	}
	matches := make([]standingsdomain.Result, len(resultRows))
	for i, r := range resultRows {
		matches[i] = standingsdomain.Result{
			HomeTeamID: r.HomeTeamID,
			AwayTeamID: r.AwayTeamID,
			HomeScore:  r.HomeScore,
			AwayScore:  r.AwayScore,
		}
	}

	rows := standingsdomain.Compute(teams, matches)

	s.logger.DebugContext(ctx, "Standings computed",
		attr.ExtractCorrelationID(ctx),
		attr.CompetitionID(competitionID),
		attr.Int("teams", len(rows)),
		attr.Int("finished_matches", len(matches)),
	)
	return results.SuccessResult[table, error](table{competition: name, rows: rows}), nil
}

// ExportWorkbook renders the current standings as an XLSX workbook.
func (s *StandingsService) ExportWorkbook(ctx context.Context, competitionID int64) ([]byte, error) {
	return unwrap[[]byte](withTelemetry(s, ctx, "ExportWorkbook", strconv.FormatInt(competitionID, 10), func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		t, err := unwrap[table](s.computeLogic(ctx, competitionID))
		if err != nil {
			return classify[[]byte](err, "failed to compute standings")
		}
		body, err := RenderWorkbook(t.competition, t.rows)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		return results.SuccessResult[[]byte, error](body), nil
	}))
}

// ExportChart renders the current standings as a PNG points chart.
func (s *StandingsService) ExportChart(ctx context.Context, competitionID int64) ([]byte, error) {
	return unwrap[[]byte](withTelemetry(s, ctx, "ExportChart", strconv.FormatInt(competitionID, 10), func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		t, err := unwrap[table](s.computeLogic(ctx, competitionID))
		if err != nil {
			return classify[[]byte](err, "failed to compute standings")
		}
		body, err := RenderPointsChart(t.competition, t.rows, DefaultPalette)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		return results.SuccessResult[[]byte, error](body), nil
	}))
}
