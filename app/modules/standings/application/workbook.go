package standingsservice

import (
	"fmt"

	standingsdomain "github.com/Black-And-White-Club/football-league/app/modules/standings/domain"
	"github.com/xuri/excelize/v2"
)

const workbookSheet = "Standings"

var workbookHeader = []any{"Pos", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "PTS"}

// RenderWorkbook writes the table to a single sheet workbook with a title row
// naming the competition and a header row.
func RenderWorkbook(competition string, rows []standingsdomain.TeamStanding) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", workbookSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetCellValue(workbookSheet, "A1", competition); err != nil {
		return nil, fmt.Errorf("failed to write title: %w", err)
	}
	if err := f.SetSheetRow(workbookSheet, "A2", &workbookHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(workbookSheet, "A1", "J2", bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return nil, err
		}
		values := []any{i + 1, r.Team, r.Played, r.Won, r.Drawn, r.Lost, r.GoalsFor, r.GoalsAgainst, r.GoalDiff, r.Points}
		if err := f.SetSheetRow(workbookSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(workbookSheet, "B", "B", 28); err != nil {
		return nil, fmt.Errorf("failed to size team column: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
