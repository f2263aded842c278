package standingsservice

import (
	"bytes"

	standingsdomain "github.com/Black-And-White-Club/football-league/app/modules/standings/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colours of a standings chart.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	Leader     drawing.Color
	Text       drawing.Color
}

// DefaultPalette is a pitch green chart with the leader in gold.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("f7f7f2"),
	Bar:        drawing.ColorFromHex("2d6a4f"),
	Leader:     drawing.ColorFromHex("d4a017"),
	Text:       drawing.ColorFromHex("1b1b1b"),
}

// RenderPointsChart draws one bar per team in table order. An empty table
// gives a single empty bar.
func RenderPointsChart(competition string, rows []standingsdomain.TeamStanding, palette ChartPalette) ([]byte, error) {
	maxPoints := 1
	bars := make([]chart.Value, len(rows))
	for i, r := range rows {
		fill := palette.Bar
		if i == 0 {
			fill = palette.Leader
		}
		bars[i] = chart.Value{
			Label: r.Team,
			Value: float64(r.Points),
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		}
		if r.Points > maxPoints {
			maxPoints = r.Points
		}
	}
	if len(bars) == 0 {
		bars = []chart.Value{{Label: "No teams registered", Value: 0}}
	}

	graph := chart.BarChart{
		Title:      competition,
		TitleStyle: chart.Style{FontColor: palette.Text},
		Width:      160 + 80*len(bars),
		Height:     420,
		BarWidth:   48,
		BarSpacing: 24,
		Background: chart.Style{FillColor: palette.Background, Padding: chart.Box{Top: 48}},
		Canvas:     chart.Style{FillColor: palette.Background},
		XAxis:      chart.Style{FontColor: palette.Text},
		YAxis: chart.YAxis{
			Name:  "Points",
			Style: chart.Style{FontColor: palette.Text},
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxPoints)},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
