package standingsdomain

import (
	"sort"
	"strings"
)

// Points awarded per result.
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// Team is a team registered for the competition.
type Team struct {
	ID   int64
	Name string
}

// Result is the final score of a finished match.
type Result struct {
	HomeTeamID int64
	AwayTeamID int64
	HomeScore  int
	AwayScore  int
}

// TeamStanding is one row of a standings table.
type TeamStanding struct {
	TeamID       int64  `json:"team_id"`
	Team         string `json:"team"`
	Played       int    `json:"P"`
	Won          int    `json:"W"`
	Drawn        int    `json:"D"`
	Lost         int    `json:"L"`
	GoalsFor     int    `json:"GF"`
	GoalsAgainst int    `json:"GA"`
	GoalDiff     int    `json:"GD"`
	Points       int    `json:"PTS"`
}

// Compute builds the ranked table for the registered teams. Every team gets
// a row, played or not. A result involving a team that is not registered is
// skipped entirely. Rows are ordered by points, goal difference and goals
// scored, all descending, then by team name.
func Compute(teams []Team, results []Result) []TeamStanding {
	seen := make(map[int64]bool, len(teams))
	table := make([]TeamStanding, 0, len(teams))
	for _, t := range teams {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		table = append(table, TeamStanding{TeamID: t.ID, Team: t.Name})
	}

	rows := make(map[int64]*TeamStanding, len(table))
	for i := range table {
		rows[table[i].TeamID] = &table[i]
	}

	for _, r := range results {
		home, okHome := rows[r.HomeTeamID]
		away, okAway := rows[r.AwayTeamID]
		if !okHome || !okAway {
			continue
		}
		home.record(r.HomeScore, r.AwayScore)
		away.record(r.AwayScore, r.HomeScore)
	}

	sort.SliceStable(table, func(i, j int) bool {
		return Less(table[i], table[j])
	})
	return table
}

// Less reports whether a ranks above b.
func Less(a, b TeamStanding) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDiff != b.GoalDiff {
		return a.GoalDiff > b.GoalDiff
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	return strings.Compare(a.Team, b.Team) < 0
}

func (s *TeamStanding) record(scored, conceded int) {
	s.Played++
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	s.GoalDiff = s.GoalsFor - s.GoalsAgainst
	switch {
	case scored > conceded:
		s.Won++
		s.Points += PointsWin
	case scored == conceded:
		s.Drawn++
		s.Points += PointsDraw
	default:
		s.Lost++
		s.Points += PointsLoss
	}
}
