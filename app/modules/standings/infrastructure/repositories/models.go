package standingsdb

// TeamRow is a registered team as read for standings.
type TeamRow struct {
	ID   int64  `bun:"id"`
	Name string `bun:"name"`
}

// ResultRow is the final score of a finished match.
type ResultRow struct {
	HomeTeamID int64 `bun:"home_team_id"`
	AwayTeamID int64 `bun:"away_team_id"`
	HomeScore  int   `bun:"home_score"`
	AwayScore  int   `bun:"away_score"`
}
