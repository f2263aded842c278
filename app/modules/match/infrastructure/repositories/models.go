package matchdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Match is a fixture between two distinct teams, optionally within a competition.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	CompetitionID *int64    `bun:"competition_id" json:"competition_id,omitempty"`
	HomeTeamID    int64     `bun:"home_team_id,notnull" json:"home_team_id"`
	AwayTeamID    int64     `bun:"away_team_id,notnull" json:"away_team_id"`
	ScheduledAt   time.Time `bun:"scheduled_at,notnull" json:"scheduled_at"`
	Venue         *string   `bun:"venue" json:"venue,omitempty"`
	Referee       *string   `bun:"referee" json:"referee,omitempty"`
	Status        string    `bun:"status,notnull,default:'SCHEDULED'" json:"status"`
	HomeScore     int       `bun:"home_score,notnull,default:0" json:"home_score"`
	AwayScore     int       `bun:"away_score,notnull,default:0" json:"away_score"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// MatchEvent is one entry of a match's append-only event log.
type MatchEvent struct {
	bun.BaseModel `bun:"table:match_events,alias:e"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	MatchID   int64     `bun:"match_id,notnull" json:"match_id"`
	Minute    int       `bun:"minute,notnull" json:"minute"`
	Type      string    `bun:"type,notnull" json:"type"`
	PlayerID  *int64    `bun:"player_id" json:"player_id,omitempty"`
	TeamID    *int64    `bun:"team_id" json:"team_id,omitempty"`
	Notes     *string   `bun:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// MatchFilter narrows ListMatches. Unset fields match everything.
type MatchFilter struct {
	CompetitionID *int64
	Status        *string
}
