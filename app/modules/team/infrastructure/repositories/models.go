package teamdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Team is a club entered into competitions.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull,unique" json:"name"`
	Coach       *string   `bun:"coach" json:"coach,omitempty"`
	FoundedYear *int      `bun:"founded_year" json:"founded_year,omitempty"`
	Stadium     *string   `bun:"stadium" json:"stadium,omitempty"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// Player is a squad member. The counters only ever grow and are written by
// match event processing.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	TeamID      int64     `bun:"team_id,notnull" json:"team_id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Position    string    `bun:"position,notnull" json:"position"`
	Age         int       `bun:"age,notnull" json:"age"`
	Nationality *string   `bun:"nationality" json:"nationality,omitempty"`
	Appearances int       `bun:"appearances,notnull,default:0" json:"appearances"`
	Goals       int       `bun:"goals,notnull,default:0" json:"goals"`
	Assists     int       `bun:"assists,notnull,default:0" json:"assists"`
	YellowCards int       `bun:"yellow_cards,notnull,default:0" json:"yellow_cards"`
	RedCards    int       `bun:"red_cards,notnull,default:0" json:"red_cards"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
