package competitiondb

import (
	"time"

	"github.com/uptrace/bun"
)

// Competition is a league or tournament with squad rules.
type Competition struct {
	bun.BaseModel `bun:"table:competitions,alias:c"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Name      string    `bun:"name,notnull,unique" json:"name"`
	Type      string    `bun:"type,notnull" json:"type"`
	MinSquad  int       `bun:"min_squad,notnull" json:"min_squad"`
	MaxSquad  int       `bun:"max_squad,notnull" json:"max_squad"`
	AgeLimit  *int      `bun:"age_limit" json:"age_limit,omitempty"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// Registration enrols a team in a competition. Rows are never updated.
type Registration struct {
	bun.BaseModel `bun:"table:registrations,alias:r"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	TeamID        int64     `bun:"team_id,notnull" json:"team_id"`
	CompetitionID int64     `bun:"competition_id,notnull" json:"competition_id"`
	RegisteredAt  time.Time `bun:"registered_at,notnull,default:current_timestamp" json:"registered_at"`
	TeamName      string    `bun:"team_name,scanonly" json:"team_name,omitempty"`
}
