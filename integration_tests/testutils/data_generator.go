package testutils

import (
	"fmt"
	"time"

	competitionservice "github.com/Black-And-White-Club/football-league/app/modules/competition/application"
	teamservice "github.com/Black-And-White-Club/football-league/app/modules/team/application"
	"github.com/brianvoe/gofakeit/v7"
)

var positions = []string{"goalkeeper", "defender", "midfielder", "forward"}

// TestDataGenerator creates request payloads for integration tests.
type TestDataGenerator struct {
	faker        *gofakeit.Faker
	seed         int64
	teams        int
	competitions int
}

// NewTestDataGenerator creates a generator, seeded from the clock unless a
// seed is given.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed the generator was created with.
func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// GenerateTeam returns a team request. Names carry a counter so they stay
// unique within one generator.
func (g *TestDataGenerator) GenerateTeam() teamservice.CreateTeamRequest {
	g.teams++
	coach := g.faker.Name()
	stadium := g.faker.City() + " Park"
	founded := g.faker.Number(1870, 2010)
	return teamservice.CreateTeamRequest{
		Name:        fmt.Sprintf("%s FC %d", g.faker.City(), g.teams),
		Coach:       &coach,
		FoundedYear: &founded,
		Stadium:     &stadium,
	}
}

// GeneratePlayers returns count player requests aged between minAge and maxAge.
func (g *TestDataGenerator) GeneratePlayers(count, minAge, maxAge int) []teamservice.CreatePlayerRequest {
	players := make([]teamservice.CreatePlayerRequest, count)
	for i := range players {
		nationality := g.faker.Country()
		players[i] = teamservice.CreatePlayerRequest{
			Name:        g.faker.Name(),
			Position:    positions[g.faker.Number(0, len(positions)-1)],
			Age:         g.faker.Number(minAge, maxAge),
			Nationality: &nationality,
		}
	}
	return players
}

// GenerateLeague returns a league competition request with the given squad
// bounds and no age limit.
func (g *TestDataGenerator) GenerateLeague(minSquad, maxSquad int) competitionservice.CreateCompetitionRequest {
	g.competitions++
	return competitionservice.CreateCompetitionRequest{
		Name:     fmt.Sprintf("%s League %d", g.faker.City(), g.competitions),
		Type:     "league",
		MinSquad: minSquad,
		MaxSquad: maxSquad,
	}
}
