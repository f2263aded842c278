package teamservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	teamdomain "github.com/Black-And-White-Club/football-league/app/modules/team/domain"
	teamdb "github.com/Black-And-White-Club/football-league/app/modules/team/infrastructure/repositories"
	"github.com/Black-And-White-Club/football-league/app/shared/apperrors"
	"github.com/Black-And-White-Club/football-league/app/shared/attr"
	"github.com/Black-And-White-Club/football-league/app/shared/results"
	"github.com/uptrace/bun"
)

// CreatePlayer adds one player to a team's squad.
func (s *TeamService) CreatePlayer(ctx context.Context, teamID int64, req CreatePlayerRequest) (*teamdb.Player, error) {
	return unwrap[*teamdb.Player](withTelemetry(s, ctx, "CreatePlayer", strconv.FormatInt(teamID, 10), func(ctx context.Context) (results.OperationResult[*teamdb.Player, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*teamdb.Player, error], error) {
			player, err := newPlayer(teamID, req)
			if err != nil {
				return results.FailureResult[*teamdb.Player, error](err), nil
			}
			if _, err := s.repo.GetTeam(ctx, db, teamID); err != nil {
				return classify[*teamdb.Player](err, "failed to load team")
			}
			if err := s.repo.CreatePlayers(ctx, db, []*teamdb.Player{player}); err != nil {
				return classify[*teamdb.Player](err, "failed to create player")
			}
			return results.SuccessResult[*teamdb.Player, error](player), nil
		})
	}))
}

// GetPlayer returns one player with their cumulative counters.
func (s *TeamService) GetPlayer(ctx context.Context, id int64) (*teamdb.Player, error) {
	return unwrap[*teamdb.Player](withTelemetry(s, ctx, "GetPlayer", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*teamdb.Player, error], error) {
		player, err := s.repo.GetPlayer(ctx, nil, id)
		if err != nil {
			return classify[*teamdb.Player](err, "failed to get player")
		}
		return results.SuccessResult[*teamdb.Player, error](player), nil
	}))
}

// ListPlayers returns the squad of a team.
func (s *TeamService) ListPlayers(ctx context.Context, teamID int64) ([]teamdb.Player, error) {
	return unwrap[[]teamdb.Player](withTelemetry(s, ctx, "ListPlayers", strconv.FormatInt(teamID, 10), func(ctx context.Context) (results.OperationResult[[]teamdb.Player, error], error) {
		if _, err := s.repo.GetTeam(ctx, nil, teamID); err != nil {
			return classify[[]teamdb.Player](err, "failed to load team")
		}
		players, err := s.repo.ListPlayers(ctx, nil, teamID)
		if err != nil {
			return classify[[]teamdb.Player](err, "failed to list players")
		}
		if players == nil {
			players = []teamdb.Player{}
		}
		return results.SuccessResult[[]teamdb.Player, error](players), nil
	}))
}

// UpdatePlayer edits the profile fields of a player. Statistics are not editable.
func (s *TeamService) UpdatePlayer(ctx context.Context, id int64, req UpdatePlayerRequest) (*teamdb.Player, error) {
	return unwrap[*teamdb.Player](withTelemetry(s, ctx, "UpdatePlayer", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[*teamdb.Player, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*teamdb.Player, error], error) {
			return s.updatePlayerLogic(ctx, db, id, req)
		})
	}))
}

func (s *TeamService) updatePlayerLogic(ctx context.Context, db bun.IDB, id int64, req UpdatePlayerRequest) (results.OperationResult[*teamdb.Player, error], error) {
	if err := teamdomain.ValidateOptionalName("name", req.Name); err != nil {
		return results.FailureResult[*teamdb.Player, error](err), nil
	}
	var position teamdomain.Position
	if req.Position != nil {
		p, err := teamdomain.ParsePosition(*req.Position)
		if err != nil {
			return results.FailureResult[*teamdb.Player, error](err), nil
		}
		position = p
	}
	if req.Age != nil {
		if err := teamdomain.ValidateAge(*req.Age); err != nil {
			return results.FailureResult[*teamdb.Player, error](err), nil
		}
	}

	player, err := s.repo.GetPlayer(ctx, db, id)
	if err != nil {
		return classify[*teamdb.Player](err, "failed to load player")
	}

	if req.Name != nil {
		player.Name = strings.TrimSpace(*req.Name)
	}
	if req.Position != nil {
		player.Position = string(position)
	}
	if req.Age != nil {
		player.Age = *req.Age
	}
	if req.Nationality != nil {
		player.Nationality = trimmed(req.Nationality)
	}

	if err := s.repo.UpdatePlayer(ctx, db, player); err != nil {
		return classify[*teamdb.Player](err, "failed to update player")
	}
	return results.SuccessResult[*teamdb.Player, error](player), nil
}

// DeletePlayer removes a player. Past match events keep their row with the player reference cleared.
func (s *TeamService) DeletePlayer(ctx context.Context, id int64) error {
	_, err := unwrap[struct{}](withTelemetry(s, ctx, "DeletePlayer", strconv.FormatInt(id, 10), func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.DeletePlayer(ctx, nil, id); err != nil {
			return classify[struct{}](err, "failed to delete player")
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	}))
	return err
}

// ImportSquad parses a squad sheet and inserts every row in one transaction.
// Any invalid row rejects the whole sheet.
func (s *TeamService) ImportSquad(ctx context.Context, teamID int64, filename string, data []byte) ([]teamdb.Player, error) {
	return unwrap[[]teamdb.Player](withTelemetry(s, ctx, "ImportSquad", strconv.FormatInt(teamID, 10), func(ctx context.Context) (results.OperationResult[[]teamdb.Player, error], error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[[]teamdb.Player, error], error) {
			return s.importSquadLogic(ctx, db, teamID, filename, data)
		})
	}))
}

func (s *TeamService) importSquadLogic(ctx context.Context, db bun.IDB, teamID int64, filename string, data []byte) (results.OperationResult[[]teamdb.Player, error], error) {
	parser, err := s.parsers.GetParser(filename)
	if err != nil {
		return results.FailureResult[[]teamdb.Player, error](apperrors.Validation("%v", err)), nil
	}
	rows, err := parser.Parse(data)
	if err != nil {
		return results.FailureResult[[]teamdb.Player, error](apperrors.Validation("%v", err)), nil
	}

	players := make([]*teamdb.Player, 0, len(rows))
	for _, row := range rows {
		age, convErr := strconv.Atoi(row.Age)
		if convErr != nil {
			return results.FailureResult[[]teamdb.Player, error](apperrors.Validation("row %d: age %q is not a number", row.Line, row.Age)), nil
		}
		req := CreatePlayerRequest{Name: row.Name, Position: row.Position, Age: age}
		if row.Nationality != "" {
			nationality := row.Nationality
			req.Nationality = &nationality
		}
		player, err := newPlayer(teamID, req)
		if err != nil {
			return results.FailureResult[[]teamdb.Player, error](fmt.Errorf("row %d: %w", row.Line, err)), nil
		}
		players = append(players, player)
	}

	if _, err := s.repo.GetTeam(ctx, db, teamID); err != nil {
		return classify[[]teamdb.Player](err, "failed to load team")
	}
	if err := s.repo.CreatePlayers(ctx, db, players); err != nil {
		return classify[[]teamdb.Player](err, "failed to import squad")
	}

	s.logger.InfoContext(ctx, "Squad imported",
		attr.ExtractCorrelationID(ctx),
		attr.TeamID(teamID),
		attr.Int("players", len(players)),
	)

	out := make([]teamdb.Player, len(players))
	for i, p := range players {
		out[i] = *p
	}
	return results.SuccessResult[[]teamdb.Player, error](out), nil
}

// newPlayer validates req and builds the row to insert.
func newPlayer(teamID int64, req CreatePlayerRequest) (*teamdb.Player, error) {
	if err := teamdomain.ValidateName("name", req.Name); err != nil {
		return nil, err
	}
	position, err := teamdomain.ParsePosition(req.Position)
	if err != nil {
		return nil, err
	}
	if err := teamdomain.ValidateAge(req.Age); err != nil {
		return nil, err
	}
	return &teamdb.Player{
		TeamID:      teamID,
		Name:        strings.TrimSpace(req.Name),
		Position:    string(position),
		Age:         req.Age,
		Nationality: trimmed(req.Nationality),
	}, nil
}
