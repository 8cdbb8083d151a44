package db

import (
	"context"

	"github.com/D-vidDo/league_manager/model"
)

// DB is the record store the engine runs against. It exposes plain CRUD-style
// operations per collection and no multi-record transactions; multi-step
// updates are sequenced by the controller in a fixed order.
type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	// SavePlayer inserts the player, assigning an id if it does not have
	// one, or updates the existing row.
	SavePlayer(ctx context.Context, p *model.Player) error
	DeletePlayer(ctx context.Context, id string) error
	GetPlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error)
	GetFreeAgents(ctx context.Context) ([]model.Player, error)
	// UpdatePlayerTeam sets the player's team reference, or clears it when
	// teamID is empty.
	UpdatePlayerTeam(ctx context.Context, playerID, teamID string) error
	// AddPlayerStats applies deltas to the player's cumulative plus-minus
	// and games played counters.
	AddPlayerStats(ctx context.Context, playerID string, plusMinusDelta, gamesDelta int) error

	GetTeam(ctx context.Context, id string) (*model.Team, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	SaveTeam(ctx context.Context, t *model.Team) error
	// DeleteTeam releases the team's players into free agency before removing
	// the team row.
	DeleteTeam(ctx context.Context, id string) error
	// AddPlayerToRoster is a no-op if the player is already on the roster;
	// it never creates a duplicate entry.
	AddPlayerToRoster(ctx context.Context, teamID, playerID string) error
	// RemovePlayerFromRoster is a no-op if the player is not on the roster.
	RemovePlayerFromRoster(ctx context.Context, teamID, playerID string) error
	UpdateTeamTotals(ctx context.Context, teamID string, wins, losses, pointsFor, pointsAgainst int) error

	// ListTrades returns the full trade log, most recent first.
	ListTrades(ctx context.Context) ([]model.Trade, error)
	InsertTrade(ctx context.Context, t *model.Trade) error

	GetGame(ctx context.Context, id string) (*model.Game, error)
	ListGamesByTeam(ctx context.Context, teamID string) ([]model.Game, error)
	AddGame(ctx context.Context, g *model.Game) error
	DeleteGame(ctx context.Context, id string) error
	InsertSets(ctx context.Context, gameID string, sets []model.Set) error
}
