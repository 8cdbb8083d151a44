package mockdb

import (
	"context"

	"github.com/D-vidDo/league_manager/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) DeletePlayer(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) GetPlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error) {
	args := db.Called(ctx, teamID)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetFreeAgents(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) UpdatePlayerTeam(ctx context.Context, playerID, teamID string) error {
	args := db.Called(ctx, playerID, teamID)
	return args.Error(0)
}

func (db *DB) AddPlayerStats(ctx context.Context, playerID string, plusMinusDelta, gamesDelta int) error {
	args := db.Called(ctx, playerID, plusMinusDelta, gamesDelta)
	return args.Error(0)
}

func (db *DB) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := db.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}
	return t, args.Error(1)
}

func (db *DB) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := db.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (db *DB) SaveTeam(ctx context.Context, t *model.Team) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) DeleteTeam(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) AddPlayerToRoster(ctx context.Context, teamID, playerID string) error {
	args := db.Called(ctx, teamID, playerID)
	return args.Error(0)
}

func (db *DB) RemovePlayerFromRoster(ctx context.Context, teamID, playerID string) error {
	args := db.Called(ctx, teamID, playerID)
	return args.Error(0)
}

func (db *DB) UpdateTeamTotals(ctx context.Context, teamID string, wins, losses, pointsFor, pointsAgainst int) error {
	args := db.Called(ctx, teamID, wins, losses, pointsFor, pointsAgainst)
	return args.Error(0)
}

func (db *DB) ListTrades(ctx context.Context) ([]model.Trade, error) {
	args := db.Called(ctx)

	var r []model.Trade
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Trade)
	}
	return r, args.Error(1)
}

func (db *DB) InsertTrade(ctx context.Context, t *model.Trade) error {
	args := db.Called(ctx, t)
	return args.Error(0)
}

func (db *DB) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := db.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) ListGamesByTeam(ctx context.Context, teamID string) ([]model.Game, error) {
	args := db.Called(ctx, teamID)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) AddGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) DeleteGame(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) InsertSets(ctx context.Context, gameID string, sets []model.Set) error {
	args := db.Called(ctx, gameID, sets)
	return args.Error(0)
}
