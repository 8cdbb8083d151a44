package mockcontroller

import (
	"context"
	"time"

	"github.com/D-vidDo/league_manager/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (c *C) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) SavePlayer(ctx context.Context, p *model.Player) error {
	args := c.Called(ctx, p)
	return args.Error(0)
}

func (c *C) GetPlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error) {
	args := c.Called(ctx, teamID)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) GetFreeAgents(ctx context.Context) ([]model.Player, error) {
	args := c.Called(ctx)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	args := c.Called(ctx, id)

	var t *model.Team
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Team)
	}

	return t, args.Error(1)
}

func (c *C) ListTeams(ctx context.Context) ([]model.Team, error) {
	args := c.Called(ctx)

	var res []model.Team
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Team)
	}

	return res, args.Error(1)
}

func (c *C) SaveTeam(ctx context.Context, t *model.Team) error {
	args := c.Called(ctx, t)
	return args.Error(0)
}

func (c *C) MovePlayer(ctx context.Context, playerID, fromTeamID, toTeamID string) error {
	args := c.Called(ctx, playerID, fromTeamID, toTeamID)
	return args.Error(0)
}

func (c *C) RecordTrade(ctx context.Context, date time.Time, description string, entries []model.TradeEntry) (*model.Trade, error) {
	args := c.Called(ctx, date, description, entries)

	var t *model.Trade
	if args.Get(0) != nil {
		t = args.Get(0).(*model.Trade)
	}

	return t, args.Error(1)
}

func (c *C) ListTrades(ctx context.Context) ([]model.Trade, error) {
	args := c.Called(ctx)

	var res []model.Trade
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Trade)
	}

	return res, args.Error(1)
}

func (c *C) GetTeamTradeHistory(ctx context.Context, teamName string) ([]model.Trade, error) {
	args := c.Called(ctx, teamName)

	var res []model.Trade
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Trade)
	}

	return res, args.Error(1)
}

func (c *C) GetGame(ctx context.Context, id string) (*model.Game, error) {
	args := c.Called(ctx, id)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}

	return g, args.Error(1)
}

func (c *C) ListGamesByTeam(ctx context.Context, teamID string) ([]model.Game, error) {
	args := c.Called(ctx, teamID)

	var res []model.Game
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Game)
	}

	return res, args.Error(1)
}

func (c *C) AddGame(ctx context.Context, g *model.Game) error {
	args := c.Called(ctx, g)
	return args.Error(0)
}

func (c *C) RecordSets(ctx context.Context, gameID string, playerIDs []string, sets []model.Set) error {
	args := c.Called(ctx, gameID, playerIDs, sets)
	return args.Error(0)
}

func (c *C) RecalculateTeamTotals(ctx context.Context, teamID string) (*model.TeamRecord, error) {
	args := c.Called(ctx, teamID)

	var r *model.TeamRecord
	if args.Get(0) != nil {
		r = args.Get(0).(*model.TeamRecord)
	}

	return r, args.Error(1)
}

func (c *C) GetStandings(ctx context.Context) ([]model.Standing, error) {
	args := c.Called(ctx)

	var res []model.Standing
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Standing)
	}

	return res, args.Error(1)
}

func (c *C) GetTopPerformers(ctx context.Context, minGames, limit int) ([]model.PlayerRating, error) {
	args := c.Called(ctx, minGames, limit)

	var res []model.PlayerRating
	if args.Get(0) != nil {
		res = args.Get(0).([]model.PlayerRating)
	}

	return res, args.Error(1)
}
