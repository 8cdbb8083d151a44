package controller

import (
	"context"
	"time"

	"github.com/D-vidDo/league_manager/db"
	"github.com/D-vidDo/league_manager/model"
	"github.com/itbasis/go-clock"
)

// C encapsulates the league engine without worrying about any web layers.
type C interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	GetPlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error)
	GetFreeAgents(ctx context.Context) ([]model.Player, error)

	GetTeam(ctx context.Context, id string) (*model.Team, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	SaveTeam(ctx context.Context, t *model.Team) error

	// MovePlayer applies one roster move. Empty team ids mean free agency.
	// After a successful call the player's team reference and both touched
	// rosters agree. It does not record a trade; callers announcing a trade
	// invoke RecordTrade separately.
	MovePlayer(ctx context.Context, playerID, fromTeamID, toTeamID string) error

	// RecordTrade appends an immutable trade record to the history. It does
	// not validate the movement against the live roster.
	RecordTrade(ctx context.Context, date time.Time, description string, entries []model.TradeEntry) (*model.Trade, error)
	ListTrades(ctx context.Context) ([]model.Trade, error)
	GetTeamTradeHistory(ctx context.Context, teamName string) ([]model.Trade, error)

	GetGame(ctx context.Context, id string) (*model.Game, error)
	ListGamesByTeam(ctx context.Context, teamID string) ([]model.Game, error)
	AddGame(ctx context.Context, g *model.Game) error
	// RecordSets stores a batch of sets for a game and credits the point
	// differentials to the listed players, or to the owning team's whole
	// roster when playerIDs is empty. Team totals are refreshed last.
	RecordSets(ctx context.Context, gameID string, playerIDs []string, sets []model.Set) error
	// RecalculateTeamTotals recomputes the team's persisted win/loss and
	// points columns from its stored sets and returns the derived record.
	RecalculateTeamTotals(ctx context.Context, teamID string) (*model.TeamRecord, error)

	GetStandings(ctx context.Context) ([]model.Standing, error)
	GetTopPerformers(ctx context.Context, minGames, limit int) ([]model.PlayerRating, error)
}

type controller struct {
	clock clock.Clock
	db    db.DB
}

func New(clock clock.Clock, db db.DB) (C, error) {
	c := &controller{
		clock: clock,
		db:    db,
	}
	return c, nil
}

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return c.db.ListPlayers(ctx)
}

func (c *controller) SavePlayer(ctx context.Context, p *model.Player) error {
	if p.Name == "" || !p.ValidStats() {
		return ErrMalformedInput
	}
	return c.db.SavePlayer(ctx, p)
}

func (c *controller) GetPlayersByTeam(ctx context.Context, teamID string) ([]model.Player, error) {
	return c.db.GetPlayersByTeam(ctx, teamID)
}

func (c *controller) GetFreeAgents(ctx context.Context) ([]model.Player, error) {
	return c.db.GetFreeAgents(ctx)
}

func (c *controller) GetTeam(ctx context.Context, id string) (*model.Team, error) {
	return c.db.GetTeam(ctx, id)
}

func (c *controller) ListTeams(ctx context.Context) ([]model.Team, error) {
	return c.db.ListTeams(ctx)
}

func (c *controller) SaveTeam(ctx context.Context, t *model.Team) error {
	if t.Name == "" {
		return ErrMalformedInput
	}
	return c.db.SaveTeam(ctx, t)
}

func (c *controller) GetGame(ctx context.Context, id string) (*model.Game, error) {
	return c.db.GetGame(ctx, id)
}

func (c *controller) ListGamesByTeam(ctx context.Context, teamID string) ([]model.Game, error) {
	return c.db.ListGamesByTeam(ctx, teamID)
}
