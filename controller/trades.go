package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/D-vidDo/league_manager/model"
	"github.com/google/uuid"
)

// RecordTrade creates an immutable trade record. Entries with an empty side
// default to the free agency sentinel. Recording is independent of the roster
// ledger: announcing a trade means calling both RecordTrade and MovePlayer.
func (c *controller) RecordTrade(ctx context.Context, date time.Time, description string, entries []model.TradeEntry) (*model.Trade, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: a trade needs at least one player", ErrMalformedInput)
	}

	players := make([]model.TradeEntry, 0, len(entries))
	for _, e := range entries {
		if e.PlayerID == "" && e.PlayerName == "" {
			return nil, fmt.Errorf("%w: trade entry is missing the player", ErrMalformedInput)
		}
		if e.FromTeam == "" {
			e.FromTeam = model.FreeAgency
		}
		if e.ToTeam == "" {
			e.ToTeam = model.FreeAgency
		}
		players = append(players, e)
	}

	if date.IsZero() {
		date = c.clock.Now().UTC()
	}

	t := &model.Trade{
		ID:          c.newTradeID(),
		Date:        date,
		Description: description,
		Players:     players,
	}

	if err := c.db.InsertTrade(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (c *controller) ListTrades(ctx context.Context) ([]model.Trade, error) {
	return c.db.ListTrades(ctx)
}

// GetTeamTradeHistory filters the full trade log for trades that moved a
// player to or from the named team. The join is by team name, so history
// recorded under an old name does not follow a rename.
func (c *controller) GetTeamTradeHistory(ctx context.Context, teamName string) ([]model.Trade, error) {
	all, err := c.db.ListTrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing trades: %w", err)
	}

	results := make([]model.Trade, 0, len(all))
	for _, t := range all {
		if t.InvolvesTeam(teamName) {
			results = append(results, t)
		}
	}
	return results, nil
}

// newTradeID builds an id whose millisecond-timestamp prefix makes lexical
// order match creation order; the random suffix distinguishes trades created
// within the same millisecond.
func (c *controller) newTradeID() string {
	return fmt.Sprintf("%013d-%s", c.clock.Now().UTC().UnixMilli(), uuid.NewString()[:8])
}
