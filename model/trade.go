package model

import (
	"time"
)

// FreeAgency is the sentinel team name used in trade entries for players who
// are picked up from, or released into, the free agent pool.
const FreeAgency = "Free Agency"

// Trade is an immutable historical record of a roster move announcement. It
// is never updated or deleted after creation, and it is independent of the
// live roster state; executing the move is the roster ledger's job.
type Trade struct {
	ID          string       `json:"id"`
	Date        time.Time    `json:"date"`
	Description string       `json:"description,omitempty"`
	Players     []TradeEntry `json:"players_traded"`
}

type TradeEntry struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	FromTeam   string `json:"from_team"`
	ToTeam     string `json:"to_team"`
}

// InvolvesTeam reports whether any entry of the trade moved a player to or
// from the named team. Trade history is joined on the team *name*, so a
// renamed team loses its old history. Keep every trade-history lookup going
// through this one function so an id-based join is a one-place change.
func (t *Trade) InvolvesTeam(teamName string) bool {
	for _, e := range t.Players {
		if e.FromTeam == teamName || e.ToTeam == teamName {
			return true
		}
	}
	return false
}
